package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("ecb", flag.ContinueOnError)
	top.String("file", "", "")
	c := subcommands.NewCommander(top, "ecb")
	Register(c)

	root := Completion(c, top)
	assert.Contains(t, root.Flags, "file")

	add, ok := root.Sub["add"]
	require.True(t, ok, "add is not completed")
	for _, name := range []string{"type", "amount", "d", "rate", "since"} {
		assert.Contains(t, add.Flags, name)
	}
	assert.ElementsMatch(t, []string{"income", "expense", "investment"}, add.Flags["type"].Predict(""))

	list := root.Sub["list"]
	require.NotNil(t, list)
	assert.ElementsMatch(t, []string{"table", "md"}, list.Flags["format"].Predict(""))

	topic := root.Sub["topic"]
	require.NotNil(t, topic)
	require.NotNil(t, topic.Args)
	assert.Contains(t, topic.Args.Predict(""), "persistence")
}
