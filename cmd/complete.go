package cmd

import (
	"flag"

	"github.com/etnz/ecobalance"
	"github.com/etnz/ecobalance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands registered in c, and their flags, for
// shell completion. top holds the global flags.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predictFlag(f.Name) })
	return flags
}

// predictFlag returns the predictor of a flag from its name, flags with the
// same name have the same meaning across commands.
func predictFlag(name string) complete.Predictor {
	switch name {
	case "type":
		kinds := predict.Set{}
		for _, k := range ecobalance.Kinds {
			kinds = append(kinds, k.Name())
		}
		return kinds
	case "file", "o":
		return predict.Files("*.csv")
	case "format":
		return predict.Set{"table", "md"}
	case "v", "list":
		return predict.Nothing
	default:
		return predict.Something
	}
}
