package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

const (
	EnvLedgerFile = "ECOBALANCE_FILE"
	EnvLogLevel   = "ECOBALANCE_LOG_LEVEL"
	EnvVerbose    = "ECOBALANCE_VERBOSE"
	EnvTestingNow = "ECOBALANCE_TESTING_NOW"
)

// IsRegistered reports whether name is a subcommand known to c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// RunExtension attempts to find and execute an external ecb-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ecb-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debugf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+LedgerPath())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
