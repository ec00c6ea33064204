package cmd

import (
	logger "github.com/envcrypt/envcrypt/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	force         bool
	noInteraction bool
	Logger        logger.Logger
)

// addCommonFlags attaches the flags shared by every envcrypt command.
func addCommonFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")
	c.Flags().BoolVarP(&noInteraction, "no-interaction", "n", false, "do not ask any interactive question")
}

// initLogger builds the command logger from the verbosity flags. Called from
// each command's PreRun so the flags have been parsed.
func initLogger(cmd *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	force = false
	noInteraction = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	for _, c := range []*cobra.Command{EncryptCmd, DecryptCmd, GenerateKeyCmd, CiphersCmd, VersionCmd} {
		resetFlagState(c)
	}
}

// resetFlagState clears Cobra flag state to prevent pollution between tests.
func resetFlagState(c *cobra.Command) {
	if c == nil || c.Flags() == nil {
		return
	}
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
