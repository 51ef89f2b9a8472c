package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "worldsim",
	Short: "Class-language tokenizer and type registry front end",
	Long: `worldsim drives the front-end foundations of a multi-inheritance
class language: a tokenizer that lexes source into a token stream with
precise diagnostics, and a type/property registry that computes each
class's effective property table under multiple inheritance.

This CLI is the external collaborator the front end itself treats as
out of scope: it just loads a file, feeds it to the tokenizer, and
renders whatever diagnostics come back.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages (file read, tokenize, error count)")

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// stageLogger returns the logger used for per-stage tracing, at Debug
// level when --verbose is set and Warn level otherwise so a quiet run
// stays quiet.
func stageLogger() *logrus.Logger {
	logger := logrus.StandardLogger()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
