package cmd

import (
	"fmt"

	"github.com/nevakrien/world-simulator/internal/diag"
	"github.com/nevakrien/world-simulator/internal/lexer"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Tokenize a source file and report diagnostics",
	Long: `Read a class-language source file, tokenize it, and print the
diagnostic report if the tokenizer found any errors.

Tokenizer errors are reported, never signalled through the exit code:
run always exits 0, matching how the tokenizer itself never aborts on
a malformed lexeme.

Examples:
  worldsim run script.ws
  worldsim run --verbose script.ws`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	logger := stageLogger()
	path := args[0]

	logger.WithField("path", path).Debug("=> Starting Engine...")

	contents, err := readFile(path)
	if err != nil {
		return err
	}
	logger.WithField("bytes", len(contents)).Debug("=> File read successfully")

	sink := diag.NewSink()
	logger.Debug("=> Tokenizing...")
	tokens := lexer.Tokenize(contents, sink)
	logger.WithField("tokens", len(tokens)).Debugf("=> Tokenization complete. %d tokens generated.", len(tokens))

	if sink.HasErrors() {
		logger.WithField("errors", len(sink.Errors())).Warn("=> Errors encountered during tokenization")
		fmt.Print(sink.Render(contents))
	}

	return nil
}
