package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"funcmeta/internal/output"
	"funcmeta/internal/parser"
	"funcmeta/internal/source"
)

// exit is swapped out in tests.
var exit = os.Exit

var rootCmd = &cobra.Command{
	Use:   "funcmeta <file>",
	Short: "Extract function and method metadata from a source file as JSON",
	Long: `funcmeta parses a single source file and prints one JSON record per
module-level function and class-level method: qualified name, declaration
signature, verbatim body, line span, the file's import statements, and a
module name derived from the file path.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past argument validation; failures from here are reported as a
		// JSON error object on stderr, not as a usage dump.
		cmd.SilenceUsage = true

		records, err := extract(args[0])
		if err != nil {
			if encErr := output.JSONErrorTo(cmd.ErrOrStderr(), err); encErr != nil {
				return encErr
			}
			exit(1)
			return nil
		}
		return output.JSONTo(cmd.OutOrStdout(), records)
	},
}

// extract runs the load -> parse -> walk pipeline for one file.
func extract(path string) ([]parser.Record, error) {
	extractor, err := parser.NewRegistry().ForPath(path)
	if err != nil {
		return nil, err
	}
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(src)
}

func Execute() error {
	return rootCmd.Execute()
}
