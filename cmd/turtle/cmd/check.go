package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/turtle/foundation/turtle/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [file|-]...",
	Short: "Check programs for syntax errors without running them",
	Long: `Parses each program and reports the first syntax error of each,
showing the offending source line. Nothing is executed and no protocol is
written. Reads stdin when no file is given.`,
	RunE: checkPrograms,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkPrograms(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	engine := newEngine()
	var firstErr error

	for _, arg := range args {
		name, source, err := readSource(arg, cmd.InOrStdin())
		if err == nil {
			err = engine.Check(source)
		}

		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okLabel.Render("ok"), name)
			continue
		}

		var se *parser.SyntaxError
		if errors.As(err, &se) {
			cmd.PrintErr(renderSyntaxError(name, source, se))
		} else {
			printError(cmd.ErrOrStderr(), err)
		}
		if firstErr == nil {
			firstErr = reportedError{err}
		}
	}

	return firstErr
}
