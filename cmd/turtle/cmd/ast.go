package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/turtle/foundation/turtle/ast"
	"github.com/msto63/turtle/foundation/turtle/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file|-]",
	Short: "Print the syntax tree of a program",
	Long: `Parses a program and prints its syntax tree, one node per line with
source positions, followed by the variables it reads and writes. Variables
that are read but never assigned must be bound with --var or [variables]
before the program can run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: printAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func printAST(cmd *cobra.Command, args []string) error {
	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}

	name, source, err := readSource(name, cmd.InOrStdin())
	if err != nil {
		return err
	}

	prog, err := newEngine().Parse(source)
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			cmd.PrintErr(renderSyntaxError(name, source, se))
			return reportedError{err}
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ast.Dump(prog))
	writeUsage(out, ast.Variables(prog), cfg.Variables)
	return nil
}

// writeUsage prints the variable summary of a program. Free names that the
// configuration does not bind are flagged.
func writeUsage(w io.Writer, usage ast.Usage, bound map[string]float64) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("read:   "), listOrNone(usage.Read))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("written:"), listOrNone(usage.Written))

	var unbound []string
	for _, name := range usage.Free() {
		if _, ok := bound[name]; !ok {
			unbound = append(unbound, name)
		}
	}
	if len(unbound) > 0 {
		fmt.Fprintf(w, "%s %s\n", warnLabel.Render("unbound:"), strings.Join(unbound, ", "))
	}
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
