package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/turtle/foundation/core/error"
	"github.com/msto63/turtle/foundation/turtle/parser"
)

const stdinName = "-"

// readSource reads a program from the named file, or from in when name is
// empty or "-"
func readSource(name string, in io.Reader) (string, string, error) {
	if name == "" || name == stdinName {
		data, err := io.ReadAll(in)
		if err != nil {
			return stdinName, "", mdwerror.Wrap(err, "failed to read program from stdin").
				WithCode(mdwerror.CodeIO)
		}
		return stdinName, string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		code := mdwerror.CodeIO
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return name, "", mdwerror.Wrap(err, "failed to read program").
			WithCode(code).
			WithDetail("path", name)
	}
	return name, string(data), nil
}

// parseVars parses name=value assignments given with --var
func parseVars(assignments []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(assignments))

	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || !isIdentifier(name) {
			return nil, mdwerror.Newf("invalid variable %q: want name=value", a).
				WithCode(mdwerror.CodeInvalidInput)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid value for "+name).
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("variable", name)
		}
		vars[name] = v
	}

	return vars, nil
}

// isIdentifier reports whether s scans as exactly one non-reserved identifier
func isIdentifier(s string) bool {
	l := parser.NewLexer(s)
	return l.NextToken().Type == parser.TokenIdentifier && l.NextToken().Type == parser.TokenEOF
}

// mergeVars overlays overrides on base without modifying either
func mergeVars(base, overrides map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
