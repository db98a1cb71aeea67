package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/turtle/foundation/core/error"
	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle"
	"github.com/msto63/turtle/foundation/turtle/env"
	"github.com/msto63/turtle/foundation/turtle/parser"
	"github.com/msto63/turtle/foundation/turtle/plot"
)

const watchDebounce = 200 * time.Millisecond

var (
	outputPath string
	varFlags   []string
	runTimeout time.Duration
	watchMode  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Run a turtle program and write the plot protocol",
	Long: `Runs a turtle program and writes one protocol line per executed action.

Variables can be bound before the run with --var name=value (repeatable);
they override the [variables] table of the configuration. With --watch the
program is run again every time the file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the protocol to a file instead of stdout")
	runCmd.Flags().StringArrayVarP(&varFlags, "var", "D", nil, "bind a variable before the run (name=value)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "execution timeout (default from config, 30s)")
	runCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "run again whenever the file changes")
	rootCmd.AddCommand(runCmd)
}

func runProgram(cmd *cobra.Command, args []string) error {
	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}

	overrides, err := parseVars(varFlags)
	if err != nil {
		return err
	}
	vars := mergeVars(cfg.Variables, overrides)

	if runTimeout > 0 {
		cfg.Engine.ExecutionTimeout.Duration = runTimeout
	}
	engine := newEngine()

	if watchMode {
		if name == stdinName {
			return mdwerror.New("--watch needs a program file").
				WithCode(mdwerror.CodeInvalidInput)
		}
		return watchProgram(cmd.Context(), cmd, engine, name, vars)
	}

	name, source, err := readSource(name, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return runSource(cmd, engine, name, source, vars)
}

// runSource runs one program and flushes whatever protocol was emitted,
// also when the run fails part way
func runSource(cmd *cobra.Command, engine *turtle.Engine, name, source string, vars map[string]float64) error {
	out, closeOut, err := openOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOut()

	w := plot.NewWriter(out)
	result, runErr := engine.Run(cmd.Context(), source, env.New(vars), w)

	if err := w.Flush(); err != nil && runErr == nil {
		runErr = mdwerror.Wrap(err, "failed to write protocol").WithCode(mdwerror.CodeIO)
	}
	if runErr != nil {
		var se *parser.SyntaxError
		if errors.As(runErr, &se) {
			cmd.PrintErr(renderSyntaxError(name, source, se))
			return reportedError{runErr}
		}
		return runErr
	}

	logger.Debug("Program finished", mdwlog.Fields{
		"file":     name,
		"run_id":   result.RunID,
		"commands": result.Commands,
	})
	return nil
}

// openOutput resolves --output, then [output] path, then stdout
func openOutput(stdout io.Writer) (io.Writer, func(), error) {
	path := outputPath
	if path == "" {
		path = cfg.Output.Path
	}
	if path == "" {
		return stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to create output file").
			WithCode(mdwerror.CodeIO).
			WithDetail("path", path)
	}
	return f, func() { f.Close() }, nil
}

// watchProgram runs the program once and again after each change of the
// file until ctx is cancelled. Run failures are reported and watching goes on.
func watchProgram(ctx context.Context, cmd *cobra.Command, engine *turtle.Engine, name string, vars map[string]float64) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").WithCode(mdwerror.CodeIO)
	}
	defer watcher.Close()

	// Editors often replace files on save, so the directory is watched.
	abs, err := filepath.Abs(name)
	if err != nil {
		return mdwerror.Wrap(err, "invalid program path").WithCode(mdwerror.CodeInvalidInput)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeIO).
			WithDetail("path", filepath.Dir(abs))
	}

	runFile := func() {
		_, source, err := readSource(name, nil)
		if err == nil {
			err = runSource(cmd, engine, name, source, vars)
		}
		var reported reportedError
		if err != nil && !errors.As(err, &reported) {
			printError(cmd.ErrOrStderr(), err)
		}
	}

	logger.Info("Watching program for changes", mdwlog.Fields{"file": abs})
	runFile()

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher", mdwlog.Fields{"file": abs})
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if time.Since(last) < watchDebounce {
				continue
			}
			last = time.Now()

			logger.Debug("Program changed, running again", mdwlog.Fields{"op": event.Op.String()})
			runFile()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorWithErr("Watcher error", err)
		}
	}
}
