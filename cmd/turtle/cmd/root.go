package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/turtle/foundation/core/config"
	mdwerror "github.com/msto63/turtle/foundation/core/error"
	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    = config.Default()
	logger = mdwlog.NewDiscard()
)

var rootCmd = &cobra.Command{
	Use:   "turtle",
	Short: "Turtle graphics language toolchain",
	Long: `turtle parses and runs turtle graphics programs and writes the
resulting plot protocol, one command per line:

  H          home
  U / D      pen up / pen down
  [ / ]      push / pop turtle state
  M <d>      move forward by d
  R <a>      rotate counter-clockwise by a degrees

Protocol lines go to stdout (or --output); logs and diagnostics go to stderr.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree until SIGINT/SIGTERM or completion
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			printError(os.Stderr, err)
		}
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TURTLE_CONFIG, ./turtle.toml, ./configs/turtle.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console or logfmt")
}

// setup loads the configuration and builds the stderr logger
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == versionCmd.Name() {
		return nil
	}

	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":      cfg.Path(),
		"variables": len(cfg.Variables),
	})
	return nil
}

func newLogger(c *config.Config, out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("log_level", c.General.LogLevel)
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	formatName := c.General.LogFormat
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("log_format", formatName)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "turtle",
	}), nil
}

// newEngine builds an engine from the loaded configuration
func newEngine() *turtle.Engine {
	return turtle.NewEngine(turtle.Options{
		Logger:           logger,
		MaxSourceLength:  cfg.Engine.MaxSourceLength,
		ExecutionTimeout: cfg.Engine.ExecutionTimeout.Duration,
	})
}

// reportedError marks an error whose diagnostic was already printed
type reportedError struct {
	error
}

func (r reportedError) Unwrap() error { return r.error }

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorLabel.Render("error:"), err)
}
