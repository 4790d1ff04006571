package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/msto63/toolkit/core/config"
	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/enumx"

	tkerror "github.com/msto63/toolkit/core/error"
)

// envPrefix lets TOOLKIT_SECTION_KEY override values of the --config file
const envPrefix = "TOOLKIT"

type rootOptions struct {
	cfgFile   string
	verbose   bool
	logFormat string

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "toolkit",
		Short: "Helper commands for the toolkit library",
		Long: `toolkit exposes the library helpers on the command line.

Commands:
  enum     - describe, decompose, format and parse enum definitions
  str      - truncate, convert case and pad strings
  query    - build URL query strings
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logFormat, opts.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger.WithName("toolkit").WithNewCorrelationID()
			log.SetDefault(opts.logger)
			enumx.SetLogger(opts.logger.WithName("enumx"))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text, json, logfmt or zap")

	rootCmd.AddCommand(
		newEnumCmd(opts),
		newStrCmd(),
		newQueryCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// newLogger builds the CLI logger. Only warnings and errors are written
// unless verbose is set.
func newLogger(format string, verbose bool, out io.Writer) (*log.Logger, error) {
	var logger *log.Logger
	if strings.EqualFold(format, "zap") {
		// the zap core filters nothing, the toolkit logger applies the level
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(out),
			zapcore.DebugLevel,
		)
		logger = log.FromZap(zap.New(core), log.LevelDebug)
	} else {
		f, err := log.ParseFormat(format)
		if err != nil {
			return nil, fmt.Errorf("invalid --log-format %q: %w", format, err)
		}
		logger = log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: f, Output: out})
	}

	if !verbose {
		logger = logger.WithLevel(log.LevelWarn)
	}
	return logger, nil
}

// loadConfig loads the --config file, or returns nil when none was given
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfgFile == "" {
		return nil, nil
	}
	cfg, err := config.LoadWithOptions(o.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: envPrefix,
		Logger:    o.logger,
	})
	if err != nil {
		return nil, err
	}
	o.logger.Debug("config loaded", log.Field("path", cfg.FilePath()))
	return cfg, nil
}

// printError writes the message of a toolkit error and its root cause on
// separate lines. Other errors are printed as they are.
func printError(w io.Writer, err error) {
	te, ok := err.(*tkerror.Error)
	if !ok {
		if code := tkerror.GetCode(err); code != tkerror.CodeUnknown {
			fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
			return
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	if te.Code() != tkerror.CodeUnknown {
		fmt.Fprintf(w, "Error [%s]: %s\n", te.Code(), te.Message())
	} else {
		fmt.Fprintf(w, "Error: %s\n", te.Message())
	}
	if root := te.RootCause(); root != error(te) {
		fmt.Fprintf(w, "  cause: %v\n", root)
	}
}
