package commands

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/ebus-comparator/internal/app"
	"github.com/cwbudde/ebus-comparator/internal/config"
)

type options struct {
	configPath string
	output     string
	logLevel   string
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "comparatorgraph",
		Short:         "Chart the eBUS divider and comparator response",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			if opts.configPath != "" {
				logger.Debug().Str("file", opts.configPath).Msg("Configuration file loaded")
			}

			a, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			_, err = a.Run()
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "configuration file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "chart path; extension selects png or svg (default outputs.png)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(configCmd(opts))
	return root
}

// load reads the configuration, applies flag overrides, then validates
// the result once.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Read(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.output != "" {
		cfg.Chart.Output = o.output
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a console logger at the configured level. Global
// zerolog state is left alone.
func newLogger(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}
