package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formulate"
	"github.com/dmitrymomot/formulate/pkg/config"
	"github.com/dmitrymomot/formulate/pkg/formhttp"
	"github.com/dmitrymomot/formulate/pkg/httpserver"
	"github.com/dmitrymomot/formulate/pkg/logger"
	"github.com/dmitrymomot/formulate/pkg/redis"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatJSON}

// RootOptions holds the global flags.
type RootOptions struct {
	Verbose  bool
	Format   string
	EnvFiles []string
	Messages string
}

// appConfig is everything read from the environment.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      httpserver.Config
	Redis     redis.Config
}

// NewRootCommand builds the formulate command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "formulate",
		Short: "Validate forms declared with rule strings",
		Long: `formulate discovers fields declared in HTML templates, validates values
against their rule strings and serves validation and bound form state over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return commandError(fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, validFormats), nil)
			}
			if len(opts.EnvFiles) > 0 {
				if err := config.LoadEnv(opts.EnvFiles...); err != nil {
					return commandError("load env files", err)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging and diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (text|json)")
	cmd.PersistentFlags().StringSliceVar(&opts.EnvFiles, "env-file", nil, ".env files to load before reading configuration")
	cmd.PersistentFlags().StringVar(&opts.Messages, "messages", "", "YAML catalog overriding error messages")

	cmd.AddCommand(
		newFieldsCommand(opts),
		newValidateCommand(opts),
		newRulesCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}

func newOutput(cmd *cobra.Command, opts *RootOptions) *output {
	return &output{
		format:  opts.Format,
		w:       cmd.OutOrStdout(),
		verbose: opts.Verbose,
		errW:    cmd.ErrOrStderr(),
	}
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return cfg, commandError("load configuration", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, opts *RootOptions, cfg appConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, commandError("invalid LOG_LEVEL", err)
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, commandError(fmt.Sprintf("invalid LOG_FORMAT %q", cfg.LogFormat), nil)
	}

	// WithEnvironment picks level and format defaults, so it goes first.
	return logger.New(
		logger.WithEnvironment(cfg.Env, "formulate"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(formhttp.RequestIDExtractor),
	), nil
}

// newFormulate builds the instance every command works with: options from
// the environment plus the optional message catalog.
func newFormulate(opts *RootOptions, log *slog.Logger) (*formulate.Formulate, error) {
	f, err := formulate.New(log, formulate.FromEnv())
	if err != nil {
		return nil, commandError("configure formulate", err)
	}
	if opts.Messages == "" {
		return f, nil
	}

	file, err := os.Open(opts.Messages)
	if err != nil {
		return nil, commandError("open message catalog", err)
	}
	defer file.Close()
	if err := f.Messages().LoadYAML(file); err != nil {
		return nil, commandError("load message catalog", err)
	}
	return f, nil
}

// setup loads configuration, the logger and formulate for a command.
func setup(cmd *cobra.Command, opts *RootOptions) (appConfig, *slog.Logger, *formulate.Formulate, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := newLogger(cmd, opts, cfg)
	if err != nil {
		return cfg, nil, nil, err
	}
	f, err := newFormulate(opts, log)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, log, f, nil
}
