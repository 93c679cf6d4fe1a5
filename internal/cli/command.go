package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"thread-conductor/internal/config"
	"thread-conductor/internal/jokes"
	"thread-conductor/internal/logger"
)

// Spec describes one demo binary.
type Spec struct {
	Use       string
	Short     string
	AppID     string
	Title     string
	EnvPrefix string
	Jokes     []jokes.Joke
	Defaults  config.Config
}

// NewRootCommand builds the command for a demo. Settings resolve as flag,
// then prefixed environment variable, then Spec.Defaults.
func NewRootCommand(spec Spec) *cobra.Command {
	var (
		headless  bool
		count     int
		delay     time.Duration
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:          spec.Use,
		Short:        spec.Short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(spec.EnvPrefix, spec.Defaults)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("headless") {
				cfg.Headless = headless
			}
			if flags.Changed("count") {
				cfg.Count = count
			}
			if flags.Changed("delay") {
				cfg.PunchlineDelay = delay
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}

			app := jokes.NewApplication(jokes.Options{
				AppID:  spec.AppID,
				Title:  spec.Title,
				Jokes:  spec.Jokes,
				Config: cfg,
				Logger: log,
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if cfg.Headless {
				return app.RunHeadless(ctx, cmd.OutOrStdout())
			}
			return app.RunGUI(ctx)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&headless, "headless", spec.Defaults.Headless, "print jokes to stdout instead of opening a window")
	flags.IntVarP(&count, "count", "n", spec.Defaults.Count, "jokes to tell in headless mode, 0 for no limit")
	flags.DurationVarP(&delay, "delay", "d", spec.Defaults.PunchlineDelay, "pause between joke and punchline")
	flags.StringVar(&logLevel, "log-level", spec.Defaults.LogLevel, "debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", spec.Defaults.LogFormat, "console or json")

	return cmd
}
