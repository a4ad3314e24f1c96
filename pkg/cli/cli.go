package cli

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run is the entry point of the jeumala binary. Logging and error reporting
// are configured once here for every subcommand.
func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var cleanups []func()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "jeumala",
		Usage:   "Geunaseh Jeumala content server and admin console",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closeLog, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			cleanups = append(cleanups, closeLog)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return ctx, err
			}
			cleanups = append(cleanups, flush)

			logging.Default().Debug("Starting jeumala",
				"version", version,
				"logger", loggerCfg,
				"sentry", sentryCfg,
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// reverse order: flush Sentry before closing the log file
			for i := len(cleanups) - 1; i >= 0; i-- {
				cleanups[i]()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdAdmin(),
			cmdSeed(),
			cmdValidate(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
