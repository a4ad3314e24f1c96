package cli

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	"github.com/geunaseh/jeumala/pkg/controller/tui"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdAdmin() *cli.Command {
	var clientCfg config.Client

	return &cli.Command{
		Name:    "admin",
		Aliases: []string{"a"},
		Usage:   "Manage content interactively through a running server",
		Flags:   clientCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("Admin configuration", "client", clientCfg)

			client, session, err := clientCfg.Configure(ctx)
			if err != nil {
				return err
			}

			// descriptors come from the server so the console matches its schema
			schema, err := client.Schema(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch resource schema")
			}

			console := tui.New(client, session, schema,
				tui.WithTaskParser(client.TaskParser(session)),
			)
			return console.Run(ctx)
		},
	}
}
