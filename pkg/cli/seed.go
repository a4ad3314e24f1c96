package cli

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Replace members, pages, articles, events, documents and media with sample data",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, closeRepo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo()

			result, err := usecase.New(repo).Seed.Seed(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to seed repository")
			}

			logging.Default().Info("Sample data seeded", "counts", result.Counts)
			return nil
		},
	}
}
