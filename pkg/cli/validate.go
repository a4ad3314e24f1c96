package cli

import (
	"context"
	"fmt"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var schemaCfg config.Schema
	var repoCfg config.Repository
	var checkDB bool

	var flags []cli.Flag
	flags = append(flags, schemaCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "check-db",
		Usage:       "Also check stored records against the schema",
		Sources:     cli.EnvVars("JEUMALA_CHECK_DB"),
		Destination: &checkDB,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the resource schema and optionally check DB consistency",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Step 1: Load and validate the schema
			schema, err := schemaCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "schema validation failed")
			}

			logger.Info("Schema validation passed", "resource_count", len(schema.Resources))
			for _, r := range schema.Resources {
				logger.Info("Resource validated",
					"endpoint", r.Endpoint,
					"title", r.Title,
					"field_count", len(r.Fields),
				)
			}

			// Step 2: Optionally check stored records
			if !checkDB {
				logger.Info("DB consistency check skipped")
				return nil
			}

			repo, closeRepo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo()

			uc := usecase.New(repo, usecase.WithSchema(schema))
			validationResult, err := uc.ValidateDB(ctx)
			if err != nil {
				return goerr.Wrap(err, "DB consistency check failed")
			}

			if validationResult.HasIssues() {
				for _, issue := range validationResult.Issues {
					logger.Warn("DB consistency issue found",
						"resource", issue.Resource,
						"record_id", issue.RecordID,
						"field", issue.Field,
						"message", issue.Message,
						"expected", issue.Expected,
						"actual", issue.Actual,
					)
				}

				return fmt.Errorf("DB consistency check found %d issue(s)", len(validationResult.Issues))
			}

			logger.Info("DB consistency check passed", "checked", validationResult.Checked)
			return nil
		},
	}
}
