package cli

import (
	"context"
	"sort"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	domainConfig "github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool
	var schemaCfg config.Schema

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required)",
			Required:    true,
			Sources:     cli.EnvVars("JEUMALA_FIRESTORE_PROJECT_ID"),
			Destination: &projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("JEUMALA_FIRESTORE_DATABASE_ID"),
			Destination: &databaseID,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Preview changes without applying",
			Destination: &dryRun,
		},
	}
	flags = append(flags, schemaCfg.Flags()...)

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			schema, err := schemaCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load resource schema")
			}

			// Get index configuration
			indexConfig := getIndexConfig(schema)

			// Create fireconf client
			client, err := fireconf.NewClient(ctx, projectID, databaseID)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx, indexConfig); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

const registrationEventKey = "eventId"

// getIndexConfig returns the composite indexes needed by filtered list
// queries: one per filter key, combined with the resource's sort key.
func getIndexConfig(schema *domainConfig.Schema) *fireconf.Config {
	cfg := &fireconf.Config{}

	for _, r := range schema.Resources {
		sortKey := r.SortBy
		if sortKey == "" {
			sortKey = model.KeyCreatedAt
		}
		sortOrder := fireconf.OrderDescending
		if r.SortAsc {
			sortOrder = fireconf.OrderAscending
		}

		seen := make(map[string]struct{}, len(r.Filters)+1)
		for _, key := range r.Filters {
			seen[key] = struct{}{}
		}
		// registrations are always listed per event
		if r.Endpoint == types.ResourceRegistrations {
			seen[registrationEventKey] = struct{}{}
		}
		delete(seen, sortKey)
		if len(seen) == 0 {
			continue
		}

		keys := make([]string, 0, len(seen))
		for key := range seen {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		col := fireconf.Collection{Name: r.Endpoint.String()}
		for _, key := range keys {
			col.Indexes = append(col.Indexes, fireconf.Index{
				Fields: []fireconf.IndexField{
					{Path: key, Order: fireconf.OrderAscending},
					{Path: sortKey, Order: sortOrder},
				},
			})
		}
		cfg.Collections = append(cfg.Collections, col)
	}

	return cfg
}
