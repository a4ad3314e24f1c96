package config

import (
	"context"
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/repository/firestore"
	"github.com/geunaseh/jeumala/pkg/repository/memory"
	"github.com/geunaseh/jeumala/pkg/repository/mongo"
	"github.com/geunaseh/jeumala/pkg/repository/sqlite"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
	BackendSQLite    = "sqlite"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	projectID  string
	databaseID string
	mongoURI   string
	mongoDB    string
	sqlitePath string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory, firestore, mongo or sqlite)",
			Category:    "Repository",
			Value:       BackendSQLite,
			Sources:     cli.EnvVars("JEUMALA_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("JEUMALA_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("JEUMALA_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "mongo-uri",
			Usage:       "MongoDB connection URI (required when using mongo backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("JEUMALA_MONGO_URI"),
			Destination: &r.mongoURI,
		},
		&cli.StringFlag{
			Name:        "mongo-database",
			Usage:       "MongoDB database name",
			Category:    "Repository",
			Value:       "jeumala",
			Sources:     cli.EnvVars("JEUMALA_MONGO_DATABASE"),
			Destination: &r.mongoDB,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file",
			Category:    "Repository",
			Value:       "jeumala.db",
			Sources:     cli.EnvVars("JEUMALA_SQLITE_PATH"),
			Destination: &r.sqlitePath,
		},
	}
}

func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.backend),
		slog.String("firestore_project_id", r.projectID),
		slog.String("mongo_database", r.mongoDB),
		slog.String("sqlite_path", r.sqlitePath),
		slog.Int("mongo_uri.len", len(r.mongoURI)),
	)
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// ProjectID returns the Firestore project ID
func (r *Repository) ProjectID() string {
	return r.projectID
}

// DatabaseID returns the Firestore database ID
func (r *Repository) DatabaseID() string {
	return r.databaseID
}

// Configure initializes the configured backend. The returned function
// releases its connections.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, func(), error) {
	logger := logging.From(ctx)

	switch r.backend {
	case BackendFirestore:
		if r.projectID == "" {
			return nil, nil, goerr.Wrap(ErrMissingFlag, "firestore backend needs a project", goerr.V(FlagKey, "firestore-project-id"))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logger.Info("Using Firestore repository", "project_id", r.projectID, "database_id", r.databaseID)
		return repo, func() { safe.Close(ctx, repo, "backend", BackendFirestore) }, nil

	case BackendMongo:
		if r.mongoURI == "" {
			return nil, nil, goerr.Wrap(ErrMissingFlag, "mongo backend needs a URI", goerr.V(FlagKey, "mongo-uri"))
		}
		repo, err := mongo.New(ctx, r.mongoURI, r.mongoDB)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize mongo repository")
		}
		logger.Info("Using MongoDB repository", "database", r.mongoDB)
		return repo, func() {
			if err := repo.Close(context.Background()); err != nil {
				logger.Error("failed to close mongodb", "error", err.Error())
			}
		}, nil

	case BackendSQLite:
		repo, err := sqlite.New(ctx, r.sqlitePath)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logger.Info("Using SQLite repository", "path", r.sqlitePath)
		return repo, func() { safe.Close(ctx, repo, "backend", BackendSQLite) }, nil

	case BackendMemory:
		logger.Info("Using in-memory repository (development mode)")
		return memory.New(), func() {}, nil

	default:
		return nil, nil, goerr.Wrap(ErrInvalidBackend, "cannot configure repository", goerr.V(BackendKey, r.backend))
	}
}
