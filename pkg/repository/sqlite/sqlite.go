package sqlite

import (
	"context"
	"database/sql"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"

	_ "modernc.org/sqlite"
)

// SQLite keeps records as JSON documents in a single-file database
type SQLite struct {
	db     *sql.DB
	record *recordRepository
	user   *userRepository
	page   *pageRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens (or creates) the database file at path and ensures the schema
func New(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	// database/sql pools connections; a single writer avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to initialize sqlite schema", goerr.V("path", path))
	}

	return &SQLite{
		db:     db,
		record: &recordRepository{db: db},
		user:   &userRepository{db: db},
		page:   &pageRepository{db: db},
	}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS records (
			resource TEXT NOT NULL,
			id TEXT NOT NULL,
			data TEXT NOT NULL,
			PRIMARY KEY (resource, id)
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS pages (
			page_id TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return goerr.Wrap(err, "failed to execute schema statement", goerr.V("stmt", s))
		}
	}
	return nil
}

func (s *SQLite) Record() interfaces.RecordRepository {
	return s.record
}

func (s *SQLite) User() interfaces.UserRepository {
	return s.user
}

func (s *SQLite) Page() interfaces.PageRepository {
	return s.page
}

// Close closes the database handle
func (s *SQLite) Close() error {
	return s.db.Close()
}
