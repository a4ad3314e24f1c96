package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	db *sql.DB
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := user.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, full_name, password, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID.String(), user.Username, user.FullName, user.PasswordHash, user.CreatedAt.UTC())
	if err != nil {
		return goerr.Wrap(err, "failed to insert user",
			goerr.V("user_id", user.ID), goerr.V("username", user.Username))
	}
	return nil
}

func (r *userRepository) scan(row *sql.Row, key string, value any) (*model.User, error) {
	var (
		user model.User
		id   string
	)
	err := row.Scan(&id, &user.Username, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V(key, value))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan user", goerr.V(key, value))
	}
	user.ID = model.UserID(id)
	return &user, nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, full_name, password, created_at FROM users WHERE id = ?`, id.String())
	return r.scan(row, "user_id", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, full_name, password, created_at FROM users WHERE username = ?`, username)
	return r.scan(row, "username", username)
}
