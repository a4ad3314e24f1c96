package interfaces

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/model"
)

// UserRepository stores admin accounts
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id model.UserID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
