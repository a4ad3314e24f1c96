package memory

import (
	"context"
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[model.UserID]*model.User
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[model.UserID]*model.User),
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := user.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return goerr.New("username already exists", goerr.V("username", user.Username))
		}
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *userRepository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
	}
	return copyUser(u), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("username", username))
}
