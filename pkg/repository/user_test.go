package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func runUserRepositoryTest(t *testing.T, newRepo repoFactory) {
	t.Helper()

	newUser := func(username string) *model.User {
		return &model.User{
			ID:           model.UserID(model.NewRecordID()),
			Username:     username,
			FullName:     "Admin " + username,
			PasswordHash: "$2a$12$hash",
			CreatedAt:    time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Create and Get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		u := newUser("admin")

		gt.NoError(t, repo.User().Create(ctx, u)).Required()

		got, err := repo.User().Get(ctx, u.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Username).Equal("admin")
		gt.Value(t, got.PasswordHash).Equal(u.PasswordHash)
		gt.Bool(t, got.CreatedAt.Equal(u.CreatedAt)).True()

		byName, err := repo.User().GetByUsername(ctx, "admin")
		gt.NoError(t, err).Required()
		gt.Value(t, byName.ID).Equal(u.ID)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.User().Create(ctx, newUser("dup"))).Required()
		gt.Error(t, repo.User().Create(ctx, newUser("dup")))
	})

	t.Run("invalid user is rejected", func(t *testing.T) {
		repo := newRepo(t)
		gt.Error(t, repo.User().Create(context.Background(), &model.User{ID: "x"}))
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().Get(ctx, "missing")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
		_, err = repo.User().GetByUsername(ctx, "missing")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestUserRepository_Memory(t *testing.T) {
	runUserRepositoryTest(t, newMemoryRepo)
}

func TestUserRepository_SQLite(t *testing.T) {
	runUserRepositoryTest(t, newSQLiteRepo)
}

func TestUserRepository_Firestore(t *testing.T) {
	runUserRepositoryTest(t, firestoreFactory(t))
}

func TestUserRepository_Mongo(t *testing.T) {
	runUserRepositoryTest(t, mongoFactory(t))
}
