package repository_test

import (
	"context"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func runPageRepositoryTest(t *testing.T, newRepo repoFactory) {
	t.Helper()

	t.Run("Put upserts by page ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Page().Put(ctx, &model.Page{
			PageID:    "home",
			HeroTitle: "v1",
			Sections:  []map[string]any{{"id": "features", "title": "Programs"}},
		})).Required()
		gt.NoError(t, repo.Page().Put(ctx, &model.Page{PageID: "home", HeroTitle: "v2"})).Required()

		got, err := repo.Page().Get(ctx, "home")
		gt.NoError(t, err).Required()
		gt.Value(t, got.HeroTitle).Equal("v2")
		gt.Array(t, got.Sections).Length(0)
	})

	t.Run("sections roundtrip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Page().Put(ctx, &model.Page{
			PageID:   "about",
			Sections: []map[string]any{{"id": "vision", "title": "Vision"}},
		})).Required()

		got, err := repo.Page().Get(ctx, "about")
		gt.NoError(t, err).Required()
		gt.Array(t, got.Sections).Length(1)
		gt.Value(t, got.Sections[0]["title"]).Equal(any("Vision"))
	})

	t.Run("List and DeleteAll", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, id := range []string{"philosophy", "about", "home"} {
			gt.NoError(t, repo.Page().Put(ctx, &model.Page{PageID: id})).Required()
		}

		pages, err := repo.Page().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pages).Length(3)
		gt.Value(t, pages[0].PageID).Equal("about")

		gt.NoError(t, repo.Page().DeleteAll(ctx)).Required()
		pages, err = repo.Page().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pages).Length(0)
	})

	t.Run("Get missing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Page().Get(context.Background(), "missing")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestPageRepository_Memory(t *testing.T) {
	runPageRepositoryTest(t, newMemoryRepo)
}

func TestPageRepository_SQLite(t *testing.T) {
	runPageRepositoryTest(t, newSQLiteRepo)
}

func TestPageRepository_Firestore(t *testing.T) {
	runPageRepositoryTest(t, firestoreFactory(t))
}

func TestPageRepository_Mongo(t *testing.T) {
	runPageRepositoryTest(t, mongoFactory(t))
}
