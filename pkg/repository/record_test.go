package repository_test

import (
	"context"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func runRecordRepositoryTest(t *testing.T, newRepo repoFactory) {
	t.Helper()

	const res = types.ResourceEvents

	t.Run("Create and Get roundtrip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := model.NewRecordID()
		rec := model.Record{
			"id":        id,
			"title":     "Seminar",
			"slug":      "seminar",
			"capacity":  200,
			"tags":      []string{"a", "b"},
			"createdAt": "2025-07-01T00:00:00Z",
		}
		gt.NoError(t, repo.Record().Create(ctx, res, rec)).Required()

		got, err := repo.Record().Get(ctx, res, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID()).Equal(id)
		gt.Value(t, got.String("title")).Equal("Seminar")
		gt.Value(t, got.String("capacity")).Equal("200")
		gt.Value(t, got.Strings("tags")).Equal([]string{"a", "b"})
	})

	t.Run("Create rejects record without id", func(t *testing.T) {
		repo := newRepo(t)
		gt.Error(t, repo.Record().Create(context.Background(), res, model.Record{"title": "x"}))
	})

	t.Run("Create rejects duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewRecordID()

		gt.NoError(t, repo.Record().Create(ctx, res, model.Record{"id": id})).Required()
		gt.Error(t, repo.Record().Create(ctx, res, model.Record{"id": id}))
	})

	t.Run("Get returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Record().Get(context.Background(), res, model.NewRecordID())
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("resources are isolated", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewRecordID()

		gt.NoError(t, repo.Record().Create(ctx, types.ResourceArticles, model.Record{"id": id})).Required()
		_, err := repo.Record().Get(ctx, types.ResourceMedia, id)
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("FindOne by slug", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Record().PutMany(ctx, res, []model.Record{
			{"id": model.NewRecordID(), "slug": "first"},
			{"id": model.NewRecordID(), "slug": "second"},
		})).Required()

		got, err := repo.Record().FindOne(ctx, res, "slug", "second")
		gt.NoError(t, err).Required()
		gt.Value(t, got.String("slug")).Equal("second")

		_, err = repo.Record().FindOne(ctx, res, "slug", "missing")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("List filters", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Record().PutMany(ctx, types.ResourceTasks, []model.Record{
			{"id": model.NewRecordID(), "status": "pending", "assignee": "ani"},
			{"id": model.NewRecordID(), "status": "done", "assignee": "ani"},
			{"id": model.NewRecordID(), "status": "pending", "assignee": "budi"},
		})).Required()

		pending, err := repo.Record().List(ctx, types.ResourceTasks, interfaces.WithFilter("status", "pending"))
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(2)

		aniPending, err := repo.Record().List(ctx, types.ResourceTasks,
			interfaces.WithFilter("status", "pending"),
			interfaces.WithFilter("assignee", "ani"))
		gt.NoError(t, err).Required()
		gt.Array(t, aniPending).Length(1)
	})

	t.Run("List sorts", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Record().PutMany(ctx, res, []model.Record{
			{"id": model.NewRecordID(), "title": "b", "date": "2025-07-15"},
			{"id": model.NewRecordID(), "title": "c", "date": "2025-07-22"},
			{"id": model.NewRecordID(), "title": "a", "date": "2025-06-01"},
		})).Required()

		desc, err := repo.Record().List(ctx, res, interfaces.WithSort("date", true))
		gt.NoError(t, err).Required()
		gt.Array(t, desc).Length(3)
		gt.Value(t, desc[0].String("title")).Equal("c")
		gt.Value(t, desc[2].String("title")).Equal("a")

		limited, err := repo.Record().List(ctx, res, interfaces.WithSort("date", false), interfaces.WithLimit(1))
		gt.NoError(t, err).Required()
		gt.Array(t, limited).Length(1)
		gt.Value(t, limited[0].String("title")).Equal("a")
	})

	t.Run("List of empty resource", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.Record().List(context.Background(), types.ResourceMembers)
		gt.NoError(t, err).Required()
		gt.Array(t, got).Length(0)
	})

	t.Run("Update merges fields and keeps id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewRecordID()

		gt.NoError(t, repo.Record().Create(ctx, res, model.Record{
			"id": id, "title": "Old", "location": "Hall",
		})).Required()

		updated, err := repo.Record().Update(ctx, res, id, model.Record{"id": "other", "title": "New"})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.ID()).Equal(id)
		gt.Value(t, updated.String("title")).Equal("New")
		gt.Value(t, updated.String("location")).Equal("Hall")

		got, err := repo.Record().Get(ctx, res, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.String("title")).Equal("New")
	})

	t.Run("Update missing record", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Record().Update(context.Background(), res, model.NewRecordID(), model.Record{"title": "x"})
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewRecordID()

		gt.NoError(t, repo.Record().Create(ctx, res, model.Record{"id": id})).Required()
		gt.NoError(t, repo.Record().Delete(ctx, res, id)).Required()

		_, err := repo.Record().Get(ctx, res, id)
		gt.Error(t, err).Is(interfaces.ErrNotFound)

		gt.Error(t, repo.Record().Delete(ctx, res, id)).Is(interfaces.ErrNotFound)
	})

	t.Run("DeleteAll and PutMany replace", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		id := model.NewRecordID()

		gt.NoError(t, repo.Record().PutMany(ctx, res, []model.Record{{"id": id, "title": "v1"}})).Required()
		gt.NoError(t, repo.Record().PutMany(ctx, res, []model.Record{{"id": id, "title": "v2"}})).Required()

		list, err := repo.Record().List(ctx, res)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(1)
		gt.Value(t, list[0].String("title")).Equal("v2")

		gt.NoError(t, repo.Record().DeleteAll(ctx, res)).Required()
		list, err = repo.Record().List(ctx, res)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})
}

func TestRecordRepository_Memory(t *testing.T) {
	runRecordRepositoryTest(t, newMemoryRepo)
}

func TestRecordRepository_SQLite(t *testing.T) {
	runRecordRepositoryTest(t, newSQLiteRepo)
}

func TestRecordRepository_Firestore(t *testing.T) {
	runRecordRepositoryTest(t, firestoreFactory(t))
}

func TestRecordRepository_Mongo(t *testing.T) {
	runRecordRepositoryTest(t, mongoFactory(t))
}
