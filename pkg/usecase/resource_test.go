package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/repository/memory"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// stepClock returns a clock that advances one second per call
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()
	opts = append([]usecase.Option{
		usecase.WithClock(stepClock(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))),
	}, opts...)
	return usecase.New(memory.New(), opts...)
}

func TestResourceUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps server fields and fills defaults", func(t *testing.T) {
		uc := newTestUseCases(t)
		rec, err := uc.Resource.Create(ctx, types.ResourceTasks, model.Record{
			"title": "Prepare venue",
			"id":    "client-chosen",
			"extra": "dropped",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, rec.ID()).NotEqual("")
		gt.Value(t, rec.ID()).NotEqual("client-chosen")
		gt.Value(t, rec.String(model.KeyCreatedAt)).NotEqual("")
		gt.Value(t, rec.String("priority")).Equal("medium")
		gt.Value(t, rec.String("status")).Equal("pending")
		gt.Value(t, rec.String("assignee")).Equal("")
		_, hasExtra := rec["extra"]
		gt.Bool(t, hasExtra).False()

		stored, err := uc.Resource.Get(ctx, types.ResourceTasks, rec.ID())
		gt.NoError(t, err).Required()
		gt.Value(t, stored.String("title")).Equal("Prepare venue")
	})

	t.Run("rejects empty required field", func(t *testing.T) {
		uc := newTestUseCases(t)
		_, err := uc.Resource.Create(ctx, types.ResourceArticles, model.Record{"title": "No slug", "slug": ""})

		var ve *model.ValidationError
		gt.Bool(t, errors.As(err, &ve)).True()
		gt.Value(t, ve.Field).Equal("slug")
		gt.Error(t, err).Is(model.ErrMissingRequired)

		list, err := uc.Resource.List(ctx, types.ResourceArticles, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})

	t.Run("coerces numbers and tags", func(t *testing.T) {
		uc := newTestUseCases(t)
		ev, err := uc.Resource.Create(ctx, types.ResourceEvents, model.Record{
			"title": "Seminar", "slug": "seminar", "date": "2025-07-15", "capacity": float64(200),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, ev["capacity"]).Equal(any(200))

		art, err := uc.Resource.Create(ctx, types.ResourceArticles, model.Record{
			"title": "A", "slug": "a", "tags": []any{"x", "y"},
		})
		gt.NoError(t, err).Required()
		gt.Array(t, art.Strings("tags")).Length(2)
	})

	t.Run("sanitises html fields", func(t *testing.T) {
		uc := newTestUseCases(t)
		rec, err := uc.Resource.Create(ctx, types.ResourceArticles, model.Record{
			"title":   "<b>kept as text</b>",
			"slug":    "xss",
			"content": `<p>Hello</p><script>alert(1)</script>`,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, rec.String("content")).Equal("<p>Hello</p>")
		gt.Value(t, rec.String("title")).Equal("<b>kept as text</b>")
	})

	t.Run("unknown resource", func(t *testing.T) {
		uc := newTestUseCases(t)
		_, err := uc.Resource.Create(ctx, "widgets", model.Record{"title": "x"})
		gt.Error(t, err).Is(model.ErrResourceNotFound)
	})
}

func TestResourceUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(t)

	for _, task := range []model.Record{
		{"title": "first", "status": "pending", "assignee": "aisyah"},
		{"title": "second", "status": "done", "assignee": "aisyah"},
		{"title": "third", "status": "pending", "assignee": "umar"},
	} {
		_, err := uc.Resource.Create(ctx, types.ResourceTasks, task)
		gt.NoError(t, err).Required()
	}

	t.Run("newest first", func(t *testing.T) {
		list, err := uc.Resource.List(ctx, types.ResourceTasks, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(3)
		gt.Value(t, list[0].String("title")).Equal("third")
		gt.Value(t, list[2].String("title")).Equal("first")
	})

	t.Run("declared filters", func(t *testing.T) {
		list, err := uc.Resource.List(ctx, types.ResourceTasks, map[string]string{"status": "pending", "assignee": "aisyah"})
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(1)
		gt.Value(t, list[0].String("title")).Equal("first")
	})

	t.Run("undeclared parameters are ignored", func(t *testing.T) {
		list, err := uc.Resource.List(ctx, types.ResourceTasks, map[string]string{"title": "first"})
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(3)
	})
}

func TestResourceUseCase_GetBySlug(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(t)

	created, err := uc.Resource.Create(ctx, types.ResourceEvents, model.Record{
		"title": "Workshop", "slug": "workshop-public-speaking", "date": "2025-07-22",
	})
	gt.NoError(t, err).Required()

	bySlug, err := uc.Resource.Get(ctx, types.ResourceEvents, "workshop-public-speaking")
	gt.NoError(t, err).Required()
	gt.Value(t, bySlug.ID()).Equal(created.ID())

	_, err = uc.Resource.Get(ctx, types.ResourceEvents, "missing")
	gt.Error(t, err).Is(usecase.ErrRecordNotFound)

	// members have no slug field, lookups are by id only
	_, err = uc.Resource.Get(ctx, types.ResourceMembers, "workshop-public-speaking")
	gt.Error(t, err).Is(usecase.ErrRecordNotFound)
}

func TestResourceUseCase_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(t)

	rec, err := uc.Resource.Create(ctx, types.ResourceArticles, model.Record{"title": "Old", "slug": "old"})
	gt.NoError(t, err).Required()

	updated, err := uc.Resource.Update(ctx, types.ResourceArticles, rec.ID(), model.Record{"title": "New", "slug": "old"})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.String("title")).Equal("New")
	gt.Value(t, updated.String(model.KeyCreatedAt)).Equal(rec.String(model.KeyCreatedAt))
	gt.Value(t, updated.String(model.KeyUpdatedAt)).NotEqual(rec.String(model.KeyUpdatedAt))

	_, err = uc.Resource.Update(ctx, types.ResourceArticles, "missing", model.Record{"title": "X", "slug": "x"})
	gt.Error(t, err).Is(usecase.ErrRecordNotFound)

	_, err = uc.Resource.Update(ctx, types.ResourceArticles, rec.ID(), model.Record{"title": ""})
	gt.Error(t, err).Is(model.ErrMissingRequired)

	gt.NoError(t, uc.Resource.Delete(ctx, types.ResourceArticles, rec.ID())).Required()
	gt.Error(t, uc.Resource.Delete(ctx, types.ResourceArticles, rec.ID())).Is(usecase.ErrRecordNotFound)
}
