package usecase_test

import (
	"context"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestPageUseCase(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCases(t)

	t.Run("unknown page yields defaults", func(t *testing.T) {
		page, err := uc.Page.Get(ctx, "contact")
		gt.NoError(t, err).Required()
		gt.Value(t, page.PageID).Equal("contact")
		gt.Value(t, page.HeroTitle).Equal("")
		gt.Array(t, page.Sections).Length(0)
	})

	t.Run("save upserts by page id", func(t *testing.T) {
		gt.NoError(t, uc.Page.Save(ctx, &model.Page{PageID: "home", HeroTitle: "First"})).Required()
		gt.NoError(t, uc.Page.Save(ctx, &model.Page{PageID: "home", HeroTitle: "Second"})).Required()

		page, err := uc.Page.Get(ctx, "home")
		gt.NoError(t, err).Required()
		gt.Value(t, page.HeroTitle).Equal("Second")
		gt.Bool(t, page.UpdatedAt.IsZero()).False()

		pages, err := uc.Page.List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pages).Length(1)
	})

	t.Run("page id is required", func(t *testing.T) {
		gt.Error(t, uc.Page.Save(ctx, &model.Page{HeroTitle: "x"})).Is(usecase.ErrInvalidInput)
	})
}
