package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// PageUseCase manages the hero content of static pages
type PageUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewPageUseCase(repo interfaces.Repository, now func() time.Time) *PageUseCase {
	return &PageUseCase{repo: repo, now: now}
}

// Get returns the stored page, or an empty default for unknown IDs
func (uc *PageUseCase) Get(ctx context.Context, pageID string) (*model.Page, error) {
	page, err := uc.repo.Page().Get(ctx, pageID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return model.DefaultPage(pageID), nil
		}
		return nil, goerr.Wrap(err, "failed to get page", goerr.V(PageIDKey, pageID))
	}
	if page.Sections == nil {
		page.Sections = []map[string]any{}
	}
	return page, nil
}

// List returns every stored page
func (uc *PageUseCase) List(ctx context.Context) ([]*model.Page, error) {
	pages, err := uc.repo.Page().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pages")
	}
	return pages, nil
}

// Save creates or replaces the page with the same PageID
func (uc *PageUseCase) Save(ctx context.Context, page *model.Page) error {
	if err := page.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidInput, err.Error())
	}
	if page.ID == "" {
		page.ID = model.NewRecordID()
	}
	if page.Sections == nil {
		page.Sections = []map[string]any{}
	}
	page.UpdatedAt = uc.now().UTC()

	if err := uc.repo.Page().Put(ctx, page); err != nil {
		return goerr.Wrap(err, "failed to save page", goerr.V(PageIDKey, page.PageID))
	}
	return nil
}
