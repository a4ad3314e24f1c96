package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type pageRepository struct {
	mu    sync.RWMutex
	pages map[string]*model.Page
}

func newPageRepository() *pageRepository {
	return &pageRepository{
		pages: make(map[string]*model.Page),
	}
}

func copyPage(p *model.Page) *model.Page {
	copied := *p
	if p.Sections != nil {
		copied.Sections = make([]map[string]any, len(p.Sections))
		for i, s := range p.Sections {
			copied.Sections[i] = map[string]any(model.Record(s).Clone())
		}
	}
	return &copied
}

func (r *pageRepository) Put(ctx context.Context, page *model.Page) error {
	if err := page.Validate(); err != nil {
		return goerr.Wrap(err, "invalid page")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pages[page.PageID] = copyPage(page)
	return nil
}

func (r *pageRepository) Get(ctx context.Context, pageID string) (*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[pageID]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "page not found", goerr.V("page_id", pageID))
	}
	return copyPage(p), nil
}

func (r *pageRepository) List(ctx context.Context) ([]*model.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]*model.Page, 0, len(r.pages))
	for _, p := range r.pages {
		pages = append(pages, copyPage(p))
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].PageID < pages[j].PageID
	})
	return pages, nil
}

func (r *pageRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pages = make(map[string]*model.Page)
	return nil
}
