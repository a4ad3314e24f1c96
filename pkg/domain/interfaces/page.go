package interfaces

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/model"
)

// PageRepository stores static page content keyed by page ID
type PageRepository interface {
	// Put creates or replaces the page with the same PageID
	Put(ctx context.Context, page *model.Page) error
	Get(ctx context.Context, pageID string) (*model.Page, error)
	List(ctx context.Context) ([]*model.Page, error)
	DeleteAll(ctx context.Context) error
}
