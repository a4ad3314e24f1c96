package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type pageRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPageRepository(client *firestore.Client) *pageRepository {
	return &pageRepository{
		client: client,
	}
}

func (r *pageRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, "pages"))
}

func (r *pageRepository) Put(ctx context.Context, page *model.Page) error {
	if err := page.Validate(); err != nil {
		return goerr.Wrap(err, "invalid page")
	}

	if _, err := r.collection().Doc(page.PageID).Set(ctx, page); err != nil {
		return goerr.Wrap(err, "failed to put page", goerr.V("page_id", page.PageID))
	}
	return nil
}

func (r *pageRepository) Get(ctx context.Context, pageID string) (*model.Page, error) {
	doc, err := r.collection().Doc(pageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "page not found", goerr.V("page_id", pageID))
		}
		return nil, goerr.Wrap(err, "failed to get page", goerr.V("page_id", pageID))
	}

	var page model.Page
	if err := doc.DataTo(&page); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal page", goerr.V("page_id", pageID))
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]*model.Page, error) {
	iter := r.collection().OrderBy("pageId", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	pages := []*model.Page{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate pages")
		}

		var page model.Page
		if err := doc.DataTo(&page); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal page", goerr.V("doc_id", doc.Ref.ID))
		}
		pages = append(pages, &page)
	}
	return pages, nil
}

func (r *pageRepository) DeleteAll(ctx context.Context) error {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate pages")
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete page", goerr.V("page_id", doc.Ref.ID))
		}
	}
	return nil
}
