package mongo

import (
	"context"
	"errors"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pageRepository struct {
	db               *mongo.Database
	collectionPrefix string
}

func (r *pageRepository) collection() *mongo.Collection {
	return r.db.Collection(collectionName(r.collectionPrefix, "pages"))
}

func (r *pageRepository) Put(ctx context.Context, page *model.Page) error {
	if err := page.Validate(); err != nil {
		return goerr.Wrap(err, "invalid page")
	}

	_, err := r.collection().ReplaceOne(ctx, bson.M{"pageId": page.PageID}, page,
		options.Replace().SetUpsert(true))
	if err != nil {
		return goerr.Wrap(err, "failed to upsert page", goerr.V("page_id", page.PageID))
	}
	return nil
}

func (r *pageRepository) Get(ctx context.Context, pageID string) (*model.Page, error) {
	var page model.Page
	err := r.collection().FindOne(ctx, bson.M{"pageId": pageID}).Decode(&page)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "page not found", goerr.V("page_id", pageID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find page", goerr.V("page_id", pageID))
	}
	return normalizePage(&page), nil
}

func (r *pageRepository) List(ctx context.Context) ([]*model.Page, error) {
	cur, err := r.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "pageId", Value: 1}}))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find pages")
	}
	defer cur.Close(ctx)

	pages := []*model.Page{}
	for cur.Next(ctx) {
		var page model.Page
		if err := cur.Decode(&page); err != nil {
			return nil, goerr.Wrap(err, "failed to decode page")
		}
		pages = append(pages, normalizePage(&page))
	}
	if err := cur.Err(); err != nil {
		return nil, goerr.Wrap(err, "cursor error")
	}
	return pages, nil
}

func (r *pageRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.collection().DeleteMany(ctx, bson.M{}); err != nil {
		return goerr.Wrap(err, "failed to delete pages")
	}
	return nil
}

// normalizePage converts nested section values decoded as driver types
func normalizePage(p *model.Page) *model.Page {
	for i, s := range p.Sections {
		converted, ok := fromBSON(bson.M(s)).(map[string]any)
		if ok {
			p.Sections[i] = converted
		}
	}
	return p
}
