package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRecordRepository(client *firestore.Client) *recordRepository {
	return &recordRepository{
		client: client,
	}
}

func (r *recordRepository) collection(resource types.ResourceName) *firestore.CollectionRef {
	return r.client.Collection(collectionName(r.collectionPrefix, resource.String()))
}

func (r *recordRepository) Create(ctx context.Context, resource types.ResourceName, rec model.Record) error {
	id := rec.ID()
	if id == "" {
		return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
	}

	if _, err := r.collection(resource).Doc(id).Create(ctx, map[string]any(rec)); err != nil {
		return goerr.Wrap(err, "failed to create record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, resource types.ResourceName, id string) (model.Record, error) {
	doc, err := r.collection(resource).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return model.Record(doc.Data()), nil
}

func (r *recordRepository) FindOne(ctx context.Context, resource types.ResourceName, key, value string) (model.Record, error) {
	iter := r.collection(resource).Where(key, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V("key", key), goerr.V("value", value))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query record",
			goerr.V(model.ResourceKey, resource), goerr.V("key", key))
	}
	return model.Record(doc.Data()), nil
}

func (r *recordRepository) List(ctx context.Context, resource types.ResourceName, opts ...interfaces.ListOption) ([]model.Record, error) {
	cfg := interfaces.BuildListConfig(opts...)

	q := r.collection(resource).Query
	for k, v := range cfg.Filters() {
		q = q.Where(k, "==", v)
	}
	if cfg.SortBy() != "" {
		dir := firestore.Asc
		if cfg.Desc() {
			dir = firestore.Desc
		}
		q = q.OrderBy(cfg.SortBy(), dir)
	}
	if cfg.Limit() > 0 {
		q = q.Limit(cfg.Limit())
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	records := []model.Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate records", goerr.V(model.ResourceKey, resource))
		}
		records = append(records, model.Record(doc.Data()))
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, resource types.ResourceName, id string, fields model.Record) (model.Record, error) {
	docRef := r.collection(resource).Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "record not found",
					goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
			}
			return goerr.Wrap(err, "failed to get record")
		}

		data := make(map[string]any, len(fields))
		for k, v := range fields {
			if k != model.KeyID {
				data[k] = v
			}
		}
		return tx.Set(docRef, data, firestore.MergeAll)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}

	return r.Get(ctx, resource, id)
}

func (r *recordRepository) Delete(ctx context.Context, resource types.ResourceName, id string) error {
	docRef := r.collection(resource).Doc(id)

	// Check if document exists first
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "record not found",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
		return goerr.Wrap(err, "failed to get record", goerr.V(model.RecordIDKey, id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return nil
}

func (r *recordRepository) DeleteAll(ctx context.Context, resource types.ResourceName) error {
	iter := r.collection(resource).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate records", goerr.V(model.ResourceKey, resource))
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete record",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, doc.Ref.ID))
		}
	}
	return nil
}

func (r *recordRepository) PutMany(ctx context.Context, resource types.ResourceName, records []model.Record) error {
	for _, rec := range records {
		id := rec.ID()
		if id == "" {
			return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
		}
		if _, err := r.collection(resource).Doc(id).Set(ctx, map[string]any(rec)); err != nil {
			return goerr.Wrap(err, "failed to put record",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
	}
	return nil
}
