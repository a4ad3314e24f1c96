package mongo

import (
	"context"
	"errors"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recordRepository struct {
	db               *mongo.Database
	collectionPrefix string
}

func (r *recordRepository) collection(resource types.ResourceName) *mongo.Collection {
	return r.db.Collection(collectionName(r.collectionPrefix, resource.String()))
}

// toDocument uses the record id as _id so ids stay unique per collection
func toDocument(rec model.Record) bson.M {
	doc := make(bson.M, len(rec)+1)
	for k, v := range rec {
		doc[k] = v
	}
	doc["_id"] = rec.ID()
	return doc
}

func fromDocument(doc bson.M) model.Record {
	rec := make(model.Record, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		rec[k] = fromBSON(v)
	}
	return rec
}

// fromBSON converts driver container types back into plain Go values
func fromBSON(v any) any {
	switch x := v.(type) {
	case primitive.A:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = fromBSON(e)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = fromBSON(e)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(x))
		for _, e := range x {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case int32:
		return int(x)
	default:
		return v
	}
}

func (r *recordRepository) Create(ctx context.Context, resource types.ResourceName, rec model.Record) error {
	if rec.ID() == "" {
		return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
	}

	if _, err := r.collection(resource).InsertOne(ctx, toDocument(rec)); err != nil {
		return goerr.Wrap(err, "failed to insert record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, rec.ID()))
	}
	return nil
}

func (r *recordRepository) findOne(ctx context.Context, resource types.ResourceName, filter bson.M) (model.Record, error) {
	var doc bson.M
	err := r.collection(resource).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V("filter", filter))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find record",
			goerr.V(model.ResourceKey, resource), goerr.V("filter", filter))
	}
	return fromDocument(doc), nil
}

func (r *recordRepository) Get(ctx context.Context, resource types.ResourceName, id string) (model.Record, error) {
	return r.findOne(ctx, resource, bson.M{"_id": id})
}

func (r *recordRepository) FindOne(ctx context.Context, resource types.ResourceName, key, value string) (model.Record, error) {
	return r.findOne(ctx, resource, bson.M{key: value})
}

func (r *recordRepository) List(ctx context.Context, resource types.ResourceName, opts ...interfaces.ListOption) ([]model.Record, error) {
	cfg := interfaces.BuildListConfig(opts...)

	filter := bson.M{}
	for k, v := range cfg.Filters() {
		filter[k] = v
	}

	find := options.Find()
	if cfg.SortBy() != "" {
		dir := 1
		if cfg.Desc() {
			dir = -1
		}
		find.SetSort(bson.D{{Key: cfg.SortBy(), Value: dir}})
	}
	if cfg.Limit() > 0 {
		find.SetLimit(int64(cfg.Limit()))
	}

	cur, err := r.collection(resource).Find(ctx, filter, find)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find records", goerr.V(model.ResourceKey, resource))
	}
	defer cur.Close(ctx)

	records := []model.Record{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record", goerr.V(model.ResourceKey, resource))
		}
		records = append(records, fromDocument(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, goerr.Wrap(err, "cursor error", goerr.V(model.ResourceKey, resource))
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, resource types.ResourceName, id string, fields model.Record) (model.Record, error) {
	set := bson.M{}
	for k, v := range fields {
		if k != model.KeyID {
			set[k] = v
		}
	}

	if len(set) > 0 {
		res, err := r.collection(resource).UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update record",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
		if res.MatchedCount == 0 {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
	}

	return r.Get(ctx, resource, id)
}

func (r *recordRepository) Delete(ctx context.Context, resource types.ResourceName, id string) error {
	res, err := r.collection(resource).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return goerr.Wrap(err, "failed to delete record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	if res.DeletedCount == 0 {
		return goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return nil
}

func (r *recordRepository) DeleteAll(ctx context.Context, resource types.ResourceName) error {
	if _, err := r.collection(resource).DeleteMany(ctx, bson.M{}); err != nil {
		return goerr.Wrap(err, "failed to delete records", goerr.V(model.ResourceKey, resource))
	}
	return nil
}

func (r *recordRepository) PutMany(ctx context.Context, resource types.ResourceName, records []model.Record) error {
	for _, rec := range records {
		if rec.ID() == "" {
			return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
		}
		_, err := r.collection(resource).ReplaceOne(ctx, bson.M{"_id": rec.ID()}, toDocument(rec),
			options.Replace().SetUpsert(true))
		if err != nil {
			return goerr.Wrap(err, "failed to put record",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, rec.ID()))
		}
	}
	return nil
}
