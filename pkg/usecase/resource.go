package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/microcosm-cc/bluemonday"
)

// ResourceUseCase implements CRUD for every schema-driven resource
type ResourceUseCase struct {
	repo     interfaces.Repository
	registry *model.ResourceRegistry
	policy   *bluemonday.Policy
	now      func() time.Time
}

func NewResourceUseCase(repo interfaces.Repository, registry *model.ResourceRegistry, now func() time.Time) *ResourceUseCase {
	return &ResourceUseCase{
		repo:     repo,
		registry: registry,
		policy:   bluemonday.UGCPolicy(),
		now:      now,
	}
}

// Schema returns the schema of one resource
func (uc *ResourceUseCase) Schema(name types.ResourceName) (*config.ResourceSchema, error) {
	return uc.registry.Get(name)
}

// List returns records of a resource. query holds raw query parameters; only
// the ones declared in the schema's Filters are applied.
func (uc *ResourceUseCase) List(ctx context.Context, name types.ResourceName, query map[string]string) ([]model.Record, error) {
	schema, err := uc.registry.Get(name)
	if err != nil {
		return nil, err
	}

	opts := []interfaces.ListOption{listSort(schema)}
	for param, key := range schema.Filters {
		if v := query[param]; v != "" {
			opts = append(opts, interfaces.WithFilter(key, v))
		}
	}
	if schema.Limit > 0 {
		opts = append(opts, interfaces.WithLimit(schema.Limit))
	}

	records, err := uc.repo.Record().List(ctx, name, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records", goerr.V(ResourceKey, name))
	}
	return records, nil
}

func listSort(schema *config.ResourceSchema) interfaces.ListOption {
	key := schema.SortBy
	if key == "" {
		key = model.KeyCreatedAt
	}
	return interfaces.WithSort(key, !schema.SortAsc)
}

// Get looks a record up by id, then by the schema's slug field
func (uc *ResourceUseCase) Get(ctx context.Context, name types.ResourceName, key string) (model.Record, error) {
	schema, err := uc.registry.Get(name)
	if err != nil {
		return nil, err
	}

	rec, err := uc.repo.Record().Get(ctx, name, key)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to get record", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, key))
	}

	if schema.SlugField != "" {
		rec, err = uc.repo.Record().FindOne(ctx, name, schema.SlugField, key)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to find record by slug", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, key))
		}
	}

	return nil, goerr.Wrap(ErrRecordNotFound, "record not found", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, key))
}

// Create validates payload against the schema and stores it with a new id.
// Declared fields absent from payload get their default value.
func (uc *ResourceUseCase) Create(ctx context.Context, name types.ResourceName, payload model.Record) (model.Record, error) {
	schema, err := uc.registry.Get(name)
	if err != nil {
		return nil, err
	}

	rec, err := uc.prepare(schema, payload)
	if err != nil {
		return nil, err
	}
	for _, f := range schema.Fields {
		if _, ok := rec[f.Name]; !ok {
			rec[f.Name] = storedDefault(f)
		}
	}

	now := model.FormatTime(uc.now())
	rec[model.KeyID] = model.NewRecordID()
	rec[model.KeyCreatedAt] = now
	rec[model.KeyUpdatedAt] = now

	if err := uc.repo.Record().Create(ctx, name, rec); err != nil {
		return nil, goerr.Wrap(err, "failed to create record", goerr.V(ResourceKey, name))
	}
	return rec, nil
}

// Update validates payload and merges it into record id
func (uc *ResourceUseCase) Update(ctx context.Context, name types.ResourceName, id string, payload model.Record) (model.Record, error) {
	schema, err := uc.registry.Get(name)
	if err != nil {
		return nil, err
	}

	rec, err := uc.prepare(schema, payload)
	if err != nil {
		return nil, err
	}
	rec[model.KeyUpdatedAt] = model.FormatTime(uc.now())

	updated, err := uc.repo.Record().Update(ctx, name, id, rec)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRecordNotFound, "record not found", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to update record", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, id))
	}
	return updated, nil
}

// Delete removes record id
func (uc *ResourceUseCase) Delete(ctx context.Context, name types.ResourceName, id string) error {
	if _, err := uc.registry.Get(name); err != nil {
		return err
	}

	if err := uc.repo.Record().Delete(ctx, name, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrRecordNotFound, "record not found", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete record", goerr.V(ResourceKey, name), goerr.V(RecordIDKey, id))
	}
	return nil
}

// prepare runs the form serialization, coerces values to their kind and
// sanitises HTML fields. A *model.ValidationError is returned unwrapped.
func (uc *ResourceUseCase) prepare(schema *config.ResourceSchema, payload model.Record) (model.Record, error) {
	rec, err := model.NewForm(schema.Fields).Serialize(payload)
	if err != nil {
		return nil, err
	}

	for _, f := range schema.Fields {
		v, ok := rec[f.Name]
		if !ok {
			continue
		}
		v = coerce(f.Kind, v)
		if s, isString := v.(string); isString && f.Sanitize {
			v = uc.policy.Sanitize(s)
		}
		rec[f.Name] = v
	}
	return rec, nil
}

// coerce normalises JSON-decoded values so records store one representation
// per field kind
func coerce(kind types.FieldKind, v any) any {
	switch kind.Normalize() {
	case types.FieldKindNumber:
		switch n := v.(type) {
		case string:
			return model.ConvertInput(kind, n)
		case float64:
			if n == math.Trunc(n) {
				return int(n)
			}
			return n
		}
	case types.FieldKindTags:
		switch t := v.(type) {
		case string:
			return model.SplitTags(t)
		case []any:
			return model.StringSlice(t)
		}
	}
	return v
}

func storedDefault(f config.FieldDescriptor) any {
	if f.Kind.Normalize() == types.FieldKindNumber {
		return 0
	}
	return model.DefaultValue(f)
}
