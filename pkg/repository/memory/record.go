package memory

import (
	"context"
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// collection keeps insertion order so unsorted lists are stable
type collection struct {
	order   []string
	records map[string]model.Record
}

type recordRepository struct {
	mu          sync.RWMutex
	collections map[types.ResourceName]*collection
}

func newRecordRepository() *recordRepository {
	return &recordRepository{
		collections: make(map[types.ResourceName]*collection),
	}
}

func (r *recordRepository) ensureCollection(resource types.ResourceName) *collection {
	c, ok := r.collections[resource]
	if !ok {
		c = &collection{records: make(map[string]model.Record)}
		r.collections[resource] = c
	}
	return c
}

func (c *collection) put(rec model.Record) {
	id := rec.ID()
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = rec.Clone()
}

func (c *collection) remove(id string) {
	delete(c.records, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (r *recordRepository) Create(ctx context.Context, resource types.ResourceName, rec model.Record) error {
	if rec.ID() == "" {
		return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.ensureCollection(resource)
	if _, exists := c.records[rec.ID()]; exists {
		return goerr.New("record already exists",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, rec.ID()))
	}
	c.put(rec)
	return nil
}

func (r *recordRepository) Get(ctx context.Context, resource types.ResourceName, id string) (model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[resource]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	rec, ok := c.records[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return rec.Clone(), nil
}

func (r *recordRepository) FindOne(ctx context.Context, resource types.ResourceName, key, value string) (model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.collections[resource]; ok {
		for _, id := range c.order {
			if rec := c.records[id]; rec.String(key) == value {
				return rec.Clone(), nil
			}
		}
	}
	return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
		goerr.V(model.ResourceKey, resource), goerr.V("key", key), goerr.V("value", value))
}

func (r *recordRepository) List(ctx context.Context, resource types.ResourceName, opts ...interfaces.ListOption) ([]model.Record, error) {
	cfg := interfaces.BuildListConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[resource]
	if !ok {
		return []model.Record{}, nil
	}

	records := make([]model.Record, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, c.records[id].Clone())
	}
	return cfg.Apply(records), nil
}

func (r *recordRepository) Update(ctx context.Context, resource types.ResourceName, id string, fields model.Record) (model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[resource]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	existing, ok := c.records[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}

	updated := existing.Clone()
	for k, v := range fields.Clone() {
		if k == model.KeyID {
			continue
		}
		updated[k] = v
	}
	c.records[id] = updated
	return updated.Clone(), nil
}

func (r *recordRepository) Delete(ctx context.Context, resource types.ResourceName, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[resource]
	if !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	if _, ok := c.records[id]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	c.remove(id)
	return nil
}

func (r *recordRepository) DeleteAll(ctx context.Context, resource types.ResourceName) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.collections, resource)
	return nil
}

func (r *recordRepository) PutMany(ctx context.Context, resource types.ResourceName, records []model.Record) error {
	for _, rec := range records {
		if rec.ID() == "" {
			return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.ensureCollection(resource)
	for _, rec := range records {
		c.put(rec)
	}
	return nil
}
