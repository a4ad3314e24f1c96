package interfaces

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
)

// RecordRepository stores schema-driven records, one collection per resource
type RecordRepository interface {
	// Create stores a new record. The record must carry an id.
	Create(ctx context.Context, resource types.ResourceName, r model.Record) error

	// Get retrieves a record by id
	Get(ctx context.Context, resource types.ResourceName, id string) (model.Record, error)

	// FindOne retrieves the first record whose key equals value
	FindOne(ctx context.Context, resource types.ResourceName, key, value string) (model.Record, error)

	// List retrieves records with optional filtering and ordering
	List(ctx context.Context, resource types.ResourceName, opts ...ListOption) ([]model.Record, error)

	// Update merges fields into an existing record and returns the result
	Update(ctx context.Context, resource types.ResourceName, id string, fields model.Record) (model.Record, error)

	// Delete deletes a record by id
	Delete(ctx context.Context, resource types.ResourceName, id string) error

	// DeleteAll removes every record of the resource
	DeleteAll(ctx context.Context, resource types.ResourceName) error

	// PutMany stores records, replacing ones with the same id
	PutMany(ctx context.Context, resource types.ResourceName, records []model.Record) error
}
