package model

import (
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ErrResourceNotFound is returned when a resource is not found in the registry
var ErrResourceNotFound = goerr.New("resource not found")

// ResourceRegistry holds resource schemas keyed by endpoint.
// It does not hold Repository or UseCase instances (settings only).
type ResourceRegistry struct {
	entries map[types.ResourceName]*config.ResourceSchema
	order   []types.ResourceName // preserves registration order
}

// NewResourceRegistry creates a registry populated from schema
func NewResourceRegistry(schema *config.Schema) *ResourceRegistry {
	r := &ResourceRegistry{
		entries: make(map[types.ResourceName]*config.ResourceSchema),
	}
	if schema != nil {
		for i := range schema.Resources {
			r.Register(&schema.Resources[i])
		}
	}
	return r
}

// Register adds a resource schema to the registry, replacing one with the same endpoint
func (r *ResourceRegistry) Register(entry *config.ResourceSchema) {
	if _, exists := r.entries[entry.Endpoint]; !exists {
		r.order = append(r.order, entry.Endpoint)
	}
	r.entries[entry.Endpoint] = entry
}

// Get retrieves a resource schema by endpoint
func (r *ResourceRegistry) Get(name types.ResourceName) (*config.ResourceSchema, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, goerr.Wrap(ErrResourceNotFound, "resource not found",
			goerr.V(ResourceKey, name))
	}
	return entry, nil
}

// List returns all registered resource schemas in registration order
func (r *ResourceRegistry) List() []*config.ResourceSchema {
	result := make([]*config.ResourceSchema, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.entries[name])
	}
	return result
}

// Schema rebuilds a Schema value for serving to clients
func (r *ResourceRegistry) Schema() *config.Schema {
	s := &config.Schema{Resources: make([]config.ResourceSchema, 0, len(r.order))}
	for _, entry := range r.List() {
		s.Resources = append(s.Resources, *entry)
	}
	return s
}
