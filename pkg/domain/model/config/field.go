package config

import "github.com/geunaseh/jeumala/pkg/domain/types"

// FieldOption represents an option for select fields
type FieldOption struct {
	Value string `json:"value" toml:"value" yaml:"value"`
	Label string `json:"label" toml:"label" yaml:"label"`
}

// FieldDescriptor describes one editable attribute of a resource
type FieldDescriptor struct {
	Name     string          `json:"name" toml:"name" yaml:"name"`
	Label    string          `json:"label" toml:"label" yaml:"label"`
	Kind     types.FieldKind `json:"kind" toml:"kind" yaml:"kind"`
	Required bool            `json:"required,omitempty" toml:"required,omitempty" yaml:"required,omitempty"`
	Options  []FieldOption   `json:"options,omitempty" toml:"options,omitempty" yaml:"options,omitempty"` // Only used for select kind

	// Sanitize marks HTML content that the server passes through the UGC policy
	Sanitize bool `json:"sanitize,omitempty" toml:"sanitize,omitempty" yaml:"sanitize,omitempty"`
}

// ResourceSchema is the (title, endpoint, descriptors) configuration of one
// admin screen, plus the server-side hints for listing and lookup.
type ResourceSchema struct {
	Title    string             `json:"title" toml:"title" yaml:"title"`
	Endpoint types.ResourceName `json:"endpoint" toml:"endpoint" yaml:"endpoint"`
	Fields   []FieldDescriptor  `json:"fields" toml:"fields" yaml:"fields"`

	// Public resources can be listed and read without a bearer token
	Public bool `json:"public" toml:"public" yaml:"public"`
	// SlugField is looked up when GET /{endpoint}/{key} does not match an id
	SlugField string `json:"slugField,omitempty" toml:"slugField,omitempty" yaml:"slugField,omitempty"`
	// SortBy is the record key used for listing; empty means createdAt
	SortBy string `json:"sortBy,omitempty" toml:"sortBy,omitempty" yaml:"sortBy,omitempty"`
	// SortAsc reverses the default newest-first order
	SortAsc bool `json:"sortAsc,omitempty" toml:"sortAsc,omitempty" yaml:"sortAsc,omitempty"`
	// Filters maps query parameter names to record keys, e.g. doc_type -> docType
	Filters map[string]string `json:"filters,omitempty" toml:"filters,omitempty" yaml:"filters,omitempty"`
	// Limit caps list responses; zero means the repository default
	Limit int `json:"limit,omitempty" toml:"limit,omitempty" yaml:"limit,omitempty"`
	// Hidden resources are served by the API but have no admin screen
	Hidden bool `json:"hidden,omitempty" toml:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// Field returns the descriptor with the given name
func (s *ResourceSchema) Field(name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// Schema holds the complete resource configuration in display order
type Schema struct {
	Resources []ResourceSchema `json:"resources" toml:"resources" yaml:"resources"`
}
