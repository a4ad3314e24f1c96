package interfaces

import (
	"sort"

	"github.com/geunaseh/jeumala/pkg/domain/model"
)

// DefaultListLimit caps list results when no limit is given
const DefaultListLimit = 1000

// ListOption is a functional option for filtering records in List
type ListOption func(*listConfig)

type listConfig struct {
	filters map[string]string
	sortBy  string
	desc    bool
	limit   int
}

// WithFilter keeps records whose key equals value
func WithFilter(key, value string) ListOption {
	return func(c *listConfig) {
		c.filters[key] = value
	}
}

// WithSort orders records by key. Values compare as strings, which is
// correct for the ISO-8601 timestamps and dates records carry.
func WithSort(key string, desc bool) ListOption {
	return func(c *listConfig) {
		c.sortBy = key
		c.desc = desc
	}
}

// WithLimit caps the number of returned records
func WithLimit(n int) ListOption {
	return func(c *listConfig) {
		c.limit = n
	}
}

// BuildListConfig builds a listConfig from options
func BuildListConfig(opts ...ListOption) *listConfig {
	cfg := &listConfig{
		filters: make(map[string]string),
		limit:   DefaultListLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Filters returns the equality filters
func (c *listConfig) Filters() map[string]string {
	return c.filters
}

// SortBy returns the sort key, or empty for storage order
func (c *listConfig) SortBy() string {
	return c.sortBy
}

// Desc reports whether sorting is descending
func (c *listConfig) Desc() bool {
	return c.desc
}

// Limit returns the maximum number of records
func (c *listConfig) Limit() int {
	return c.limit
}

// Match reports whether a record satisfies every filter
func (c *listConfig) Match(r model.Record) bool {
	for k, v := range c.filters {
		if r.String(k) != v {
			return false
		}
	}
	return true
}

// Apply filters, sorts and truncates records in place. Backends without
// native querying use it after loading a collection.
func (c *listConfig) Apply(records []model.Record) []model.Record {
	out := records[:0]
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}

	if c.sortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].String(c.sortBy), out[j].String(c.sortBy)
			if c.desc {
				return a > b
			}
			return a < b
		})
	}

	if c.limit > 0 && len(out) > c.limit {
		out = out[:c.limit]
	}
	return out
}
