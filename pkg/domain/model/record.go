package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Server-managed record keys
const (
	KeyID        = "id"
	KeyCreatedAt = "createdAt"
	KeyUpdatedAt = "updatedAt"
)

// Record is one persisted or in-progress item of a resource collection.
// Persisted records carry a server-assigned id.
type Record map[string]any

// NewRecordID generates an identifier for a newly created record
func NewRecordID() string {
	return uuid.NewString()
}

// TimeLayout is RFC 3339 with a fixed-width fraction so stored timestamps
// sort lexically
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders timestamps the way records store them
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ID returns the record identifier, or empty for unsaved drafts
func (r Record) ID() string {
	return r.String(KeyID)
}

// String returns the value of key as a string. Non-string scalars are
// formatted; absent keys yield "".
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []string, []any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// Strings returns a sequence value as []string
func (r Record) Strings(key string) []string {
	return StringSlice(r[key])
}

// StringSlice converts a sequence value to []string. Decoded JSON arrays
// arrive as []any and are converted element-wise; non-sequences yield nil.
func StringSlice(v any) []string {
	switch v := v.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out
	default:
		return nil
	}
}

// Clone returns a deep copy so drafts never share slices with list snapshots
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []string:
		return append([]string{}, x...)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		return map[string]any(Record(x).Clone())
	case Record:
		return x.Clone()
	default:
		return v
	}
}

// CloneRecords deep-copies a list of records
func CloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
