package model

import (
	"strconv"
	"strings"

	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Form turns a descriptor list plus a draft record into a validated payload.
// It holds no state besides the descriptors and never mutates its inputs.
type Form struct {
	fields []config.FieldDescriptor
	index  map[string]config.FieldDescriptor
}

// NewForm creates a Form over the given descriptors
func NewForm(fields []config.FieldDescriptor) *Form {
	index := make(map[string]config.FieldDescriptor, len(fields))
	for _, f := range fields {
		index[f.Name] = f
	}
	return &Form{fields: fields, index: index}
}

// Fields returns the descriptors in declaration order
func (f *Form) Fields() []config.FieldDescriptor {
	return f.fields
}

// InitializeDraft returns a copy of source for editing, or an empty record
// when source is nil.
func (f *Form) InitializeDraft(source Record) Record {
	if source == nil {
		return Record{}
	}
	return source.Clone()
}

// SetField stores raw under name after the kind-specific transform and
// returns a new record. Writes to undeclared names return the draft unchanged
// together with ErrUnknownField.
func (f *Form) SetField(draft Record, name, raw string) (Record, error) {
	desc, ok := f.index[name]
	if !ok {
		return draft, goerr.Wrap(ErrUnknownField, "cannot set field", goerr.V(FieldNameKey, name))
	}

	next := draft.Clone()
	if next == nil {
		next = Record{}
	}
	next[name] = ConvertInput(desc.Kind, raw)
	return next, nil
}

// Serialize validates required fields in descriptor order and returns only
// the declared keys present in the draft.
func (f *Form) Serialize(draft Record) (Record, error) {
	for _, desc := range f.fields {
		if desc.Required && IsEmptyValue(draft[desc.Name]) {
			return nil, &ValidationError{Field: desc.Name}
		}
	}

	payload := make(Record, len(f.fields))
	for _, desc := range f.fields {
		if v, ok := draft[desc.Name]; ok {
			payload[desc.Name] = cloneValue(v)
		}
	}
	return payload, nil
}

// DefaultValue returns the initial value shown for a field with no value
func DefaultValue(desc config.FieldDescriptor) any {
	switch desc.Kind.Normalize() {
	case types.FieldKindSelect:
		if len(desc.Options) > 0 && desc.Options[0].Value != "" {
			return desc.Options[0].Value
		}
		return "default"
	case types.FieldKindTags:
		return []string{}
	default:
		return ""
	}
}

// ConvertInput applies the kind-specific transform to raw user input
func ConvertInput(kind types.FieldKind, raw string) any {
	switch kind.Normalize() {
	case types.FieldKindTags:
		return SplitTags(raw)
	case types.FieldKindNumber:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0
		}
		return n
	default:
		return raw
	}
}

// SplitTags splits comma separated input into trimmed, non-empty tags
func SplitTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}

// JoinTags renders tags back into the editable comma separated form
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// IsEmptyValue reports whether a required field would be considered unset
func IsEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []string:
		return len(x) == 0
	case []any:
		return len(x) == 0
	default:
		return false
	}
}
