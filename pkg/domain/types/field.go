package types

// FieldKind determines how a field is edited and how its raw input is stored
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindPassword FieldKind = "password"
	FieldKindDate     FieldKind = "date"
	FieldKindDateTime FieldKind = "datetime"
	FieldKindNumber   FieldKind = "number"
	FieldKindTextArea FieldKind = "textarea"
	FieldKindSelect   FieldKind = "select"
	FieldKindTags     FieldKind = "tags"
)

// AllFieldKinds returns all valid field kinds
func AllFieldKinds() []FieldKind {
	return []FieldKind{
		FieldKindText,
		FieldKindPassword,
		FieldKindDate,
		FieldKindDateTime,
		FieldKindNumber,
		FieldKindTextArea,
		FieldKindSelect,
		FieldKindTags,
	}
}

// IsValid checks if the field kind is valid
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindText,
		FieldKindPassword,
		FieldKindDate,
		FieldKindDateTime,
		FieldKindNumber,
		FieldKindTextArea,
		FieldKindSelect,
		FieldKindTags:
		return true
	default:
		return false
	}
}

// Normalize treats an empty kind as text, matching descriptors that omit it.
func (k FieldKind) Normalize() FieldKind {
	if k == "" {
		return FieldKindText
	}
	return k
}

// String returns the string representation of the field kind
func (k FieldKind) String() string {
	return string(k)
}
