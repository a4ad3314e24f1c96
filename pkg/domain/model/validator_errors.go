package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrMissingRequired = goerr.New("required field is missing")
	ErrUnknownField    = goerr.New("field is not declared in descriptors")
)

// Context keys for error values
const (
	FieldNameKey = "field_name"
	ResourceKey  = "resource"
	RecordIDKey  = "record_id"
)

// ValidationError reports the first required field whose value is empty at
// submission time. It matches ErrMissingRequired with errors.Is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "required field is empty: " + e.Field
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequired
}
