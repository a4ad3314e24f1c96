package config

import "github.com/m-mizutani/goerr/v2"

// Schema validation errors
var (
	ErrDuplicateResource = goerr.New("duplicate resource endpoint")
	ErrDuplicateField    = goerr.New("duplicate field name")
	ErrEmptyFieldName    = goerr.New("field name is empty")
	ErrInvalidFieldKind  = goerr.New("invalid field kind")
	ErrMissingOptions    = goerr.New("select field has no options")
	ErrUnexpectedOptions = goerr.New("options are only allowed on select fields")
	ErrInvalidSlugField  = goerr.New("slug field is not declared")
	ErrReservedResource  = goerr.New("resource endpoint is reserved")
)

// Context keys for error values
const (
	ResourceKey = "resource"
	FieldKey    = "field"
	KindKey     = "kind"
)
