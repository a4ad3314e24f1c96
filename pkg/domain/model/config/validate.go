package config

import (
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// reservedEndpoints are API paths served outside the generic resource routes
var reservedEndpoints = map[types.ResourceName]bool{
	"auth":     true,
	"schema":   true,
	"pages":    true,
	"ai-agent": true,
	"upload":   true,
	"uploads":  true,
	"seed":     true,
}

// Validate checks descriptor invariants: unique endpoints, unique field names
// per resource, known kinds, and options present if and only if kind is select.
func (s *Schema) Validate() error {
	seen := make(map[types.ResourceName]bool)
	for i := range s.Resources {
		r := &s.Resources[i]
		if err := r.Endpoint.Validate(); err != nil {
			return goerr.Wrap(err, "invalid resource endpoint", goerr.V(ResourceKey, r.Endpoint))
		}
		if reservedEndpoints[r.Endpoint] {
			return goerr.Wrap(ErrReservedResource, "endpoint is used by the API", goerr.V(ResourceKey, r.Endpoint))
		}
		if seen[r.Endpoint] {
			return goerr.Wrap(ErrDuplicateResource, "resource declared twice", goerr.V(ResourceKey, r.Endpoint))
		}
		seen[r.Endpoint] = true

		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the field descriptors of one resource
func (r *ResourceSchema) Validate() error {
	names := make(map[string]bool)
	for _, f := range r.Fields {
		if f.Name == "" {
			return goerr.Wrap(ErrEmptyFieldName, "field without name", goerr.V(ResourceKey, r.Endpoint))
		}
		if names[f.Name] {
			return goerr.Wrap(ErrDuplicateField, "field declared twice",
				goerr.V(ResourceKey, r.Endpoint), goerr.V(FieldKey, f.Name))
		}
		names[f.Name] = true

		kind := f.Kind.Normalize()
		if !kind.IsValid() {
			return goerr.Wrap(ErrInvalidFieldKind, "unknown field kind",
				goerr.V(ResourceKey, r.Endpoint), goerr.V(FieldKey, f.Name), goerr.V(KindKey, f.Kind))
		}
		if kind == types.FieldKindSelect && len(f.Options) == 0 {
			return goerr.Wrap(ErrMissingOptions, "select field requires options",
				goerr.V(ResourceKey, r.Endpoint), goerr.V(FieldKey, f.Name))
		}
		if kind != types.FieldKindSelect && len(f.Options) > 0 {
			return goerr.Wrap(ErrUnexpectedOptions, "options on non-select field",
				goerr.V(ResourceKey, r.Endpoint), goerr.V(FieldKey, f.Name), goerr.V(KindKey, kind))
		}
	}

	if r.SlugField != "" && !names[r.SlugField] {
		return goerr.Wrap(ErrInvalidSlugField, "slug field must be one of the descriptors",
			goerr.V(ResourceKey, r.Endpoint), goerr.V(FieldKey, r.SlugField))
	}
	return nil
}
