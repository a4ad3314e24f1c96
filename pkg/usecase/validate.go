package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ValidationIssue represents a single inconsistency between a stored record
// and its resource schema
type ValidationIssue struct {
	Resource types.ResourceName
	RecordID string
	Field    string
	Message  string
	Expected string
	Actual   string
}

// ValidationResult holds the results of DB validation
type ValidationResult struct {
	Issues  []ValidationIssue
	Checked int
}

// HasIssues returns true if there are any validation issues
func (r *ValidationResult) HasIssues() bool {
	return len(r.Issues) > 0
}

// AddIssue adds a validation issue to the result
func (r *ValidationResult) AddIssue(issue ValidationIssue) {
	r.Issues = append(r.Issues, issue)
}

// ValidateDB checks every stored record against the configured schema:
// required fields must be non-empty and select values must be one of the
// declared options. It does NOT modify any data.
func (uc *UseCases) ValidateDB(ctx context.Context) (*ValidationResult, error) {
	result := &ValidationResult{}

	for _, schema := range uc.registry.List() {
		records, err := uc.repo.Record().List(ctx, schema.Endpoint)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list records",
				goerr.V(ResourceKey, schema.Endpoint))
		}

		for _, rec := range records {
			result.Checked++
			validateRecord(result, schema, rec)
		}
	}

	return result, nil
}

func validateRecord(result *ValidationResult, schema *config.ResourceSchema, rec model.Record) {
	for _, f := range schema.Fields {
		v, present := rec[f.Name]

		if f.Required && model.IsEmptyValue(v) {
			result.AddIssue(ValidationIssue{
				Resource: schema.Endpoint,
				RecordID: rec.ID(),
				Field:    f.Name,
				Message:  "required field is empty",
				Expected: "non-empty value",
				Actual:   "<empty>",
			})
			continue
		}

		if !present || f.Kind.Normalize() != types.FieldKindSelect {
			continue
		}
		actual := rec.String(f.Name)
		if actual == "" {
			continue
		}
		valid := extractOptionValues(f)
		if !slices.Contains(valid, actual) {
			result.AddIssue(ValidationIssue{
				Resource: schema.Endpoint,
				RecordID: rec.ID(),
				Field:    f.Name,
				Message:  "value is not a declared option",
				Expected: fmt.Sprintf("one of %v", valid),
				Actual:   actual,
			})
		}
	}
}

// extractOptionValues returns the list of valid option values from a field descriptor
func extractOptionValues(f config.FieldDescriptor) []string {
	values := make([]string, len(f.Options))
	for i, opt := range f.Options {
		values[i] = opt.Value
	}
	return values
}
