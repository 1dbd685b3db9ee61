package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-level problems with an input or
// config struct. Build turns them into a single InvalidArgument error,
// or nil when nothing was recorded, so call sites can check every field
// before returning.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder.
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Fieldf records a formatted problem for a field.
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], fmt.Sprintf(format, args...))
	return vb
}

// RequiredField records a missing required field.
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Fieldf(field, "is required")
}

// InvalidField records a field whose value was rejected.
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns an InvalidArgument error describing every recorded
// field, or nil when the builder is empty. Fields appear in the message
// in sorted order so repeated runs produce the same string. The
// per-field detail travels in the "invalid_fields" meta entry.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", ")))
	}

	err := InvalidArgumentf("validation failed: %s", strings.Join(parts, "; "))
	return err.WithMeta("invalid_fields", vb.fields)
}

// ValidateRequired records a missing-field problem when value is empty
// or whitespace.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}
