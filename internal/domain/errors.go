package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error kinds. Every FieldError unwraps to exactly one of these.
var (
	ErrRequiredFieldMissing  = errors.New("required field missing")
	ErrUnknownCategory       = errors.New("unknown category")
	ErrSubtypeNotInCategory  = errors.New("subtype not in category")
	ErrInvalidLocationFormat = errors.New("invalid location format")
	ErrCoordinateOutOfRange  = errors.New("coordinate out of range")
)

// Submission field names used in FieldError.Field.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldSubtype     = "subtype"
	FieldLocation    = "location"
)

// FieldError is a single input problem tied to one submission field.
type FieldError struct {
	Field    string `json:"field"`
	Kind     error  `json:"-"`
	Value    string `json:"value,omitempty"`
	Category string `json:"category,omitempty"` // set for SubtypeNotInCategory
}

func (e FieldError) Error() string {
	switch {
	case e.Category != "":
		return fmt.Sprintf("%s: %v: %q under %q", e.Field, e.Kind, e.Value, e.Category)
	case e.Value != "":
		return fmt.Sprintf("%s: %v: %q", e.Field, e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
}

func (e FieldError) Unwrap() error { return e.Kind }

// ValidationError collects every FieldError found while building a
// submission. A non-nil ValidationError always holds at least one entry.
type ValidationError struct {
	Errors []FieldError
}

func (v *ValidationError) Error() string {
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.Error()
	}
	return "invalid submission: " + strings.Join(msgs, "; ")
}

// Unwrap exposes each FieldError so errors.Is matches any contained kind.
func (v *ValidationError) Unwrap() []error {
	errs := make([]error, len(v.Errors))
	for i, e := range v.Errors {
		errs[i] = e
	}
	return errs
}

// Has reports whether any entry is of the given kind.
func (v *ValidationError) Has(kind error) bool {
	for _, e := range v.Errors {
		if errors.Is(e.Kind, kind) {
			return true
		}
	}
	return false
}

// Fields returns the distinct field names with errors, in detection order.
func (v *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(v.Errors))
	fields := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		if !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// KindName returns a stable snake_case identifier for a kind, used for
// metric labels and API payloads.
func KindName(kind error) string {
	switch {
	case errors.Is(kind, ErrRequiredFieldMissing):
		return "required_field_missing"
	case errors.Is(kind, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(kind, ErrSubtypeNotInCategory):
		return "subtype_not_in_category"
	case errors.Is(kind, ErrInvalidLocationFormat):
		return "invalid_location_format"
	case errors.Is(kind, ErrCoordinateOutOfRange):
		return "coordinate_out_of_range"
	default:
		return "unknown"
	}
}

func (v *ValidationError) add(field string, kind error, value string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Kind: kind, Value: value})
}
