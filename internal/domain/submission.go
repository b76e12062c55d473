package domain

import (
	"errors"
	"slices"
	"strings"
)

// RawSubmission is the form input as typed by the reporter. Every field is a
// raw string; nothing here has been validated.
type RawSubmission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Subtype     string   `json:"subtype,omitempty"`
	Location    string   `json:"location"`
	Severity    string   `json:"severity,omitempty"` // ignored: severity is always computed
	Media       []string `json:"media,omitempty"`
}

// ProblemSubmission is a fully validated, severity-stamped report. Values
// are only produced by Build and are not modified afterwards.
type ProblemSubmission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Subtype     string   `json:"subtype,omitempty"`
	Severity    Severity `json:"severity"`
	Location    Location `json:"location"`
	Media       []string `json:"media,omitempty"`
}

// Build validates raw input and assembles a ProblemSubmission. All detected
// problems are returned together as a *ValidationError; no partial
// submission is ever returned alongside it.
//
// Checks, in order: required fields (title, description, category, location),
// category membership, subtype membership under the chosen category, and
// location syntax followed by coordinate range.
func Build(in RawSubmission) (ProblemSubmission, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	rawCategory := strings.TrimSpace(in.Category)
	subtype := strings.ToLower(strings.TrimSpace(in.Subtype))
	rawLocation := strings.TrimSpace(in.Location)

	for _, f := range []struct{ name, value string }{
		{FieldTitle, title},
		{FieldDescription, description},
		{FieldCategory, rawCategory},
		{FieldLocation, rawLocation},
	} {
		if f.value == "" {
			verr.add(f.name, ErrRequiredFieldMissing, "")
		}
	}

	var category Category
	if rawCategory != "" {
		c, err := ParseCategory(rawCategory)
		if err != nil {
			verr.add(FieldCategory, ErrUnknownCategory, rawCategory)
		}
		category = c
	}

	// A subtype can only be judged against a known category.
	if subtype != "" && category != "" && !IsValidSubtype(string(category), subtype) {
		verr.Errors = append(verr.Errors, FieldError{
			Field:    FieldSubtype,
			Kind:     ErrSubtypeNotInCategory,
			Value:    strings.TrimSpace(in.Subtype),
			Category: string(category),
		})
	}

	var loc Location
	if rawLocation != "" {
		parsed, err := ParseLocation(rawLocation)
		switch {
		case err != nil:
			verr.add(FieldLocation, ErrInvalidLocationFormat, rawLocation)
		case parsed.Validate() != nil:
			verr.add(FieldLocation, ErrCoordinateOutOfRange, rawLocation)
		default:
			loc = parsed
		}
	}

	if len(verr.Errors) > 0 {
		return ProblemSubmission{}, verr
	}

	return ProblemSubmission{
		Title:       title,
		Description: description,
		Category:    category,
		Subtype:     subtype,
		Severity:    Classify(title, description),
		Location:    loc,
		Media:       cleanMedia(in.Media),
	}, nil
}

// AsValidationError extracts a *ValidationError from err, if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// cleanMedia copies refs, dropping blanks. It returns nil when nothing
// remains so an empty list and an absent list serialize the same way.
func cleanMedia(refs []string) []string {
	out := slices.DeleteFunc(slices.Clone(refs), func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	if len(out) == 0 {
		return nil
	}
	return out
}
