// Package validation checks entry payloads against the journal's field
// rules. Validation is pure: it never touches storage and collects every
// violation instead of stopping at the first.
package validation

import (
	"strings"

	"github.com/Skyism/gratefulnessjar/internal/common"
	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// MaxTextLength is the upper bound on trimmed gratitude text.
const MaxTextLength = 1000

// Payload is the field set under validation. Nil fields are absent; on a
// partial update an absent field is simply not checked.
type Payload struct {
	GratitudeText *string
	Rating        *models.Rating
	EntryDate     *string
}

// Result reports the outcome of a validation pass.
type Result struct {
	Valid  bool
	Errors []common.FieldError
}

// Err converts the result into a *common.ValidationError, or nil when valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &common.ValidationError{Fields: r.Errors}
}

// Validate checks the payload. With isUpdate=false every required field
// must be present and well-formed; with isUpdate=true only the fields
// present in the payload are checked.
func Validate(p Payload, isUpdate bool) Result {
	var errs []common.FieldError

	if p.GratitudeText == nil {
		if !isUpdate {
			errs = append(errs, common.FieldError{Field: "gratitude_text", Message: "is required"})
		}
	} else {
		trimmed := strings.TrimSpace(*p.GratitudeText)
		if len(trimmed) == 0 {
			errs = append(errs, common.FieldError{Field: "gratitude_text", Message: "must not be empty"})
		} else if len([]rune(trimmed)) > MaxTextLength {
			errs = append(errs, common.FieldError{Field: "gratitude_text", Message: "must be at most 1000 characters"})
		}
	}

	if p.Rating == nil {
		if !isUpdate {
			errs = append(errs, common.FieldError{Field: "rating", Message: "is required"})
		}
	} else if !p.Rating.IsValid() {
		errs = append(errs, common.FieldError{Field: "rating", Message: "must be between 1 and 7"})
	}

	if p.EntryDate != nil && *p.EntryDate != "" {
		if _, err := datex.Parse(*p.EntryDate); err != nil {
			errs = append(errs, common.FieldError{Field: "entry_date", Message: "must be a valid YYYY-MM-DD date"})
		} else if datex.IsFuture(*p.EntryDate) {
			errs = append(errs, common.FieldError{Field: "entry_date", Message: "must not be in the future"})
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ForCreate builds the validation payload for a create input.
func ForCreate(in models.CreateEntryInput) Payload {
	p := Payload{
		GratitudeText: &in.GratitudeText,
		Rating:        &in.Rating,
	}
	if in.EntryDate != "" {
		p.EntryDate = &in.EntryDate
	}
	return p
}

// ForUpdate builds the validation payload for a partial update input.
func ForUpdate(in models.UpdateEntryInput) Payload {
	return Payload{
		GratitudeText: in.GratitudeText,
		Rating:        in.Rating,
	}
}
