package movie

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	MaxTitleLen       = 99
	MaxDescriptionLen = 255
	MinDuration       = 1
	MaxDuration       = 600

	// FieldDelimiter separates fields in the on-disk format.
	FieldDelimiter = "|"
)

// ErrValidation marks user input that failed a field validator.
var ErrValidation = errors.New("validation error")

// ValidationError reports which field was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validator checks one text field. The shell passes validators into its
// prompts so each field is re-asked until it passes.
type Validator func(value string) error

// NormalizeText trims surrounding whitespace and applies NFC so that titles
// typed on different platforms compare byte-equal.
func NormalizeText(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// ValidateTitle enforces the 1–99 byte title limit.
func ValidateTitle(title string) error {
	if len(title) == 0 || len(title) > MaxTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("Title must be between 1 and %d characters.", MaxTitleLen)}
	}
	return validateDelimiterFree("title", "Title", title)
}

// ValidateDescription enforces the 1–255 byte description limit.
func ValidateDescription(description string) error {
	if len(description) == 0 || len(description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("Description must be between 1 and %d characters.", MaxDescriptionLen)}
	}
	return validateDelimiterFree("description", "Description", description)
}

// ValidateDuration enforces the 1–600 minute range.
func ValidateDuration(minutes int) error {
	if minutes < MinDuration || minutes > MaxDuration {
		return &ValidationError{Field: "duration", Message: fmt.Sprintf("Duration must be between %d and %d minutes.", MinDuration, MaxDuration)}
	}
	return nil
}

// ParseDuration accepts a plain decimal number of minutes and validates it.
func ParseDuration(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return 0, &ValidationError{Field: "duration", Message: "Please enter a valid number."}
	}
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: "duration", Message: "Please enter a valid number."}
	}
	if err := ValidateDuration(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// DurationValidator adapts ParseDuration to the Validator shape.
func DurationValidator(value string) error {
	_, err := ParseDuration(value)
	return err
}

// Normalize returns r with its text fields normalized.
func Normalize(r Record) Record {
	r.Title = NormalizeText(r.Title)
	r.Description = NormalizeText(r.Description)
	return r
}

// Validate runs every field validator and returns the first failure.
func Validate(r Record) error {
	if err := ValidateTitle(r.Title); err != nil {
		return err
	}
	if err := ValidateDescription(r.Description); err != nil {
		return err
	}
	return ValidateDuration(r.Duration)
}

// The file format has no escaping, so a delimiter or line break inside a
// field would split the record on reload.
func validateDelimiterFree(field, label, value string) error {
	if strings.ContainsAny(value, FieldDelimiter+"\r\n") {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must not contain '%s' or line breaks.", label, FieldDelimiter)}
	}
	return nil
}
