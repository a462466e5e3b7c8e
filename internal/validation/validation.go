package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	// Canonical pattern from https://semver.org, anchored. Rejects leading
	// zeros in numeric identifiers, so "1.02.0" is not a version.
	semVerRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
)

// Messages reported for individual field violations.
const (
	MsgInvalidHexColor         = "Invalid hex color"
	MsgInvalidSemVer           = "Invalid version (semver)"
	MsgInvalidEthereumAddress  = "Invalid Ethereum address"
	MsgGasPriceSourceExclusive = "An oracle uri or fixed gas price should be provided (but not both)"
	MsgOracleParameterRequired = "The oracle parameter should be set"
	MsgValueExceedsUint256     = "Ensure this value fits in an unsigned 256-bit integer"
)

// IsHexColor reports whether s is a six digit hex color with a leading '#'.
// Shorthand forms like "#fff" are not accepted.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// IsSemVer reports whether s is a full semantic version ("1.2.3", optionally
// with pre-release and build metadata). Partial versions are rejected.
func IsSemVer(s string) bool {
	return semVerRegex.MatchString(s)
}

// IsEthereumAddress reports whether s is a 20-byte hex address, with or
// without the 0x prefix and in any casing.
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}

// FieldError is a single violation attached to a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every field violation found while checking a
// record, so a write with several bad fields reports all of them at once
// instead of failing on the first.
type ValidationError struct {
	fieldErrors []FieldError
}

// Add appends a violation for the named field. Fields keep insertion order.
func (e *ValidationError) Add(field, message string) {
	e.fieldErrors = append(e.fieldErrors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any violation has been recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.fieldErrors) > 0
}

// FieldErrors returns a copy of the recorded violations.
func (e *ValidationError) FieldErrors() []FieldError {
	if e == nil {
		return nil
	}
	out := make([]FieldError, len(e.fieldErrors))
	copy(out, e.fieldErrors)
	return out
}

// FieldMessages returns the messages recorded against one field.
func (e *ValidationError) FieldMessages(field string) []string {
	if e == nil {
		return nil
	}
	var messages []string
	for _, fe := range e.fieldErrors {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.fieldErrors))
	for i, fe := range e.fieldErrors {
		parts[i] = fe.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns the collected error, or nil when nothing was recorded. Callers
// build up a ValidationError and return Err() so the happy path stays a
// plain nil error.
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// RegisterTagValidators installs the directory's custom checks on a
// validator instance so input structs can declare them as struct tags.
func RegisterTagValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return IsHexColor(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("semverfull", func(fl validator.FieldLevel) bool {
		return IsSemVer(fl.Field().String())
	})
}
