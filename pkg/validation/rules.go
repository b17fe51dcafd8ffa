package validation

import (
	"time"

	internalengine "github.com/goliatone/go-formvalidate/internal/engine"
)

// WithClock overrides the timestamp source stamped onto FieldError records.
// Tests use it to pin timestamps.
func WithClock(now func() time.Time) Option {
	return internalengine.WithClock(now)
}

// WithCustomValidator registers a named validator at construction time.
func WithCustomValidator(name string, fn CustomValidator) Option {
	return internalengine.WithCustomValidator(name, fn)
}

// Ok returns a passing per-rule Result, for use inside custom validators.
func Ok() Result {
	return internalengine.Ok()
}

// Fail returns a failing per-rule Result with the supplied message.
func Fail(message string) Result {
	return internalengine.Fail(message)
}

// KnownKind reports whether kind names a built-in rule evaluator.
func KnownKind(kind string) bool {
	return internalengine.KnownKind(kind)
}

// MessageFor resolves the message a failing rule reports: the configured
// message when present, the per-kind default otherwise.
func MessageFor(rule Rule) string {
	return internalengine.MessageFor(rule)
}

// Required fails when the trimmed value is empty.
func Required(message string) Rule { return internalengine.Required(message) }

// MinLength fails when the value has fewer than n code points.
func MinLength(n int, message string) Rule { return internalengine.MinLength(n, message) }

// MaxLength fails when the value has more than n code points.
func MaxLength(n int, message string) Rule { return internalengine.MaxLength(n, message) }

// Min fails when the value parses below the bound, or does not parse at all.
func Min(bound float64, message string) Rule { return internalengine.Min(bound, message) }

// Max fails when the value parses above the bound, or does not parse at all.
func Max(bound float64, message string) Rule { return internalengine.Max(bound, message) }

// Pattern fails when the value does not match the expression; a malformed
// expression is itself a validation failure.
func Pattern(expr, message string) Rule { return internalengine.Pattern(expr, message) }

// Email fails when the value is not a plausible mailbox address.
func Email(message string) Rule { return internalengine.Email(message) }

// URL fails when the value is not an absolute http/https URL.
func URL(message string) Rule { return internalengine.URL(message) }

// Phone fails when the value is not a plausible phone number.
func Phone(message string) Rule { return internalengine.Phone(message) }

// Date fails when the value is not a calendar-valid YYYY-MM-DD date.
func Date(message string) Rule { return internalengine.Date(message) }

// Time fails when the value is not a valid HH:MM[:SS] clock time.
func Time(message string) Rule { return internalengine.Time(message) }

// Number fails when the value does not parse as a 64-bit float.
func Number(message string) Rule { return internalengine.Number(message) }

// Integer fails when the value does not parse as a 64-bit signed integer.
func Integer(message string) Rule { return internalengine.Integer(message) }

// Custom delegates to the named validator registered on the engine.
func Custom(name, message string) Rule { return internalengine.Custom(name, message) }
