package engine

import "time"

// Result is the outcome of evaluating a single rule against a value. It is
// produced per evaluation and consumed immediately by the aggregation in
// ValidateField.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Ok returns a passing Result.
func Ok() Result {
	return Result{Valid: true}
}

// Fail returns a failing Result carrying the supplied message.
func Fail(message string) Result {
	return Result{Valid: false, Message: message}
}

// FieldResult aggregates every rule failure for one field, in rule
// registration order. Valid is true iff Errors is empty.
type FieldResult struct {
	Field    string   `json:"field"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ErrorType classifies where an error originated so UI layers can style or
// route it appropriately.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeServer     ErrorType = "server"
	ErrorTypeCustom     ErrorType = "custom"
)

// FieldError is the denormalised per-field error record stored on a
// FormState. Message joins every failing rule's message with ", ".
type FieldError struct {
	Field     string    `json:"field"`
	Message   string    `json:"message"`
	Type      ErrorType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// FormError carries a form-level message not attributable to a single field,
// such as a server rejection of the whole submission.
type FormError struct {
	Message string    `json:"message"`
	Type    ErrorType `json:"type"`
}

// FormState is the whole-form snapshot rebuilt by every ValidateForm call.
// There is no incremental diffing: callers replace their previous state
// wholesale. Submitting, Dirty, and Touched belong to the UI controller and
// are zeroed by ValidateForm.
type FormState struct {
	Valid       bool                  `json:"valid"`
	Submitting  bool                  `json:"submitting"`
	Dirty       bool                  `json:"dirty"`
	Touched     bool                  `json:"touched"`
	FieldErrors map[string]FieldError `json:"fieldErrors,omitempty"`
	FormErrors  []FormError           `json:"formErrors,omitempty"`
}
