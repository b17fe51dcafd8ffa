// Package engine implements the rule evaluator behind pkg/validation. The
// public aliases live in pkg/validation; this package owns the semantics.
package engine

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// CustomValidator is a named predicate registered on the engine. It receives
// the raw field value and reports validity as data; it must not panic.
type CustomValidator func(value string) Result

// Engine owns two tables: field name -> rule list (insertion order preserved,
// evaluated in that order) and validator name -> custom validator. It carries
// no other state and is expected to be populated once at form-setup time and
// read thereafter.
type Engine struct {
	rules  map[string][]Rule
	fields []string
	custom map[string]CustomValidator
	now    func() time.Time
}

// Option configures an Engine before first use.
type Option func(*Engine)

// WithClock overrides the timestamp source stamped onto FieldError records.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithCustomValidator registers a named validator at construction time,
// equivalent to calling AddCustomValidator afterwards.
func WithCustomValidator(name string, fn CustomValidator) Option {
	return func(e *Engine) {
		e.AddCustomValidator(name, fn)
	}
}

// New constructs an empty Engine.
func New(options ...Option) *Engine {
	e := &Engine{
		rules:  make(map[string][]Rule),
		custom: make(map[string]CustomValidator),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// AddRule appends a rule to the field's rule list, creating the list when
// absent. There is no deduplication: registering the same rule twice
// evaluates it twice.
func (e *Engine) AddRule(field string, rule Rule) {
	if field == "" {
		return
	}
	if _, exists := e.rules[field]; !exists {
		e.fields = append(e.fields, field)
	}
	e.rules[field] = append(e.rules[field], rule)
}

// AddCustomValidator registers a named predicate, silently overwriting any
// previous validator under the same name.
func (e *Engine) AddCustomValidator(name string, fn CustomValidator) {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return
	}
	e.custom[name] = fn
}

// Rules returns a copy of the field's rule list in registration order.
func (e *Engine) Rules(field string) []Rule {
	rules := e.rules[field]
	if len(rules) == 0 {
		return nil
	}
	return append([]Rule(nil), rules...)
}

// Fields returns the fields with registered rules, in registration order.
func (e *Engine) Fields() []string {
	if len(e.fields) == 0 {
		return nil
	}
	return append([]string(nil), e.fields...)
}

// ValidateField evaluates every rule registered for the field against the
// value, in registration order, collecting every failure's message. There is
// no short-circuit: all rules run even after a failure. A field with no rules
// yields a trivially valid result.
func (e *Engine) ValidateField(field, value string) FieldResult {
	result := FieldResult{Field: field, Valid: true}

	for _, rule := range e.rules[field] {
		outcome := e.evaluate(rule, value)
		if outcome.Valid {
			continue
		}
		result.Valid = false
		message := outcome.Message
		if message == "" {
			message = MessageFor(rule)
		}
		result.Errors = append(result.Errors, message)
	}

	return result
}

// ValidateForm validates every entry of the form data and rebuilds a
// FormState wholesale. Fields are processed in sorted name order so repeated
// calls with unchanged input produce identical states. Each failing field
// contributes one FieldError whose message joins the field's error strings
// with ", ".
func (e *Engine) ValidateForm(data map[string]string) FormState {
	state := FormState{Valid: true}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fieldResult := e.ValidateField(name, data[name])
		if fieldResult.Valid {
			continue
		}
		if state.FieldErrors == nil {
			state.FieldErrors = make(map[string]FieldError)
		}
		state.Valid = false
		state.FieldErrors[name] = FieldError{
			Field:     name,
			Message:   strings.Join(fieldResult.Errors, ", "),
			Type:      ErrorTypeValidation,
			Timestamp: e.now(),
		}
	}

	return state
}

// Validator adapts the field's rule list into a func(string) error, the shape
// prompt libraries and survey.WithValidator expect. The returned error joins
// the failing messages with ", ".
func (e *Engine) Validator(field string) func(string) error {
	return func(value string) error {
		result := e.ValidateField(field, value)
		if result.Valid {
			return nil
		}
		return errors.New(strings.Join(result.Errors, ", "))
	}
}
