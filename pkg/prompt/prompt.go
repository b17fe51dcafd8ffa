// Package prompt collects form input interactively, enforcing the engine's
// field rules as terminal prompt validators. The default driver uses
// survey/v2; tests and embedders can supply their own Driver.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// Field describes one prompt in a form session.
type Field struct {
	// Name is the field key used to look up rules and store the answer.
	Name string
	// Message overrides the prompt label; defaults to the field name.
	Message string
	Help    string
	Default string
	// Secret switches the prompt to password entry.
	Secret bool
}

// Form prompts for a sequence of fields in order.
type Form struct {
	engine *validation.Engine
	driver Driver
	fields []Field
}

// Option configures a Form.
type Option func(*Form)

// WithDriver overrides the default survey driver.
func WithDriver(driver Driver) Option {
	return func(f *Form) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// NewForm builds a prompt session over the supplied engine and fields. The
// engine may be nil, in which case answers are accepted unvalidated.
func NewForm(engine *validation.Engine, fields []Field, options ...Option) (*Form, error) {
	if len(fields) == 0 {
		return nil, errors.New("prompt: at least one field is required")
	}
	for idx, field := range fields {
		if strings.TrimSpace(field.Name) == "" {
			return nil, fmt.Errorf("prompt: field %d has no name", idx)
		}
	}

	form := &Form{
		engine: engine,
		driver: NewSurveyDriver(),
		fields: append([]Field(nil), fields...),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(form)
	}
	return form, nil
}

// Run prompts for every field and returns the collected answers keyed by
// field name. Each prompt re-asks until its value passes the field's rules,
// so the returned data always validates clean against the engine.
func (f *Form) Run(ctx context.Context) (map[string]string, error) {
	answers := make(map[string]string, len(f.fields))

	for _, field := range f.fields {
		cfg := InputConfig{
			Message: field.Message,
			Help:    field.Help,
			Default: field.Default,
		}
		if cfg.Message == "" {
			cfg.Message = field.Name
		}
		if f.engine != nil {
			cfg.Validator = f.engine.Validator(field.Name)
		}

		var (
			value string
			err   error
		)
		if field.Secret {
			value, err = f.driver.Password(ctx, cfg)
		} else {
			value, err = f.driver.Input(ctx, cfg)
		}
		if err != nil {
			return nil, err
		}
		answers[field.Name] = value
	}

	return answers, nil
}
