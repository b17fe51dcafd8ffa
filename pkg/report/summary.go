// Package report turns validation form states into presentable summaries:
// plain text for CLIs, JSON for APIs, and themed HTML fragments for server
// rendered pages. It also folds server-side error payloads back into a form
// state so remote failures render alongside local validation errors.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// FieldStatus is one failing field in a summary.
type FieldStatus struct {
	Name    string               `json:"name"`
	Message string               `json:"message"`
	Type    validation.ErrorType `json:"type"`
}

// Summary is a render-friendly projection of a FormState. Field entries are
// sorted by name so output is deterministic.
type Summary struct {
	Valid      bool          `json:"valid"`
	ErrorCount int           `json:"errorCount"`
	Fields     []FieldStatus `json:"fields,omitempty"`
	Form       []string      `json:"form,omitempty"`
}

// NewSummary projects a form state into a summary. Messages pass through the
// strict sanitizer so payloads of server origin cannot smuggle markup into
// rendered output.
func NewSummary(state validation.FormState) Summary {
	summary := Summary{Valid: state.Valid}

	names := make([]string, 0, len(state.FieldErrors))
	for name := range state.FieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fieldErr := state.FieldErrors[name]
		summary.Fields = append(summary.Fields, FieldStatus{
			Name:    name,
			Message: SanitizeMessage(fieldErr.Message),
			Type:    fieldErr.Type,
		})
	}

	for _, formErr := range state.FormErrors {
		if message := SanitizeMessage(formErr.Message); message != "" {
			summary.Form = append(summary.Form, message)
		}
	}

	summary.ErrorCount = len(summary.Fields) + len(summary.Form)
	return summary
}

// Text renders the summary as indented plain text for terminal output.
func (s Summary) Text() string {
	var b strings.Builder

	if s.Valid {
		b.WriteString("form: valid\n")
		return b.String()
	}

	fmt.Fprintf(&b, "form: invalid (%d %s)\n", s.ErrorCount, pluralError(s.ErrorCount))
	for _, field := range s.Fields {
		fmt.Fprintf(&b, "  - %s: %s\n", field.Name, field.Message)
	}
	for _, message := range s.Form {
		fmt.Fprintf(&b, "  - %s\n", message)
	}
	return b.String()
}

// JSON renders the summary as indented JSON.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func pluralError(count int) string {
	if count == 1 {
		return "error"
	}
	return "errors"
}
