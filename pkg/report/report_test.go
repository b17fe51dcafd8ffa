package report_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formvalidate/pkg/report"
	"github.com/goliatone/go-formvalidate/pkg/validation"
)

func invalidState() validation.FormState {
	stamp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return validation.FormState{
		Valid: false,
		FieldErrors: map[string]validation.FieldError{
			"email": {
				Field:     "email",
				Message:   "Email is required",
				Type:      validation.ErrorTypeValidation,
				Timestamp: stamp,
			},
			"age": {
				Field:     "age",
				Message:   "Age must be a whole number",
				Type:      validation.ErrorTypeValidation,
				Timestamp: stamp,
			},
		},
		FormErrors: []validation.FormError{
			{Message: "Submission rejected", Type: validation.ErrorTypeServer},
		},
	}
}

func TestNewSummarySortsFields(t *testing.T) {
	summary := report.NewSummary(invalidState())

	want := report.Summary{
		Valid:      false,
		ErrorCount: 3,
		Fields: []report.FieldStatus{
			{Name: "age", Message: "Age must be a whole number", Type: validation.ErrorTypeValidation},
			{Name: "email", Message: "Email is required", Type: validation.ErrorTypeValidation},
		},
		Form: []string{"Submission rejected"},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryStripsMarkup(t *testing.T) {
	state := validation.FormState{
		Valid: false,
		FieldErrors: map[string]validation.FieldError{
			"bio": {
				Field:   "bio",
				Message: `<script>alert("x")</script>Bio is invalid`,
				Type:    validation.ErrorTypeServer,
			},
		},
	}

	summary := report.NewSummary(state)
	if got := summary.Fields[0].Message; got != "Bio is invalid" {
		t.Fatalf("expected markup stripped, got %q", got)
	}
}

func TestSummaryText(t *testing.T) {
	text := report.NewSummary(invalidState()).Text()

	want := "form: invalid (3 errors)\n" +
		"  - age: Age must be a whole number\n" +
		"  - email: Email is required\n" +
		"  - Submission rejected\n"
	if text != want {
		t.Fatalf("text mismatch:\nwant %q\ngot  %q", want, text)
	}

	valid := report.NewSummary(validation.FormState{Valid: true}).Text()
	if valid != "form: valid\n" {
		t.Fatalf("unexpected valid text: %q", valid)
	}
}

func TestSummaryJSON(t *testing.T) {
	payload, err := report.NewSummary(invalidState()).JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["valid"] != false {
		t.Fatalf("expected valid=false, got %v", decoded["valid"])
	}
	if decoded["errorCount"] != float64(3) {
		t.Fatalf("expected errorCount=3, got %v", decoded["errorCount"])
	}
}

func TestMergeServerErrors(t *testing.T) {
	engine := validation.New()
	engine.AddRule("email", validation.Required("Email is required"))
	engine.AddRule("username", validation.MinLength(3, "Username too short"))

	state := engine.ValidateForm(map[string]string{
		"email":    "",
		"username": "valid_name",
	})

	merged := report.MergeServerErrors(state, engine.Fields(), map[string][]string{
		"username":         {"Username already taken", "Username already taken"},
		"email":            {"Domain is blocked"},
		"unrelated":        {"Goes to the form level"},
		"non_field_errors": {"Submission throttled"},
	})

	if merged.Valid {
		t.Fatalf("expected merged state invalid")
	}

	username, ok := merged.FieldErrors["username"]
	if !ok {
		t.Fatalf("expected username server error")
	}
	if username.Type != validation.ErrorTypeServer {
		t.Fatalf("expected server type, got %s", username.Type)
	}
	if username.Message != "Username already taken" {
		t.Fatalf("expected deduplicated message, got %q", username.Message)
	}

	email := merged.FieldErrors["email"]
	if email.Message != "Email is required, Domain is blocked" {
		t.Fatalf("expected appended message, got %q", email.Message)
	}
	if email.Type != validation.ErrorTypeValidation {
		t.Fatalf("local error type should be preserved, got %s", email.Type)
	}

	if got := len(merged.FormErrors); got != 2 {
		t.Fatalf("expected two form-level errors, got %d: %+v", got, merged.FormErrors)
	}

	// Original state must stay untouched.
	if _, ok := state.FieldErrors["username"]; ok {
		t.Fatalf("input state was mutated")
	}
}

func TestMergeServerErrorsEmptyPayload(t *testing.T) {
	state := validation.FormState{Valid: true}
	merged := report.MergeServerErrors(state, nil, nil)
	if diff := cmp.Diff(state, merged); diff != "" {
		t.Fatalf("state changed with empty payload (-want +got):\n%s", diff)
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}

func TestHTMLRender(t *testing.T) {
	renderer, err := report.NewHTML()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.RenderState(invalidState())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, fragment := range []string{
		"fv-report--invalid",
		"3 validation errors",
		`data-field="age"`,
		`data-field="email"`,
		"Submission rejected",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, html)
		}
	}
}

func TestHTMLRenderValidState(t *testing.T) {
	renderer, err := report.NewHTML()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.RenderState(validation.FormState{Valid: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "All fields passed validation.") {
		t.Fatalf("expected valid message, got:\n%s", out)
	}
}

func TestHTMLRenderWithTheme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"error-color": "#b00020",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"report.stylesheet": "report.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"error-color": "#ff6659",
				},
			},
		},
	}
	selector := &stubSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	renderer, err := report.NewHTML(report.WithThemeSelector(selector, "acme", "dark"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.RenderState(invalidState())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "--error-color: #ff6659;") {
		t.Fatalf("variant token not rendered as css var:\n%s", html)
	}
	if !strings.Contains(html, `href="/assets/themes/acme/report.css"`) {
		t.Fatalf("stylesheet url not resolved:\n%s", html)
	}
	if !strings.Contains(html, `data-theme="acme"`) {
		t.Fatalf("theme name missing:\n%s", html)
	}
}
