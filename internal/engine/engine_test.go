package engine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestValidateField_NoRulesIsValid(t *testing.T) {
	e := New()

	got := e.ValidateField("nickname", "anything at all")

	want := FieldResult{Field: "nickname", Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_RequiredEmail(t *testing.T) {
	e := New()
	e.AddRule("email", Required(""))

	got := e.ValidateField("email", "")
	want := FieldResult{
		Field:  "email",
		Valid:  false,
		Errors: []string{"This field is required"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("empty value mismatch (-want +got):\n%s", diff)
	}

	got = e.ValidateField("email", "a@b.com")
	want = FieldResult{Field: "email", Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("non-empty value mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_MinLengthPassword(t *testing.T) {
	e := New()
	e.AddRule("password", MinLength(5, "Password must be at least 5 characters"))

	if got := e.ValidateField("password", "ab"); got.Valid {
		t.Fatalf("expected short password to fail, got %+v", got)
	}
	if got := e.ValidateField("password", "abcdef"); !got.Valid {
		t.Fatalf("expected long password to pass, got %+v", got)
	}
}

func TestValidateField_LengthCountsCodePoints(t *testing.T) {
	e := New()
	e.AddRule("name", MinLength(4, "too short"))
	e.AddRule("name", MaxLength(6, "too long"))

	// Four code points, twelve bytes in UTF-8.
	if got := e.ValidateField("name", "日本語字"); !got.Valid {
		t.Fatalf("expected four-rune value to pass, got %+v", got)
	}
	if got := e.ValidateField("name", "日本語"); got.Valid {
		t.Fatalf("expected three-rune value to fail the minimum")
	}
	if got := e.ValidateField("name", "日本語字日本語"); got.Valid {
		t.Fatalf("expected seven-rune value to fail the maximum")
	}
}

func TestValidateField_CollectsAllFailures(t *testing.T) {
	e := New()
	e.AddRule("username", Required("username required"))
	e.AddRule("username", MinLength(3, "username too short"))
	e.AddRule("username", Pattern(`^[a-z]+$`, "lowercase letters only"))

	got := e.ValidateField("username", "")

	want := FieldResult{
		Field: "username",
		Valid: false,
		Errors: []string{
			"username required",
			"username too short",
			"lowercase letters only",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("aggregation mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_ValidMatchesEmptyErrors(t *testing.T) {
	e := New()
	e.AddRule("age", Integer("must be an integer"))
	e.AddRule("age", Min(18, "must be an adult"))

	for _, value := range []string{"", "17", "18", "42", "not a number"} {
		got := e.ValidateField("age", value)
		if got.Valid != (len(got.Errors) == 0) {
			t.Errorf("value %q: Valid=%v but %d errors", value, got.Valid, len(got.Errors))
		}
	}
}

func TestValidateField_NumericParseFailureUsesRuleMessage(t *testing.T) {
	e := New()
	e.AddRule("amount", Min(10, "amount must be at least 10"))

	got := e.ValidateField("amount", "not-a-number")

	want := FieldResult{
		Field:  "amount",
		Valid:  false,
		Errors: []string{"amount must be at least 10"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parse failure mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_MinMaxBounds(t *testing.T) {
	e := New()
	e.AddRule("rating", Min(1, "too low"))
	e.AddRule("rating", Max(5, "too high"))

	cases := []struct {
		value string
		want  []string
	}{
		{"0.5", []string{"too low"}},
		{"1", nil},
		{"3.5", nil},
		{"5", nil},
		{"5.01", []string{"too high"}},
	}
	for _, tc := range cases {
		got := e.ValidateField("rating", tc.value)
		if diff := cmp.Diff(tc.want, got.Errors); diff != "" {
			t.Errorf("value %q errors mismatch (-want +got):\n%s", tc.value, diff)
		}
	}
}

func TestValidateField_MalformedThresholdFails(t *testing.T) {
	e := New()
	e.AddRule("qty", Rule{
		Kind:    RuleMin,
		Message: "bad config",
		Params:  map[string]string{ParamValue: "ten"},
	})

	got := e.ValidateField("qty", "12")
	if got.Valid {
		t.Fatalf("expected malformed threshold to fail validation")
	}
	if diff := cmp.Diff([]string{"bad config"}, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_MalformedPatternFails(t *testing.T) {
	e := New()
	e.AddRule("code", Pattern(`[unclosed`, "invalid code"))

	got := e.ValidateField("code", "anything")
	if got.Valid {
		t.Fatalf("expected malformed pattern to fail validation")
	}
	if diff := cmp.Diff([]string{"invalid code"}, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_DuplicateRuleEvaluatesTwice(t *testing.T) {
	e := New()
	e.AddRule("bio", MinLength(10, "bio too short"))
	e.AddRule("bio", MinLength(10, "bio too short"))

	got := e.ValidateField("bio", "short")
	if diff := cmp.Diff([]string{"bio too short", "bio too short"}, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomValidator(t *testing.T) {
	e := New()
	e.AddCustomValidator("even-length", func(value string) Result {
		if len(value)%2 != 0 {
			return Fail("length must be even")
		}
		return Ok()
	})
	e.AddRule("token", Custom("even-length", "invalid token"))

	if got := e.ValidateField("token", "abcd"); !got.Valid {
		t.Fatalf("expected even-length value to pass, got %+v", got)
	}

	got := e.ValidateField("token", "abc")
	if diff := cmp.Diff([]string{"length must be even"}, got.Errors); diff != "" {
		t.Fatalf("custom failure mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomValidator_MissingAlwaysFails(t *testing.T) {
	e := New()
	e.AddRule("token", Custom("nonexistent", "token could not be checked"))

	got := e.ValidateField("token", "whatever")
	if got.Valid {
		t.Fatalf("expected missing validator to fail validation")
	}
	if diff := cmp.Diff([]string{"token could not be checked"}, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomValidator_Overwrite(t *testing.T) {
	e := New()
	e.AddCustomValidator("check", func(string) Result { return Fail("first") })
	e.AddCustomValidator("check", func(string) Result { return Fail("second") })
	e.AddRule("field", Custom("check", ""))

	got := e.ValidateField("field", "x")
	if diff := cmp.Diff([]string{"second"}, got.Errors); diff != "" {
		t.Fatalf("expected the later validator to win (-want +got):\n%s", diff)
	}
}

func TestValidateForm(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	e := New(WithClock(func() time.Time { return fixed }))
	e.AddRule("email", Required("Email is required"))
	e.AddRule("email", Email("Invalid email address"))
	e.AddRule("age", Integer("Age must be a whole number"))

	got := e.ValidateForm(map[string]string{
		"email":    "",
		"age":      "12.5",
		"nickname": "free-form",
	})

	want := FormState{
		Valid: false,
		FieldErrors: map[string]FieldError{
			"email": {
				Field:     "email",
				Message:   "Email is required, Invalid email address",
				Type:      ErrorTypeValidation,
				Timestamp: fixed,
			},
			"age": {
				Field:     "age",
				Message:   "Age must be a whole number",
				Type:      ErrorTypeValidation,
				Timestamp: fixed,
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form state mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateForm_AllValid(t *testing.T) {
	e := New()
	e.AddRule("email", Email(""))

	got := e.ValidateForm(map[string]string{"email": "a@b.com"})

	want := FormState{Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form state mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateForm_Idempotent(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	e := New(WithClock(func() time.Time { return fixed }))
	e.AddRule("url", URL("Invalid URL"))
	e.AddRule("when", Date("Invalid date"))

	data := map[string]string{"url": "ftp://example.com", "when": "2023-02-29"}

	first := e.ValidateForm(data)
	second := e.ValidateForm(data)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation diverged (-first +second):\n%s", diff)
	}
}

func TestFieldsAndRulesAccessors(t *testing.T) {
	e := New()
	e.AddRule("b", Required(""))
	e.AddRule("a", Required(""))
	e.AddRule("b", Email(""))

	if diff := cmp.Diff([]string{"b", "a"}, e.Fields()); diff != "" {
		t.Fatalf("registration order mismatch (-want +got):\n%s", diff)
	}
	if got := len(e.Rules("b")); got != 2 {
		t.Fatalf("expected two rules for b, got %d", got)
	}

	// Mutating the copy must not affect the engine's table.
	rules := e.Rules("b")
	rules[0] = Integer("")
	if e.Rules("b")[0].Kind != RuleRequired {
		t.Fatalf("Rules returned a live slice")
	}
}

func TestValidatorAdapter(t *testing.T) {
	e := New()
	e.AddRule("email", Required("Email is required"))
	e.AddRule("email", Email("Invalid email address"))

	validate := e.Validator("email")
	if err := validate("a@b.com"); err != nil {
		t.Fatalf("expected valid value to pass: %v", err)
	}
	err := validate("")
	if err == nil {
		t.Fatalf("expected invalid value to fail")
	}
	want := "Email is required, Invalid email address"
	if err.Error() != want {
		t.Fatalf("validator message mismatch: want %q, got %q", want, err.Error())
	}
}
