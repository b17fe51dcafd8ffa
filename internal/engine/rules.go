package engine

import "strconv"

// Rule kinds understood by the evaluator. Parameterised kinds encode their
// threshold in Params[ParamValue], pattern rules in Params[ParamPattern], and
// custom rules the validator name in Params[ParamName]. String values keep
// JSON snapshots of rule tables stable.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
	RulePattern   = "pattern"
	RuleEmail     = "email"
	RuleURL       = "url"
	RulePhone     = "phone"
	RuleDate      = "date"
	RuleTime      = "time"
	RuleNumber    = "number"
	RuleInteger   = "integer"
	RuleCustom    = "custom"
)

// Canonical parameter keys.
const (
	ParamValue   = "value"
	ParamPattern = "pattern"
	ParamName    = "name"
)

// Rule represents a single validation constraint attached to a field. Rules
// are immutable once constructed; the engine appends them to a field's rule
// list and evaluates them in registration order.
type Rule struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

// Required fails when the trimmed value is empty.
func Required(message string) Rule {
	return Rule{Kind: RuleRequired, Message: message}
}

// MinLength fails when the value has fewer than n code points.
func MinLength(n int, message string) Rule {
	return Rule{Kind: RuleMinLength, Message: message, Params: map[string]string{ParamValue: strconv.Itoa(n)}}
}

// MaxLength fails when the value has more than n code points.
func MaxLength(n int, message string) Rule {
	return Rule{Kind: RuleMaxLength, Message: message, Params: map[string]string{ParamValue: strconv.Itoa(n)}}
}

// Min fails when the value parses below the bound, or does not parse at all.
func Min(bound float64, message string) Rule {
	return Rule{Kind: RuleMin, Message: message, Params: map[string]string{ParamValue: formatFloat(bound)}}
}

// Max fails when the value parses above the bound, or does not parse at all.
func Max(bound float64, message string) Rule {
	return Rule{Kind: RuleMax, Message: message, Params: map[string]string{ParamValue: formatFloat(bound)}}
}

// Pattern fails when the value does not match the expression. The expression
// compiles at evaluation time; a malformed expression is itself a validation
// failure, never a panic.
func Pattern(expr, message string) Rule {
	return Rule{Kind: RulePattern, Message: message, Params: map[string]string{ParamPattern: expr}}
}

// Email fails when the value is not a plausible mailbox address.
func Email(message string) Rule {
	return Rule{Kind: RuleEmail, Message: message}
}

// URL fails when the value is not an absolute http/https URL.
func URL(message string) Rule {
	return Rule{Kind: RuleURL, Message: message}
}

// Phone fails when the value is not a plausible phone number.
func Phone(message string) Rule {
	return Rule{Kind: RulePhone, Message: message}
}

// Date fails when the value is not a calendar-valid YYYY-MM-DD date.
func Date(message string) Rule {
	return Rule{Kind: RuleDate, Message: message}
}

// Time fails when the value is not a valid HH:MM[:SS] clock time.
func Time(message string) Rule {
	return Rule{Kind: RuleTime, Message: message}
}

// Number fails when the value does not parse as a 64-bit float.
func Number(message string) Rule {
	return Rule{Kind: RuleNumber, Message: message}
}

// Integer fails when the value does not parse as a 64-bit signed integer.
func Integer(message string) Rule {
	return Rule{Kind: RuleInteger, Message: message}
}

// Custom delegates to the named validator registered on the engine. A missing
// validator is a validation failure using the rule's message.
func Custom(name, message string) Rule {
	return Rule{Kind: RuleCustom, Message: message, Params: map[string]string{ParamName: name}}
}

// KnownKind reports whether kind names a built-in rule evaluator.
func KnownKind(kind string) bool {
	_, ok := defaultMessages[kind]
	return ok
}

// defaultMessages provides the fallback text used when a rule carries no
// configured message.
var defaultMessages = map[string]string{
	RuleRequired:  "This field is required",
	RuleMinLength: "Value is too short",
	RuleMaxLength: "Value is too long",
	RuleMin:       "Value is too small",
	RuleMax:       "Value is too large",
	RulePattern:   "Value does not match the expected pattern",
	RuleEmail:     "Invalid email address",
	RuleURL:       "Invalid URL",
	RulePhone:     "Invalid phone number",
	RuleDate:      "Invalid date",
	RuleTime:      "Invalid time",
	RuleNumber:    "Invalid number",
	RuleInteger:   "Invalid integer",
	RuleCustom:    "Invalid value",
}

// MessageFor resolves the message a failing rule reports: the configured
// message when present, the per-kind default otherwise.
func MessageFor(rule Rule) string {
	if rule.Message != "" {
		return rule.Message
	}
	if msg, ok := defaultMessages[rule.Kind]; ok {
		return msg
	}
	return defaultMessages[RuleCustom]
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
