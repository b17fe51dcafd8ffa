package engine

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formvalidate/pkg/format"
)

// evaluate runs one rule against a value. Configuration problems (malformed
// pattern, unparseable threshold, unknown custom validator) are validation
// failures using the rule's message, never program errors: the worst outcome
// of any evaluation is a failing Result that is safe to display.
func (e *Engine) evaluate(rule Rule, value string) Result {
	message := MessageFor(rule)

	switch rule.Kind {
	case RuleRequired:
		if strings.TrimSpace(value) == "" {
			return Fail(message)
		}

	case RuleMinLength:
		bound, err := strconv.Atoi(rule.Params[ParamValue])
		if err != nil {
			return Fail(message)
		}
		if utf8.RuneCountInString(value) < bound {
			return Fail(message)
		}

	case RuleMaxLength:
		bound, err := strconv.Atoi(rule.Params[ParamValue])
		if err != nil {
			return Fail(message)
		}
		if utf8.RuneCountInString(value) > bound {
			return Fail(message)
		}

	case RuleMin:
		bound, err := strconv.ParseFloat(rule.Params[ParamValue], 64)
		if err != nil {
			return Fail(message)
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Fail(message)
		}
		if parsed < bound {
			return Fail(message)
		}

	case RuleMax:
		bound, err := strconv.ParseFloat(rule.Params[ParamValue], 64)
		if err != nil {
			return Fail(message)
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Fail(message)
		}
		if parsed > bound {
			return Fail(message)
		}

	case RulePattern:
		// Compiled per evaluation; rule tables are small and built once per
		// form session.
		re, err := regexp.Compile(rule.Params[ParamPattern])
		if err != nil {
			return Fail(message)
		}
		if !re.MatchString(value) {
			return Fail(message)
		}

	case RuleEmail:
		if !format.IsEmail(value) {
			return Fail(message)
		}

	case RuleURL:
		if !format.IsURL(value) {
			return Fail(message)
		}

	case RulePhone:
		if !format.IsPhone(value) {
			return Fail(message)
		}

	case RuleDate:
		if !format.IsDate(value) {
			return Fail(message)
		}

	case RuleTime:
		if !format.IsTime(value) {
			return Fail(message)
		}

	case RuleNumber:
		if !format.IsNumber(value) {
			return Fail(message)
		}

	case RuleInteger:
		if !format.IsInteger(value) {
			return Fail(message)
		}

	case RuleCustom:
		fn, ok := e.custom[rule.Params[ParamName]]
		if !ok {
			return Fail(message)
		}
		return fn(value)

	default:
		return Fail(message)
	}

	return Ok()
}
