// Package ruleset loads declarative validation rule sets from YAML or JSON
// documents and builds populated engines from them. A document declares rules
// per field:
//
//	fields:
//	  email:
//	    - rule: required
//	      message: Email is required
//	    - rule: email
//	  password:
//	    - rule: minLength
//	      value: 8
//	      message: Password must be at least 8 characters
//
// Unknown rule kinds and missing parameters are load-time errors so broken
// configuration surfaces before any form is validated.
package ruleset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// ruleFile mirrors one rule entry in a document. Value is any because YAML
// authors write numeric thresholds as scalars, not strings.
type ruleFile struct {
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
}

type documentFile struct {
	Fields map[string][]ruleFile `json:"fields" yaml:"fields"`
}

// Store holds the parsed rule sets keyed by field name.
type Store struct {
	fields map[string][]validation.Rule
}

// Fields returns the declared field names in sorted order.
func (s *Store) Fields() []string {
	if s == nil || len(s.fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns the rule list declared for the field.
func (s *Store) Rules(field string) []validation.Rule {
	if s == nil {
		return nil
	}
	rules := s.fields[field]
	if len(rules) == 0 {
		return nil
	}
	return append([]validation.Rule(nil), rules...)
}

// Engine builds a validation engine populated with every declared rule.
// Fields register in sorted order so engines built from the same store are
// identical.
func (s *Store) Engine(options ...validation.Option) *validation.Engine {
	engine := validation.New(options...)
	if s == nil {
		return engine
	}
	for _, field := range s.Fields() {
		for _, rule := range s.fields[field] {
			engine.AddRule(field, rule)
		}
	}
	return engine
}

func (s *Store) merge(doc documentFile, source string) error {
	for name, entries := range doc.Fields {
		field := strings.TrimSpace(name)
		if field == "" {
			return fmt.Errorf("ruleset: file %s declares an empty field name", source)
		}
		if _, exists := s.fields[field]; exists {
			return fmt.Errorf("ruleset: duplicate field %q (file %s)", field, source)
		}

		rules := make([]validation.Rule, 0, len(entries))
		for idx, entry := range entries {
			rule, err := normaliseRule(entry, field, idx, source)
			if err != nil {
				return err
			}
			rules = append(rules, rule)
		}
		s.fields[field] = rules
	}
	return nil
}

func normaliseRule(entry ruleFile, field string, idx int, source string) (validation.Rule, error) {
	kind := strings.TrimSpace(entry.Rule)
	if kind == "" {
		return validation.Rule{}, fmt.Errorf("ruleset: field %q rule %d has no rule kind (file %s)", field, idx, source)
	}
	if !validation.KnownKind(kind) {
		return validation.Rule{}, fmt.Errorf("ruleset: field %q uses unknown rule kind %q (file %s)", field, kind, source)
	}

	rule := validation.Rule{Kind: kind, Message: strings.TrimSpace(entry.Message)}

	switch kind {
	case validation.RuleMinLength, validation.RuleMaxLength, validation.RuleMin, validation.RuleMax:
		value, ok := scalarString(entry.Value)
		if !ok {
			return validation.Rule{}, fmt.Errorf("ruleset: field %q rule %q requires a value (file %s)", field, kind, source)
		}
		rule.Params = map[string]string{validation.ParamValue: value}
	case validation.RulePattern:
		if strings.TrimSpace(entry.Pattern) == "" {
			return validation.Rule{}, fmt.Errorf("ruleset: field %q pattern rule requires a pattern (file %s)", field, source)
		}
		rule.Params = map[string]string{validation.ParamPattern: entry.Pattern}
	case validation.RuleCustom:
		if strings.TrimSpace(entry.Name) == "" {
			return validation.Rule{}, fmt.Errorf("ruleset: field %q custom rule requires a name (file %s)", field, source)
		}
		rule.Params = map[string]string{validation.ParamName: strings.TrimSpace(entry.Name)}
	}

	return rule, nil
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed, trimmed != ""
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
