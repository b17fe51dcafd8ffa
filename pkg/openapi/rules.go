package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// FieldRules holds the rule lists derived from one operation's request body,
// keyed by dotted field path. Nested object properties flatten into paths
// such as "address.street".
type FieldRules struct {
	operation string
	order     []string
	rules     map[string][]validation.Rule
}

// OperationID returns the operation the rules were derived from.
func (r *FieldRules) OperationID() string {
	if r == nil {
		return ""
	}
	return r.operation
}

// Fields returns the derived field paths in deterministic (sorted per object
// level) order.
func (r *FieldRules) Fields() []string {
	if r == nil || len(r.order) == 0 {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Rules returns the rule list derived for the field path.
func (r *FieldRules) Rules(field string) []validation.Rule {
	if r == nil {
		return nil
	}
	rules := r.rules[field]
	if len(rules) == 0 {
		return nil
	}
	return append([]validation.Rule(nil), rules...)
}

// Engine builds a validation engine populated with every derived rule.
func (r *FieldRules) Engine(options ...validation.Option) *validation.Engine {
	engine := validation.New(options...)
	if r == nil {
		return engine
	}
	for _, field := range r.order {
		for _, rule := range r.rules[field] {
			engine.AddRule(field, rule)
		}
	}
	return engine
}

func (r *FieldRules) add(field string, rule validation.Rule) {
	if _, exists := r.rules[field]; !exists {
		r.order = append(r.order, field)
	}
	r.rules[field] = append(r.rules[field], rule)
}

// Rules parses the raw OpenAPI payload and derives field rules from the
// request body of the named operation.
func Rules(ctx context.Context, raw []byte, operationID string) (*FieldRules, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	result := &FieldRules{
		operation: operationID,
		rules:     make(map[string][]validation.Rule),
	}

	schema := requestSchema(operation.RequestBody)
	if schema != nil {
		collectObjectRules(result, "", schema)
	}
	return result, nil
}

// RulesFromSource loads the document through the supplied loader before
// deriving rules. A nil loader uses a default offline loader.
func RulesFromSource(ctx context.Context, loader *Loader, src Source, operationID string) (*FieldRules, error) {
	if loader == nil {
		loader = NewLoader()
	}
	raw, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return Rules(ctx, raw, operationID)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return schemaValue(mt.Schema)
		}
	}
	for _, mt := range content {
		return schemaValue(mt.Schema)
	}
	return nil
}

func schemaValue(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

// collectObjectRules walks an object schema's properties in sorted name order
// so derived rule sets are stable across runs.
func collectObjectRules(dest *FieldRules, prefix string, schema *openapi3.Schema) {
	if schema == nil || len(schema.Properties) == 0 {
		return
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		property := schemaValue(schema.Properties[name])
		if property == nil {
			continue
		}
		path := joinPath(prefix, name)

		if required[name] {
			dest.add(path, validation.Required(""))
		}

		if isObject(property) {
			collectObjectRules(dest, path, property)
			continue
		}
		collectFieldRules(dest, path, property)
	}
}

func collectFieldRules(dest *FieldRules, path string, schema *openapi3.Schema) {
	switch firstType(schema) {
	case "integer":
		dest.add(path, validation.Integer(""))
	case "number":
		dest.add(path, validation.Number(""))
	}

	if kind := formatRuleKind(schema.Format); kind != "" {
		dest.add(path, validation.Rule{Kind: kind})
	}

	if schema.MinLength > 0 {
		dest.add(path, validation.MinLength(int(schema.MinLength), ""))
	}
	if schema.MaxLength != nil {
		dest.add(path, validation.MaxLength(int(*schema.MaxLength), ""))
	}
	if schema.Min != nil {
		dest.add(path, validation.Min(*schema.Min, ""))
	}
	if schema.Max != nil {
		dest.add(path, validation.Max(*schema.Max, ""))
	}
	if schema.Pattern != "" {
		dest.add(path, validation.Pattern(schema.Pattern, ""))
	}
}

// formatRuleKind maps the OpenAPI string formats that have a matching
// built-in rule. Unmapped formats (date-time, uuid, binary) derive no rule.
func formatRuleKind(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return validation.RuleEmail
	case "uri", "url":
		return validation.RuleURL
	case "phone", "tel":
		return validation.RulePhone
	case "date":
		return validation.RuleDate
	case "time":
		return validation.RuleTime
	default:
		return ""
	}
}

func firstType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func isObject(schema *openapi3.Schema) bool {
	return firstType(schema) == "object" && len(schema.Properties) > 0
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
