// Package formvalidate is the top-level entry point for the rule-based form
// validation engine. It re-exports the public types from pkg/validation and
// provides one-call constructors for engines built from declarative rule sets
// or OpenAPI documents.
package formvalidate

import (
	"context"

	"github.com/goliatone/go-formvalidate/pkg/openapi"
	"github.com/goliatone/go-formvalidate/pkg/ruleset"
	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// Core types re-exported for convenience; see pkg/validation for the full
// surface including rule constructors.
type Engine = validation.Engine
type Option = validation.Option
type Rule = validation.Rule
type Result = validation.Result
type FieldResult = validation.FieldResult
type FormState = validation.FormState
type FieldError = validation.FieldError
type FormError = validation.FormError
type CustomValidator = validation.CustomValidator

// New constructs an empty engine ready for rule registration.
func New(options ...Option) *Engine {
	return validation.New(options...)
}

// EngineFromRuleSet parses a YAML/JSON rule-set document and returns a
// populated engine. The source string only labels parse errors.
func EngineFromRuleSet(data []byte, source string, options ...Option) (*Engine, error) {
	store, err := ruleset.Load(data, source)
	if err != nil {
		return nil, err
	}
	return store.Engine(options...), nil
}

// EngineFromRuleSetFile reads a rule-set document from disk and returns a
// populated engine.
func EngineFromRuleSetFile(path string, options ...Option) (*Engine, error) {
	store, err := ruleset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return store.Engine(options...), nil
}

// EngineFromOpenAPI loads an OpenAPI document, derives rules from the named
// operation's request body, and returns a populated engine. A nil loader uses
// the default offline loader.
func EngineFromOpenAPI(ctx context.Context, loader *openapi.Loader, src openapi.Source, operationID string, options ...Option) (*Engine, error) {
	rules, err := openapi.RulesFromSource(ctx, loader, src, operationID)
	if err != nil {
		return nil, err
	}
	return rules.Engine(options...), nil
}
