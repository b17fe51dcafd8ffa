// Package validation exposes the public surface of the rule-based form
// validation engine. The implementation lives in internal/engine; this
// package re-exports the types and constructors callers are expected to use.
//
// The engine is synchronous and framework-agnostic: UI layers call
// ValidateField on change/blur events and ValidateForm on submit, then render
// the returned state however they like. All invalidity, including rule
// configuration mistakes such as a malformed pattern, is reported as data and
// is always safe to display.
package validation
