package validation

import internalengine "github.com/goliatone/go-formvalidate/internal/engine"

// Rule kinds re-exported from the internal engine.
const (
	RuleRequired  = internalengine.RuleRequired
	RuleMinLength = internalengine.RuleMinLength
	RuleMaxLength = internalengine.RuleMaxLength
	RuleMin       = internalengine.RuleMin
	RuleMax       = internalengine.RuleMax
	RulePattern   = internalengine.RulePattern
	RuleEmail     = internalengine.RuleEmail
	RuleURL       = internalengine.RuleURL
	RulePhone     = internalengine.RulePhone
	RuleDate      = internalengine.RuleDate
	RuleTime      = internalengine.RuleTime
	RuleNumber    = internalengine.RuleNumber
	RuleInteger   = internalengine.RuleInteger
	RuleCustom    = internalengine.RuleCustom
)

// Canonical rule parameter keys.
const (
	ParamValue   = internalengine.ParamValue
	ParamPattern = internalengine.ParamPattern
	ParamName    = internalengine.ParamName
)

// Error classifications carried by FieldError and FormError records.
const (
	ErrorTypeValidation = internalengine.ErrorTypeValidation
	ErrorTypeNetwork    = internalengine.ErrorTypeNetwork
	ErrorTypeServer     = internalengine.ErrorTypeServer
	ErrorTypeCustom     = internalengine.ErrorTypeCustom
)

type Rule = internalengine.Rule
type Result = internalengine.Result
type FieldResult = internalengine.FieldResult
type ErrorType = internalengine.ErrorType
type FieldError = internalengine.FieldError
type FormError = internalengine.FormError
type FormState = internalengine.FormState
type CustomValidator = internalengine.CustomValidator
type Engine = internalengine.Engine
type Option = internalengine.Option

// New constructs an empty engine ready for rule registration.
func New(options ...Option) *Engine {
	return internalengine.New(options...)
}
