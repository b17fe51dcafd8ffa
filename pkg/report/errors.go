package report

import (
	"strings"
	"time"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// MergeServerErrors folds a server error payload (field name -> messages)
// into a form state. Messages for known fields become FieldError records of
// type server; unknown and form-level keys become FormError records so no
// message is lost. The input state is not mutated.
//
// A field that already carries a local validation error keeps it; the server
// messages append to its joined message.
func MergeServerErrors(state validation.FormState, knownFields []string, payload map[string][]string) validation.FormState {
	if len(payload) == 0 {
		return state
	}

	merged := cloneState(state)
	known := make(map[string]struct{}, len(knownFields))
	for _, field := range knownFields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			known[trimmed] = struct{}{}
		}
	}

	for rawKey, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}

		key := strings.TrimSpace(rawKey)
		if isFormLevelKey(key) {
			for _, message := range normalized {
				merged.FormErrors = append(merged.FormErrors, validation.FormError{
					Message: message,
					Type:    validation.ErrorTypeServer,
				})
			}
			merged.Valid = false
			continue
		}

		if _, ok := known[key]; !ok {
			for _, message := range normalized {
				merged.FormErrors = append(merged.FormErrors, validation.FormError{
					Message: message,
					Type:    validation.ErrorTypeServer,
				})
			}
			merged.Valid = false
			continue
		}

		if merged.FieldErrors == nil {
			merged.FieldErrors = make(map[string]validation.FieldError)
		}
		joined := strings.Join(normalized, ", ")
		if existing, ok := merged.FieldErrors[key]; ok {
			existing.Message = existing.Message + ", " + joined
			merged.FieldErrors[key] = existing
		} else {
			merged.FieldErrors[key] = validation.FieldError{
				Field:     key,
				Message:   joined,
				Type:      validation.ErrorTypeServer,
				Timestamp: time.Now(),
			}
		}
		merged.Valid = false
	}

	return merged
}

// normalizeMessages trims whitespace and removes duplicates while preserving
// order.
func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

func cloneState(state validation.FormState) validation.FormState {
	clone := state
	if len(state.FieldErrors) > 0 {
		clone.FieldErrors = make(map[string]validation.FieldError, len(state.FieldErrors))
		for key, value := range state.FieldErrors {
			clone.FieldErrors[key] = value
		}
	}
	if len(state.FormErrors) > 0 {
		clone.FormErrors = append([]validation.FormError(nil), state.FormErrors...)
	}
	return clone
}
