// Package validation provides declarative per-field input validation.
// Each endpoint declares an ordered RuleSet; all rules are evaluated before
// any storage access so a validation failure never causes a partial write.
package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// FieldError is one validation failure, reported in rule order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule checks a single field value.
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool
}

// RuleSet is an ordered list of rules for one endpoint.
type RuleSet []Rule

// Required fails when the field is empty or whitespace.
func Required(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(v string) bool {
			return strings.TrimSpace(v) != ""
		},
	}
}

// Email fails when the field is not a plausible email address.
func Email(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(v string) bool {
			return len(v) <= 254 && emailRegex.MatchString(v)
		},
	}
}

// MinLength fails when the field is shorter than min bytes.
func MinLength(field string, min int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check: func(v string) bool {
			return len(v) >= min
		},
	}
}

// Evaluate runs every rule against the supplied field values and returns all
// failures in declaration order. A missing key evaluates as the empty string.
func (rs RuleSet) Evaluate(values map[string]string) []FieldError {
	var errs []FieldError
	for _, rule := range rs {
		if !rule.Check(values[rule.Field]) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}
