package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateReportsAllFailuresInOrder(t *testing.T) {
	rules := RuleSet{
		Required("name", "Name is required"),
		Email("email", "Please enter a valid email."),
		MinLength("password", 6, "Please enter a password with 6 or more characters."),
	}

	errs := rules.Evaluate(map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "abc",
	})

	assert.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Name is required", errs[0].Message)
	assert.Equal(t, "email", errs[1].Field)
	assert.Equal(t, "password", errs[2].Field)
}

func TestEvaluatePasses(t *testing.T) {
	rules := RuleSet{
		Required("name", "Name is required"),
		Email("email", "Please enter a valid email."),
		MinLength("password", 6, "Please enter a password with 6 or more characters."),
	}

	errs := rules.Evaluate(map[string]string{
		"name":     "Alice",
		"email":    "a@x.com",
		"password": "hunter22",
	})
	assert.Empty(t, errs)
}

func TestRequiredRejectsWhitespace(t *testing.T) {
	rule := Required("status", "Status is required")
	assert.False(t, rule.Check("   "))
	assert.True(t, rule.Check("Developer"))
}

func TestEmailRule(t *testing.T) {
	rule := Email("email", "Please enter a valid email.")
	assert.True(t, rule.Check("dev@example.com"))
	assert.False(t, rule.Check("dev@example"))
	assert.False(t, rule.Check(""))
	assert.False(t, rule.Check("@example.com"))
}

func TestEvaluateMissingKeyFails(t *testing.T) {
	rules := RuleSet{Required("text", "Text is required.")}
	errs := rules.Evaluate(map[string]string{})
	assert.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
}
