package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned when a rule name has no registered implementation.
	ErrUnknownRule = errors.New("rules: unknown rule")

	// ErrInvalidRule is returned when registering an unnamed or empty rule.
	ErrInvalidRule = errors.New("rules: invalid rule definition")
)

// UnknownRuleError reports the rule name that could not be resolved.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownRule.Error(), e.Rule)
}

func (e *UnknownRuleError) Unwrap() error {
	return ErrUnknownRule
}
