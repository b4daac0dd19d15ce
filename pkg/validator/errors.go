package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. These are developer mistakes detected when a rule set is
// compiled, never the result of evaluating user input.
var (
	// ErrNoTest is returned when a rule sets neither a pattern nor a predicate.
	ErrNoTest = errors.New("rule has neither a pattern nor a predicate")

	// ErrAmbiguousTest is returned when a rule sets more than one kind of test.
	ErrAmbiguousTest = errors.New("rule must set exactly one of pattern, patterns or predicate")

	// ErrInvalidPattern is returned when a pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidKind is returned for a rule type other than requirement or restriction.
	ErrInvalidKind = errors.New("invalid rule type")

	// ErrUnknownPredicate is returned when a rule references an unregistered predicate name.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrUnknownValidator is returned when resolving a name that was never registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrEmptyName is returned when registering a definition or predicate without a name.
	ErrEmptyName = errors.New("validator name cannot be empty")

	// ErrNilPredicate is returned when registering a nil predicate.
	ErrNilPredicate = errors.New("predicate cannot be nil")

	// ErrInvalidDefinition is returned when a definition document cannot be decoded.
	ErrInvalidDefinition = errors.New("invalid validator definition")
)

// RuleError describes a rule that failed to compile.
type RuleError struct {
	Validator string // empty for inline definitions
	Index     int
	Err       error
}

func (e *RuleError) Error() string {
	if e.Validator == "" {
		return fmt.Sprintf("rule[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("validator %q rule[%d]: %v", e.Validator, e.Index, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err originates from compiling a rule or definition.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	var re *RuleError
	if errors.As(err, &re) {
		return true
	}
	return errors.Is(err, ErrInvalidDefinition) ||
		errors.Is(err, ErrUnknownValidator) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNilPredicate)
}
