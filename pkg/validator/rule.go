package validator

import (
	"fmt"
)

// Kind decides how a rule's underlying test maps to validity.
type Kind string

const (
	// Requirement rules are satisfied when their test succeeds.
	Requirement Kind = "requirement"
	// Restriction rules are satisfied when their test fails.
	Restriction Kind = "restriction"
)

// ParseKind converts a rule type string. The empty string means Requirement.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Requirement:
		return Requirement, nil
	case Restriction:
		return Restriction, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Verdict is the tri-state outcome of evaluating a single rule.
type Verdict int

const (
	// NotApplicable means the value is shorter than the rule's MinLength.
	NotApplicable Verdict = iota
	Pass
	Fail
)

func (v Verdict) String() string {
	switch v {
	case NotApplicable:
		return "not_applicable"
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// MatchPolicy combines the results of a multi-pattern test.
type MatchPolicy int

const (
	// MatchAny passes when at least one pattern matches.
	MatchAny MatchPolicy = iota
	// MatchAll passes when every pattern matches.
	MatchAll
)

// Predicate is a custom test over the raw field value.
type Predicate func(value string) bool

// Check is the test a rule runs. It is one of PatternTest, PatternsTest or PredicateTest.
type Check interface {
	run(value string) bool
}

// PatternTest matches a single pattern.
type PatternTest struct {
	Pattern *Pattern
}

func (t PatternTest) run(value string) bool {
	return t.Pattern.Match(value)
}

// PatternsTest matches several patterns combined by Policy.
type PatternsTest struct {
	Patterns []*Pattern
	Policy   MatchPolicy
}

func (t PatternsTest) run(value string) bool {
	matched := 0
	for _, p := range t.Patterns {
		if p.Match(value) {
			matched++
		}
	}
	if t.Policy == MatchAll {
		return matched == len(t.Patterns)
	}
	return matched > 0
}

// PredicateTest calls a predicate. A panicking predicate is a programming error and is not recovered.
type PredicateTest struct {
	Func Predicate
}

func (t PredicateTest) run(value string) bool {
	return t.Func(value)
}

// Rule is a single testable condition with the message shown when it is unsatisfied.
type Rule struct {
	Kind    Kind
	Message string
	Check   Check

	// MinLength is the value length below which the rule is not evaluated. Zero means always.
	MinLength int

	// Help marks the message as a non-blocking hint.
	Help bool

	// ShowOnFirstFocus allows the message to appear during the first interaction with a field.
	ShowOnFirstFocus bool

	// Required is set only on the implicit rule appended to required fields.
	Required bool
}

// Passes runs the rule's test and applies its kind, ignoring MinLength.
func (r Rule) Passes(value string) bool {
	result := r.Check.run(value)
	if r.Kind == Restriction {
		return !result
	}
	return result
}

// Evaluate returns NotApplicable for values shorter than MinLength, otherwise Pass or Fail.
func (r Rule) Evaluate(value string) Verdict {
	if r.MinLength > 0 && Length(value) < r.MinLength {
		return NotApplicable
	}
	if r.Passes(value) {
		return Pass
	}
	return Fail
}

// RuleDef is the declarative form of a Rule, as written in catalogues and definition files.
// Exactly one of Pattern, Patterns, Predicate or PredicateName must be set.
type RuleDef struct {
	Kind             Kind      `yaml:"type,omitempty"`
	Message          string    `yaml:"note"`
	Pattern          string    `yaml:"pattern,omitempty"`
	Patterns         []string  `yaml:"patterns,omitempty"`
	All              bool      `yaml:"all,omitempty"`
	MinLength        int       `yaml:"min_length,omitempty"`
	Help             *bool     `yaml:"help,omitempty"`
	ShowOnFirstFocus *bool     `yaml:"show_on_first_focus,omitempty"`
	PredicateName    string    `yaml:"predicate,omitempty"`
	Predicate        Predicate `yaml:"-"`
}

// NewRule compiles a RuleDef. PredicateName must already be resolved into
// Predicate; the Registry does that for definitions it receives.
func NewRule(def RuleDef) (Rule, error) {
	kind, err := ParseKind(string(def.Kind))
	if err != nil {
		return Rule{}, err
	}

	tests := 0
	if def.Pattern != "" {
		tests++
	}
	if len(def.Patterns) > 0 {
		tests++
	}
	if def.Predicate != nil || def.PredicateName != "" {
		tests++
	}
	switch {
	case tests == 0:
		return Rule{}, ErrNoTest
	case tests > 1:
		return Rule{}, ErrAmbiguousTest
	}

	var check Check
	switch {
	case def.Predicate != nil:
		check = PredicateTest{Func: def.Predicate}
	case def.PredicateName != "":
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, def.PredicateName)
	case def.Pattern != "":
		p, err := CompilePattern(def.Pattern)
		if err != nil {
			return Rule{}, err
		}
		check = PatternTest{Pattern: p}
	case len(def.Patterns) == 1:
		p, err := CompilePattern(def.Patterns[0])
		if err != nil {
			return Rule{}, err
		}
		check = PatternTest{Pattern: p}
	default:
		patterns := make([]*Pattern, 0, len(def.Patterns))
		for _, expr := range def.Patterns {
			p, err := CompilePattern(expr)
			if err != nil {
				return Rule{}, err
			}
			patterns = append(patterns, p)
		}
		policy := MatchAny
		if def.All {
			policy = MatchAll
		}
		check = PatternsTest{Patterns: patterns, Policy: policy}
	}

	minLength := def.MinLength
	if minLength < 0 {
		minLength = 0
	}

	// Requirements are hints unless told otherwise; restrictions are not.
	help := kind == Requirement
	if def.Help != nil {
		help = *def.Help
	}
	showOnFirstFocus := true
	if def.ShowOnFirstFocus != nil {
		showOnFirstFocus = *def.ShowOnFirstFocus
	}

	return Rule{
		Kind:             kind,
		Message:          def.Message,
		Check:            check,
		MinLength:        minLength,
		Help:             help,
		ShowOnFirstFocus: showOnFirstFocus,
	}, nil
}

// MustRule is like NewRule but panics on error.
func MustRule(def RuleDef) Rule {
	r, err := NewRule(def)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRequiredMessage is the message of the implicit Required rule.
const DefaultRequiredMessage = "Input is required"

// RequiredRule returns the rule appended to required fields. An empty message uses DefaultRequiredMessage.
func RequiredRule(message string) Rule {
	if message == "" {
		message = DefaultRequiredMessage
	}
	return Rule{
		Kind:             Requirement,
		Message:          message,
		Check:            PatternTest{Pattern: anythingPattern},
		Help:             false,
		ShowOnFirstFocus: false,
		Required:         true,
	}
}

var anythingPattern = MustPattern(`.+`)

func boolPtr(b bool) *bool {
	return &b
}
