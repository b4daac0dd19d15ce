// Package validator is the rule engine behind form-field validation: the rule
// data model, rule sets, the built-in catalogue and the registry that maps
// field-type names to rule sets.
//
// A Rule couples a test with the message shown when the rule is unsatisfied.
// Requirement rules are satisfied when their test succeeds, Restriction rules
// when it fails. The test is one of:
//
//   - PatternTest   – a single ECMAScript regular expression
//   - PatternsTest  – several expressions combined with MatchAny or MatchAll
//   - PredicateTest – a Go function over the raw value
//
// Rule.Evaluate yields a tri-state Verdict. NotApplicable is returned only when
// the value is shorter than the rule's MinLength; it counts as satisfied when a
// RuleSet decides validity.
//
// # Architecture
//
// Rules are declared as RuleDef values (in Go or YAML) and compiled once, at
// registration time, so configuration mistakes such as a rule with neither a
// pattern nor a predicate fail fast. Evaluation is pure: it has no side effects
// and depends only on the value and the rule.
//
// Built-in definitions live in per-family files (contact_rules.go,
// financial_rules.go, ...). Their checksums (Luhn, ABA routing number, date
// round-trip) are exported as predicates and available to definition files by
// name.
//
// # Usage
//
//	reg := validator.NewDefaultRegistry()
//
//	if err := reg.RegisterYAML(customDefinitions); err != nil {
//	    return err
//	}
//
//	rs, err := reg.Resolve(validator.NameEmail)
//	if err != nil {
//	    return err
//	}
//	for _, o := range rs.Evaluate("user@example") {
//	    fmt.Println(o.Rule.Message, o.Verdict)
//	}
//
// Definition files map names to definitions:
//
//	routing:
//	  maxlength: 9
//	  rules:
//	    - note: Enter a valid bank account routing number
//	      predicate: aba_routing
//	    - type: restriction
//	      note: Input must not start with a zero
//	      pattern: ^0
//
// # Error Handling
//
// Compilation failures are returned as *RuleError wrapping one of the
// sentinel errors (ErrNoTest, ErrInvalidPattern, ...). Use errors.Is or
// IsConfigurationError to classify them. Rule outcomes are never errors.
package validator
