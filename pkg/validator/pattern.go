package validator

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/dlclark/regexp2"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/cache"
)

// compiled holds regular expressions shared by every pattern with the same source.
var compiled = cache.New[string, *regexp2.Regexp](512)

// Pattern is a compiled regular expression with ECMAScript semantics, so rule
// catalogues written for browsers (lookaheads included) run unchanged.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// CompilePattern compiles expr as an ECMAScript regular expression.
// Compiled expressions are cached, so repeated inline definitions are cheap.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := compiled.GetOrCompute(expr, func() (*regexp2.Regexp, error) {
		return regexp2.Compile(expr, regexp2.ECMAScript)
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, fmt.Errorf("%q: %w", expr, err))
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustPattern is like CompilePattern but panics on error.
// Intended for package-level catalogue data.
func MustPattern(expr string) *Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether value contains a match of the pattern.
func (p *Pattern) Match(value string) bool {
	// Without a match timeout regexp2 only fails on timeouts, which cannot happen here.
	ok, err := p.re.MatchString(value)
	return err == nil && ok
}

func (p *Pattern) String() string {
	return p.expr
}

// Length returns the length of value in UTF-16 code units, the unit browsers
// use for an input's value length.
func Length(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}
