// Package cache provides a generic fixed-capacity LRU cache.
//
// The validator package keeps compiled regular expressions in one, so inline
// definitions attached to many fields compile each pattern once:
//
//	patterns := cache.New[string, *regexp2.Regexp](512)
//	re, err := patterns.GetOrCompute(expr, func() (*regexp2.Regexp, error) {
//	    return regexp2.Compile(expr, regexp2.ECMAScript)
//	})
//
// All methods are safe for concurrent use.
package cache
