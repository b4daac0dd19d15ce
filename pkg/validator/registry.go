package validator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/logger"
)

// Registry maps validator names to compiled rule sets.
// It is built once at startup and may be extended afterwards; later
// registrations under the same name fully replace earlier ones.
type Registry struct {
	mu         sync.RWMutex
	sets       map[string]*RuleSet
	predicates map[string]Predicate
	logger     *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithBuiltins registers the built-in catalogue.
func WithBuiltins() Option {
	return func(r *Registry) {
		for _, e := range catalogue() {
			rs, err := r.compile(e.names[0], e.definition)
			if err != nil {
				// The catalogue is static data; failing here is a programming error.
				panic(err)
			}
			for _, name := range e.names {
				r.sets[name] = rs
			}
		}
	}
}

// WithLogger sets the logger used for registry events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPredicates makes additional named predicates available to definitions.
// Nil predicates and empty names are skipped.
func WithPredicates(predicates map[string]Predicate) Option {
	return func(r *Registry) {
		for name, fn := range predicates {
			if name != "" && fn != nil {
				r.predicates[name] = fn
			}
		}
	}
}

// NewRegistry creates a registry. Built-in predicates are always available by
// name; built-in definitions only with WithBuiltins.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sets:       make(map[string]*RuleSet),
		predicates: builtinPredicates(),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("validator.registry"))
	return r
}

// NewDefaultRegistry returns a registry holding the built-in catalogue.
func NewDefaultRegistry(opts ...Option) *Registry {
	return NewRegistry(append([]Option{WithBuiltins()}, opts...)...)
}

// Register compiles def and stores it under name, replacing any previous definition.
func (r *Registry) Register(name string, def Definition) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rs, err := r.compile(name, def)
	if err != nil {
		return err
	}
	_, replaced := r.sets[name]
	r.sets[name] = rs

	r.logger.Debug("validator registered",
		logger.Validator(name),
		logger.Count("rules", rs.Len()),
		slog.Bool("replaced", replaced),
	)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, def Definition) {
	if err := r.Register(name, def); err != nil {
		panic(err)
	}
}

// RegisterPredicate makes fn available to definitions as `predicate: name`.
func (r *Registry) RegisterPredicate(name string, fn Predicate) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilPredicate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[name] = fn
	return nil
}

// RegisterYAML registers every definition of a YAML document mapping names to
// definitions. Either all definitions are registered or none.
func (r *Registry) RegisterYAML(data []byte) error {
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return errors.Join(ErrInvalidDefinition, err)
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		if name == "" {
			return ErrEmptyName
		}
		names = append(names, name)
	}
	sort.Strings(names)

	r.mu.Lock()
	defer r.mu.Unlock()

	compiled := make(map[string]*RuleSet, len(defs))
	for _, name := range names {
		rs, err := r.compile(name, defs[name])
		if err != nil {
			return err
		}
		compiled[name] = rs
	}
	for name, rs := range compiled {
		r.sets[name] = rs
	}

	r.logger.Info("validator definitions loaded", logger.Count("definitions", len(compiled)))
	return nil
}

// LoadYAML reads a YAML definition document from rd and registers it.
func (r *Registry) LoadYAML(rd io.Reader) error {
	data, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}
	return r.RegisterYAML(data)
}

// Resolve returns a fresh copy of the rule set registered under name.
// The empty name resolves to an empty rule set.
func (r *Registry) Resolve(name string) (*RuleSet, error) {
	if name == "" {
		return &RuleSet{}, nil
	}

	r.mu.RLock()
	rs, ok := r.sets[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return rs.Clone(), nil
}

// ResolveDefinition compiles an inline definition without registering it.
func (r *Registry) ResolveDefinition(def Definition) (*RuleSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.compile("", def)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sets[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// compile resolves predicate names and builds the rule set. Callers hold the lock.
func (r *Registry) compile(name string, def Definition) (*RuleSet, error) {
	resolved := def
	resolved.Rules = make([]RuleDef, len(def.Rules))
	for i, rd := range def.Rules {
		if rd.PredicateName != "" && rd.Predicate == nil {
			fn, ok := r.predicates[rd.PredicateName]
			if !ok {
				return nil, &RuleError{
					Validator: name,
					Index:     i,
					Err:       fmt.Errorf("%w: %q", ErrUnknownPredicate, rd.PredicateName),
				}
			}
			rd.Predicate = fn
			rd.PredicateName = ""
		}
		resolved.Rules[i] = rd
	}

	rs, err := NewRuleSet(resolved)
	if err != nil {
		var re *RuleError
		if errors.As(err, &re) {
			re.Validator = name
		}
		return nil, err
	}
	return rs, nil
}
