package field

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/events"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/logger"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/statemachine"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

// Config selects the rules for a field and how it is wired.
type Config struct {
	// Validator is the registered rule-set name.
	Validator string
	// Definition is an inline rule set. It takes precedence over Validator.
	Definition *validator.Definition
	// Rules, when set, replace the resolved rule list and keep its metadata.
	Rules []validator.RuleDef
	// RequiredMessage overrides the message of the implicit Required rule.
	RequiredMessage string
	// Label names the field in the form summary. Defaults to the element ID.
	Label string
	// Scheduler defers focus evaluation. The default ImmediateScheduler runs it
	// at once, so a change delivered with the focus evaluates the field again.
	// Hosts with coincident events should use a QueueScheduler flushed after
	// each dispatch.
	Scheduler Scheduler
	Logger    *slog.Logger
}

// Field evaluates one form control against its rule set and tracks the
// presentation state derived from the results.
//
// A Field is not safe for concurrent use. Events for one field are expected to
// be delivered one at a time.
type Field struct {
	el            Element
	id            string
	tag           string
	label         string
	validatorName string
	required      bool
	rules         *validator.RuleSet
	attrs         map[string]string
	scheduler     Scheduler
	logger        *slog.Logger
	machine       *interactionMachine

	hasError     bool
	handled      bool
	invalid      bool
	panelVisible bool
	groupWarning bool
	groupError   bool
	hintVisible  []bool

	unsubscribe []func()
}

// Attach resolves the field's rule set and computes its bind-time attributes.
// It fails for elements other than input and select, and for unknown or
// malformed validators.
func Attach(reg *validator.Registry, el Element, cfg Config) (*Field, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}

	tag := strings.ToLower(el.Tag())
	if tag != TagInput && tag != TagSelect {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedElement, tag)
	}

	id := el.ID()
	if id == "" {
		id = "field-" + uuid.NewString()
	}

	rules, err := resolveRules(reg, cfg)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", id, err)
	}

	required := el.Required()
	if required {
		rules = rules.Append(validator.RequiredRule(cfg.RequiredMessage))
	}

	label := cfg.Label
	if label == "" {
		label = id
	}

	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = ImmediateScheduler{}
	}

	log := logger.OrDiscard(cfg.Logger).With(
		logger.Component("field"),
		logger.FieldID(id),
		logger.Validator(validatorName(cfg)),
	)

	f := &Field{
		el:            el,
		id:            id,
		tag:           tag,
		label:         label,
		validatorName: validatorName(cfg),
		required:      required,
		rules:         rules,
		scheduler:     scheduler,
		logger:        log,
		machine:       newInteractionMachine(log),
		hasError:      el.Invalid(),
		invalid:       el.Invalid(),
		hintVisible:   make([]bool, rules.Len()),
	}
	f.attrs = bindAttributes(f, strings.ToLower(el.Type()))

	log.Debug("field attached",
		logger.Count("rules", rules.Len()),
		slog.Bool("required", required),
	)
	return f, nil
}

func resolveRules(reg *validator.Registry, cfg Config) (*validator.RuleSet, error) {
	var (
		rules *validator.RuleSet
		err   error
	)
	if cfg.Definition != nil {
		rules, err = reg.ResolveDefinition(*cfg.Definition)
	} else {
		rules, err = reg.Resolve(cfg.Validator)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Rules != nil {
		override, err := reg.ResolveDefinition(validator.Definition{Rules: cfg.Rules})
		if err != nil {
			return nil, err
		}
		rules = rules.WithRules(override.Rules...)
	}
	return rules, nil
}

func validatorName(cfg Config) string {
	if cfg.Definition != nil {
		return ""
	}
	return cfg.Validator
}

// ID returns the element ID, or the generated one when the element had none.
func (f *Field) ID() string { return f.id }

// Label returns the summary label.
func (f *Field) Label() string { return f.label }

// Rules returns the field's rule set, including the implicit Required rule.
func (f *Field) Rules() *validator.RuleSet { return f.rules }

// Required reports whether the element was required when attached.
func (f *Field) Required() bool { return f.required }

// Interaction returns the current interaction state.
func (f *Field) Interaction() Interaction { return f.machine.Current() }

// Attributes returns a copy of the attributes to set on the element.
func (f *Field) Attributes() map[string]string {
	return maps.Clone(f.attrs)
}

// State returns a snapshot of the field's presentation state.
func (f *Field) State() State { return f.snapshot() }

// Validate evaluates the current value. In submit mode failures are errors and
// mark the group as errored. In interactive mode failures are warnings; rules
// hidden on first interaction are skipped until the field has been blurred once.
//
// Calling Validate repeatedly with the same value and interaction state yields
// the same result and leaves the same presentation state.
func (f *Field) Validate(isSubmit bool) Result {
	var res Result
	if f.el.Disabled() {
		return res
	}

	value := f.el.Value()
	first := !f.machine.Is(Stable)

	for _, o := range f.rules.Evaluate(value) {
		if isSubmit {
			if f.satisfiedOnSubmit(value, o) {
				f.hintVisible[o.Index] = false
				continue
			}
			f.hasError = true
			f.groupError = true
			f.invalid = true
			res.Errors = append(res.Errors, o.Rule.Message)
			continue
		}

		if first && !o.Rule.ShowOnFirstFocus {
			continue
		}

		switch o.Verdict {
		case validator.NotApplicable:
			f.hintVisible[o.Index] = false
		case validator.Pass:
			f.hasError = false
			f.hintVisible[o.Index] = false
		case validator.Fail:
			f.panelVisible = true
			f.hintVisible[o.Index] = true
			f.invalid = true
			res.Warnings = append(res.Warnings, o.Rule.Message)
			if !first && !f.hasError {
				f.groupWarning = true
			}
		}
	}

	if res.Valid() {
		f.panelVisible = false
		f.invalid = false
		f.groupError = false
		f.groupWarning = false
	}

	f.logger.Debug("field validated",
		logger.Mode(isSubmit),
		logger.Count("errors", len(res.Errors)),
		logger.Count("warnings", len(res.Warnings)),
	)
	return res
}

// satisfiedOnSubmit decides a rule for submit mode. An empty optional field
// satisfies every rule; an empty required field is reported by the Required
// rule alone.
func (f *Field) satisfiedOnSubmit(value string, o validator.Outcome) bool {
	if o.Verdict != validator.Fail {
		return true
	}
	if value != "" {
		return false
	}
	return !f.required || !o.Rule.Required
}

// Focus handles a focus event. Evaluation is deferred through the scheduler
// and skipped when a change or keyup raised by the same action got there first.
func (f *Field) Focus() {
	f.fire(evFocus)
	f.scheduler.Defer(func() {
		if !f.handled {
			f.Validate(false)
			f.handled = false
		}
	})
}

// Change handles a change event.
func (f *Field) Change() Result {
	f.fire(evChange)
	f.handled = true
	return f.Validate(false)
}

// KeyUp handles a key release. Selects ignore it.
func (f *Field) KeyUp() Result {
	if f.tag != TagInput {
		return Result{}
	}
	f.fire(evKeyUp)
	f.handled = true
	return f.Validate(false)
}

// Blur re-runs interactive evaluation, collapses the hint panel and settles
// the field. The group is marked as warning when rules fail or a required
// value is missing.
func (f *Field) Blur() Result {
	res := f.Validate(false)
	if len(res.Warnings) > 0 || (f.el.Value() == "" && f.required) {
		f.groupWarning = true
	}
	f.panelVisible = false
	f.fire(evBlur)
	f.handled = false
	return res
}

// MarkStable ends the first interaction without evaluating. Forms call it
// before submit-mode validation.
func (f *Field) MarkStable() {
	f.fire(evSubmit)
}

// ClearGroup removes the group warning and error markers.
func (f *Field) ClearGroup() {
	f.groupWarning = false
	f.groupError = false
}

// Subscribe routes events from n to the field's handlers, replacing any
// earlier subscription. Keyup is only routed for inputs.
func (f *Field) Subscribe(n events.Notifier) {
	f.Detach()
	f.unsubscribe = append(f.unsubscribe,
		n.On(events.Focus, f.Focus),
		n.On(events.Change, func() { f.Change() }),
		n.On(events.Blur, func() { f.Blur() }),
	)
	if f.tag == TagInput {
		f.unsubscribe = append(f.unsubscribe, n.On(events.KeyUp, func() { f.KeyUp() }))
	}
}

// Detach removes the handlers registered by Subscribe.
func (f *Field) Detach() {
	for _, off := range f.unsubscribe {
		if off != nil {
			off()
		}
	}
	f.unsubscribe = nil
}

func (f *Field) fire(e event) {
	if err := f.machine.Fire(e); err != nil && !errors.Is(err, statemachine.ErrNoTransition) {
		f.logger.Warn("interaction transition failed", logger.Event(string(e)), logger.Error(err))
	}
}
