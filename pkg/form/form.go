package form

import (
	"log/slog"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/events"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/field"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/logger"
)

// Container supplies the fields in scope of a form, in document order.
type Container interface {
	Fields() []*field.Field
}

// Fields is a static Container.
type Fields []*field.Field

func (fs Fields) Fields() []*field.Field { return fs }

// Config wires a form.
type Config struct {
	// Summary is the ID of the error summary element.
	Summary string
	// Reset is the ID of the reset control.
	Reset string
	// Submits allows the default submission when validation succeeds.
	Submits   bool
	OnError   func(ErrorList)
	OnSuccess func()
	Logger    *slog.Logger
}

// Form validates every field of its container on submit and maintains the
// error summary.
type Form struct {
	container Container
	cfg       Config
	logger    *slog.Logger

	errors  ErrorList
	summary Summary

	unsubscribe []func()
}

// Attach binds a form to container.
func Attach(container Container, cfg Config) (*Form, error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	return &Form{
		container: container,
		cfg:       cfg,
		logger:    logger.OrDiscard(cfg.Logger).With(logger.Component("form")),
		summary:   Summary{ID: cfg.Summary},
	}, nil
}

// Validate runs submit-mode evaluation over every field and reports whether
// none produced errors. Each field is settled first, so later interactive
// feedback no longer treats it as new.
func (f *Form) Validate() bool {
	fields := f.container.Fields()

	var errs ErrorList
	for _, fld := range fields {
		if fld == nil {
			continue
		}
		fld.MarkStable()
		res := fld.Validate(true)
		if len(res.Errors) > 0 {
			errs = append(errs, FieldError{
				FieldID:  fld.ID(),
				Label:    fld.Label(),
				Messages: res.Errors,
			})
		}
	}
	f.errors = errs

	f.logger.Debug("form validated",
		logger.Count("fields", len(fields)),
		logger.Count("errors", len(errs)),
	)

	if errs.IsEmpty() {
		f.hideSummary()
		if f.cfg.OnSuccess != nil {
			f.cfg.OnSuccess()
		}
		return true
	}

	f.summary.Visible = true
	f.summary.FocusRequested = true
	f.summary.Entries = entriesFor(errs)
	if f.cfg.OnError != nil {
		f.cfg.OnError(errs)
	}
	return false
}

// Click handles the submit control and reports whether the default
// submission may proceed.
func (f *Form) Click() (allowDefault bool) {
	return f.Validate() && f.cfg.Submits
}

// Reset clears the group markers of every field and hides the summary.
// Interaction state and the last error list are kept.
func (f *Form) Reset() {
	for _, fld := range f.container.Fields() {
		if fld != nil {
			fld.ClearGroup()
		}
	}
	f.hideSummary()
}

// Errors returns the error list of the last Validate call.
func (f *Form) Errors() ErrorList {
	out := make(ErrorList, len(f.errors))
	copy(out, f.errors)
	return out
}

// Summary returns a snapshot of the error summary.
func (f *Form) Summary() Summary {
	return f.summary.clone()
}

// Target returns the field a summary entry links to.
func (f *Form) Target(entry SummaryEntry) (*field.Field, bool) {
	for _, fld := range f.container.Fields() {
		if fld != nil && fld.ID() == entry.FieldID {
			return fld, true
		}
	}
	return nil, false
}

// Subscribe routes click and reset events from n to the form, replacing any
// earlier subscription.
func (f *Form) Subscribe(n events.Notifier) {
	f.Detach()
	f.unsubscribe = append(f.unsubscribe,
		n.On(events.Click, func() { f.Click() }),
		n.On(events.Reset, f.Reset),
	)
}

// Detach removes the handlers registered by Subscribe.
func (f *Form) Detach() {
	for _, off := range f.unsubscribe {
		if off != nil {
			off()
		}
	}
	f.unsubscribe = nil
}

func (f *Form) hideSummary() {
	f.summary.Visible = false
	f.summary.FocusRequested = false
	f.summary.Entries = nil
}
