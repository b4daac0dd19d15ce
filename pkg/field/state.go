package field

import (
	"log/slog"
	"maps"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/logger"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/statemachine"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

// Interaction is how far a user has got with a field.
type Interaction string

const (
	NeverInteracted Interaction = "never_interacted"
	Interacting     Interaction = "interacting"
	Stable          Interaction = "stable"
)

type event string

const (
	evFocus  event = "focus"
	evChange event = "change"
	evKeyUp  event = "keyup"
	evBlur   event = "blur"
	evSubmit event = "submit"
)

type interactionMachine = statemachine.Machine[Interaction, event]

// newInteractionMachine builds the NeverInteracted -> Interacting -> Stable
// machine. Stable is terminal: focusing a settled field does not make it new again.
func newInteractionMachine(log *slog.Logger) *interactionMachine {
	trace := statemachine.WithActions[Interaction, event](func(from, to Interaction, e event) error {
		if from != to {
			log.Debug("interaction state changed",
				logger.Event(string(e)),
				slog.String("from", string(from)),
				logger.State(string(to)),
			)
		}
		return nil
	})

	active := []Interaction{NeverInteracted, Interacting}
	all := []Interaction{NeverInteracted, Interacting, Stable}

	return statemachine.New(NeverInteracted,
		statemachine.On(evFocus, Interacting, active, trace),
		statemachine.On(evChange, Interacting, active, trace),
		statemachine.On(evKeyUp, Interacting, active, trace),
		statemachine.On(evBlur, Stable, all, trace),
		statemachine.On(evSubmit, Stable, all, trace),
	)
}

// Result is the outcome of one evaluation. Errors are filled in submit mode,
// Warnings in interactive mode.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the evaluation produced neither errors nor warnings.
func (r Result) Valid() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// State is a snapshot of everything the presentation layer renders for a field.
type State struct {
	ID          string
	Label       string
	Validator   string
	Interaction string
	// Hints carries the panel and per-rule visibility.
	Hints        validator.HintList
	Invalid      bool
	DescribedBy  string
	GroupWarning bool
	GroupError   bool
	HasError     bool
	Attributes   map[string]string
}

func (f *Field) snapshot() State {
	hints := f.rules.RenderHints(f.id)
	hints.Visible = f.panelVisible
	for i := range hints.Hints {
		hints.Hints[i].Visible = f.hintVisible[i]
	}

	return State{
		ID:           f.id,
		Label:        f.label,
		Validator:    f.validatorName,
		Interaction:  string(f.machine.Current()),
		Hints:        hints,
		Invalid:      f.invalid,
		DescribedBy:  hints.ID,
		GroupWarning: f.groupWarning,
		GroupError:   f.groupError,
		HasError:     f.hasError,
		Attributes:   maps.Clone(f.attrs),
	}
}
