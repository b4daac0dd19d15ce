// Package field evaluates a single form control against its rule set and
// derives the state the presentation layer renders: which hints are visible,
// whether the control is marked invalid, and whether its group shows a
// warning or an error.
//
// A Field moves through three interaction states. It is NeverInteracted until
// the first focus, change or keyup, Interacting until the first blur or form
// submit, and Stable afterwards. Rules created with ShowOnFirstFocus set to
// false stay quiet until the field is Stable, and group warnings are only
// raised for Stable fields.
//
// Validate has two modes. Interactive evaluation (focus, keyup, change, blur)
// reports failures as warnings. Submit evaluation reports them as errors; an
// empty optional field satisfies every rule and an empty required field is
// reported by the implicit Required rule only.
//
//	reg := validator.NewDefaultRegistry()
//	el := field.NewInput("email", "email")
//	f, err := field.Attach(reg, el, field.Config{Validator: validator.NameEmail})
//	if err != nil {
//	    return err
//	}
//	f.Subscribe(bus)
//
//	el.SetValue("user@example")
//	res := f.KeyUp() // res.Warnings lists the failing rule messages
package field
