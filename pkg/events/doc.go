// Package events delivers user-interaction events (focus, change, keyup, blur,
// click, reset) from the presentation layer to fields and forms.
//
// Notifier is the contract a host implements over its own event system. Bus is
// an in-memory implementation used by hosts without one, and by tests:
//
//	bus := events.NewBus()
//	off := bus.On(events.Blur, func() { /* ... */ })
//	bus.Emit(events.Blur)
//	off()
//
// Dispatch is synchronous: Emit returns after every handler has run.
package events
