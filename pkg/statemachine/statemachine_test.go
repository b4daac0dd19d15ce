package statemachine_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/statemachine"
)

type phase string

type signal string

const (
	pristine phase = "pristine"
	touched  phase = "touched"
	settled  phase = "settled"

	focus signal = "focus"
	blur  signal = "blur"
	reset signal = "reset"
)

func TestMachine_Transitions(t *testing.T) {
	t.Parallel()

	m := statemachine.New(pristine,
		statemachine.From(pristine, touched, focus),
		statemachine.On(blur, settled, []phase{pristine, touched, settled}),
	)

	assert.True(t, m.Is(pristine))
	assert.True(t, m.CanFire(focus))
	require.NoError(t, m.Fire(focus))
	assert.Equal(t, touched, m.Current())

	assert.False(t, m.CanFire(focus))
	err := m.Fire(focus)
	require.ErrorIs(t, err, statemachine.ErrNoTransition)
	var te *statemachine.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "touched", te.State)
	assert.Equal(t, "focus", te.Event)

	require.NoError(t, m.Fire(blur))
	require.NoError(t, m.Fire(blur))
	assert.True(t, m.Is(settled))

	m.Reset()
	assert.True(t, m.Is(pristine))
}

func TestMachine_Guards(t *testing.T) {
	t.Parallel()

	allow := false
	guard := func(from phase, e signal) bool { return allow }
	m := statemachine.New(pristine,
		statemachine.From(pristine, touched, focus, statemachine.WithGuards[phase, signal](guard, nil)),
	)

	err := m.Fire(focus)
	assert.ErrorIs(t, err, statemachine.ErrRejected)
	assert.False(t, m.CanFire(focus))
	assert.Equal(t, pristine, m.Current())

	allow = true
	require.NoError(t, m.Fire(focus))
	assert.Equal(t, touched, m.Current())
}

func TestMachine_FirstPassingCandidateWins(t *testing.T) {
	t.Parallel()

	never := func(phase, signal) bool { return false }
	m := statemachine.New(pristine,
		statemachine.From(pristine, touched, focus, statemachine.WithGuards[phase, signal](never)),
		statemachine.From(pristine, settled, focus),
	)

	require.NoError(t, m.Fire(focus))
	assert.Equal(t, settled, m.Current())
}

func TestMachine_Actions(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(from, to phase, e signal) error {
		calls = append(calls, string(from)+">"+string(to)+"@"+string(e))
		return nil
	}
	fail := func(from, to phase, e signal) error { return errors.New("boom") }

	m := statemachine.New(pristine,
		statemachine.From(pristine, touched, focus, statemachine.WithActions[phase, signal](record, nil)),
		statemachine.From(touched, settled, blur, statemachine.WithActions[phase, signal](record, fail)),
	)

	require.NoError(t, m.Fire(focus))
	err := m.Fire(blur)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action failed")
	assert.Equal(t, touched, m.Current(), "a failing action keeps the state")
	assert.Equal(t, []string{"pristine>touched@focus", "touched>settled@blur"}, calls)
}

func TestMachine_UnknownEvent(t *testing.T) {
	t.Parallel()

	m := statemachine.New[phase, signal](pristine)
	err := m.Fire(reset)
	assert.ErrorIs(t, err, statemachine.ErrNoTransition)
	assert.Contains(t, err.Error(), `"reset"`)
}

func TestMachine_ConcurrentReads(t *testing.T) {
	t.Parallel()

	m := statemachine.New(pristine,
		statemachine.On(focus, touched, []phase{pristine, touched}),
	)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Fire(focus)
		}()
		go func() {
			defer wg.Done()
			_ = m.CanFire(focus)
			_ = m.Current()
		}()
	}
	wg.Wait()
	assert.Equal(t, touched, m.Current())
}

func BenchmarkMachine_Fire(b *testing.B) {
	m := statemachine.New(pristine,
		statemachine.On(focus, touched, []phase{pristine, touched}),
	)
	for b.Loop() {
		_ = m.Fire(focus)
	}
}
