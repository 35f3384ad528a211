package events

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotOrder(t *testing.T) {
	var slot Slot[int]
	var calls []string

	slot.Subscribe(func(v int) { calls = append(calls, "first") })
	slot.Subscribe(func(v int) { calls = append(calls, "second") })
	slot.Subscribe(func(v int) { calls = append(calls, "third") })

	slot.Emit(1)
	assert.Equal(t, []string{"first", "second", "third"}, calls)

	slot.Emit(2)
	assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, calls)
}

func TestSlotValue(t *testing.T) {
	var slot Slot[string]
	var got []string

	slot.Subscribe(func(v string) { got = append(got, v) })
	slot.Emit("a")
	slot.Emit("b")

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, slot.Len())
}

func TestSlotEmptyEmit(t *testing.T) {
	var slot Slot[int]
	// Emitting with no listeners is a no-op, not a panic.
	slot.Emit(42)
	assert.Zero(t, slot.Len())
}

func waitSettled(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("operation never settled")
	}
}

func TestSettledSuccess(t *testing.T) {
	ran := false
	done := Settled(func() error {
		ran = true
		return nil
	})
	waitSettled(t, done)
	assert.True(t, ran)
}

func TestSettledFailure(t *testing.T) {
	// Failure settles exactly like success; the error is swallowed.
	done := Settled(func() error {
		return errors.New("boom")
	})
	waitSettled(t, done)
}

func TestAllSettled(t *testing.T) {
	results := make(chan int, 3)
	done := AllSettled(
		func() error { results <- 1; return nil },
		func() error { results <- 2; return errors.New("boom") },
		func() error { results <- 3; return nil },
	)
	waitSettled(t, done)
	require.Len(t, results, 3)
}

func TestAllSettledEmpty(t *testing.T) {
	waitSettled(t, AllSettled())
}
