package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

type fakeCycler struct {
	ran   chan struct{}
	err   error
	calls atomic.Int32
}

func newFakeCycler(err error) *fakeCycler {
	return &fakeCycler{ran: make(chan struct{}, 16), err: err}
}

func (f *fakeCycler) RunCycle(context.Context) (*domain.CycleReport, error) {
	n := f.calls.Add(1)

	select {
	case f.ran <- struct{}{}:
	default:
	}

	return &domain.CycleReport{CycleID: fmt.Sprint(n), Fallbacks: []string{domain.SourcePhoto}}, f.err
}

func waitRan(t *testing.T, f *fakeCycler) {
	t.Helper()

	select {
	case <-f.ran:
	case <-time.After(5 * time.Second):
		t.Fatal("cycle did not run")
	}
}

func TestNewRunner_Panics(t *testing.T) {
	assert.Panics(t, func() { NewRunner(RunnerConfig{Interval: time.Second}) })
	assert.Panics(t, func() { NewRunner(RunnerConfig{Cycler: newFakeCycler(nil)}) })
}

func TestRunner_RunOnce(t *testing.T) {
	cycler := newFakeCycler(nil)
	r := NewRunner(RunnerConfig{Cycler: cycler, Interval: time.Hour, Logger: discardLogger()})

	report, err := r.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1", report.CycleID)

	snap := r.Status().Snapshot()
	assert.Equal(t, 1, snap.Cycles)
	assert.Zero(t, snap.Failures)
	assert.False(t, snap.Running)
	require.NotNil(t, snap.Last)
	assert.Equal(t, "1", snap.Last.CycleID)
}

func TestRunner_RunOnceCountsFailures(t *testing.T) {
	cycler := newFakeCycler(&CycleError{Stage: StageApply, Cause: errors.New("no desktop")})
	r := NewRunner(RunnerConfig{Cycler: cycler, Interval: time.Hour, Logger: discardLogger()})

	_, err := r.RunOnce(context.Background())
	require.Error(t, err)

	snap := r.Status().Snapshot()
	assert.Equal(t, 1, snap.Cycles)
	assert.Equal(t, 1, snap.Failures)
}

func TestRunner_RunLoopsOnInterval(t *testing.T) {
	cycler := newFakeCycler(nil)
	r := NewRunner(RunnerConfig{Cycler: cycler, Interval: 10 * time.Millisecond, Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- r.Run(ctx) }()

	waitRan(t, cycler)
	waitRan(t, cycler)
	waitRan(t, cycler)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	assert.GreaterOrEqual(t, cycler.calls.Load(), int32(3))
}

func TestRunner_TriggerShortensWait(t *testing.T) {
	cycler := newFakeCycler(errors.New("cycle failures do not stop the loop"))
	r := NewRunner(RunnerConfig{Cycler: cycler, Interval: time.Hour, Logger: discardLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() { done <- r.Run(ctx) }()

	waitRan(t, cycler)

	require.Eventually(t, func() bool {
		return !r.Status().Snapshot().NextRun.IsZero()
	}, 5*time.Second, time.Millisecond)

	assert.True(t, r.Trigger())
	waitRan(t, cycler)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(2), cycler.calls.Load())
}

func TestRunner_TriggerCoalesces(t *testing.T) {
	r := NewRunner(RunnerConfig{Cycler: newFakeCycler(nil), Interval: time.Hour, Logger: discardLogger()})

	assert.True(t, r.Trigger())
	assert.False(t, r.Trigger(), "a pending refresh absorbs further requests")
}

func TestStatus_SnapshotIsACopy(t *testing.T) {
	s := NewStatus()
	s.begin()
	assert.True(t, s.Snapshot().Running)

	report := &domain.CycleReport{CycleID: "c1", Fallbacks: []string{domain.SourceQuote}}
	s.record(report, nil)

	snap := s.Snapshot()
	snap.Last.Fallbacks[0] = "mutated"
	snap.Last.CycleID = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "c1", again.Last.CycleID)
	assert.Equal(t, []string{domain.SourceQuote}, again.Last.Fallbacks)
}
