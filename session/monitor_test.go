package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitForSignal(t *testing.T, ch <-chan bool, want bool) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("Expected expiring=%v, got %v", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Timed out waiting for expiring=%v", want)
	}
}

func TestMonitorWarnsNearExpiry(t *testing.T) {
	var remaining atomic.Int64
	remaining.Store(int64(10 * time.Minute))

	m := NewMonitor(func(ctx context.Context) (time.Duration, error) {
		return time.Duration(remaining.Load()), nil
	})
	m.interval = 5 * time.Millisecond

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()

	m.Start(context.Background())
	defer m.Stop()

	waitForSignal(t, ch, false)

	remaining.Store(int64(3 * time.Minute))
	waitForSignal(t, ch, true)

	// Extending the session clears the warning.
	remaining.Store(int64(30 * time.Minute))
	waitForSignal(t, ch, false)
}

func TestMonitorTreatsLookupFailureAsExpired(t *testing.T) {
	m := NewMonitor(func(ctx context.Context) (time.Duration, error) {
		return 0, errors.New("backend unreachable")
	})
	m.interval = 5 * time.Millisecond

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()

	m.Start(context.Background())
	defer m.Stop()

	waitForSignal(t, ch, true)
}

func TestMonitorStopCancelsPolling(t *testing.T) {
	var polls atomic.Int32
	m := NewMonitor(func(ctx context.Context) (time.Duration, error) {
		polls.Add(1)
		return time.Hour, nil
	})
	m.interval = 5 * time.Millisecond

	m.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	m.Stop()

	after := polls.Load()
	time.Sleep(30 * time.Millisecond)
	if polls.Load() != after {
		t.Error("Polling continued after Stop")
	}
}

func TestSubscribeAfterFirstPollSeesCurrentState(t *testing.T) {
	m := NewMonitor(func(ctx context.Context) (time.Duration, error) {
		return time.Minute, nil
	})
	m.interval = 5 * time.Millisecond

	m.Start(context.Background())
	defer m.Stop()
	time.Sleep(30 * time.Millisecond)

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()
	waitForSignal(t, ch, true)
}
