// Package session watches the remaining lifetime of a backend session and
// warns subscribers shortly before it expires. One monitor per connected
// view; its polling goroutine is cancelled when the view is torn down.
package session

import (
	"context"
	"sync"
	"time"
)

const (
	defaultWarnWithin = 5 * time.Minute
	defaultInterval   = time.Second
)

// RemainingTimeFunc reports how long the session has left. A failing lookup
// is treated as an expired session.
type RemainingTimeFunc func(ctx context.Context) (time.Duration, error)

type Monitor struct {
	remaining  RemainingTimeFunc
	warnWithin time.Duration
	interval   time.Duration

	mu      sync.Mutex
	subs    map[int]chan bool
	nextSub int
	last    *bool

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(remaining RemainingTimeFunc) *Monitor {
	return &Monitor{
		remaining:  remaining,
		warnWithin: defaultWarnWithin,
		interval:   defaultInterval,
		subs:       make(map[int]chan bool),
	}
}

// Subscribe registers a listener for expiry-warning changes. The returned
// cancel function must be called when the listener goes away.
func (m *Monitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan bool, 1)
	m.subs[id] = ch
	if m.last != nil {
		ch <- *m.last
	}
	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Start launches the polling goroutine. It checks once per second and
// publishes a warning whenever the remaining time crosses the threshold.
// Stop (or cancelling ctx) is the documented teardown point; forgetting it
// leaks the ticker.
func (m *Monitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

// Stop cancels the polling goroutine and waits for it to exit.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *Monitor) check(ctx context.Context) {
	remaining, err := m.remaining(ctx)
	if err != nil {
		remaining = 0
	}
	m.publish(remaining <= m.warnWithin)
}

// publish notifies subscribers only when the warning state changes, so a
// listener sees a stream of edges rather than one message per tick.
func (m *Monitor) publish(expiring bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last != nil && *m.last == expiring {
		return
	}
	m.last = &expiring
	for _, ch := range m.subs {
		select {
		case ch <- expiring:
		default:
			// Slow subscriber keeps only the latest edge.
			select {
			case <-ch:
			default:
			}
			ch <- expiring
		}
	}
}
