// Package warnbus accumulates and fans out the non-fatal warnings spec.md
// §7 calls for: "prefix errors are accumulated and reported at end of file
// to avoid stop-the-world on a single typo" and "non-fatal warnings
// (unshortenable IRI, unknown tag during rule-selection) are emitted
// through a logger and summarised at termination".
//
// A [Bus] plays both roles: [Bus.Emit] always appends to an internal
// accumulator drained by [Bus.Drain], and additionally — without ever
// blocking the emitting call — delivers the warning to any live
// [Subscription] for hosts that want to observe warnings as they occur.
package warnbus

import (
	"sync"
	"sync/atomic"

	"github.com/sssom/sssom-core/errs"
)

const defaultBufferSize = 64

// Warning is a single non-fatal condition raised during reading, parsing,
// or pipeline execution.
type Warning struct {
	Kind    errs.Kind
	Pos     errs.Pos
	Message string
}

// Bus accumulates [Warning] values and fans them out to subscribers.
//
// Each call to [Bus.Emit] appends to the accumulator (drained by
// [Bus.Drain]) and delivers a copy to every active [Subscription] via a
// buffered channel with ring-buffer semantics: when a subscriber's channel
// is full the oldest entry is dropped so Emit never blocks. Safe for
// concurrent use.
//
// Create instances with [New].
type Bus struct {
	subscribers []*Subscription
	warnings    []Warning
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// New creates a [Bus] with the given options. The default subscriber
// buffer size is 64.
func New(opts ...Option) *Bus {
	b := &Bus{bufSize: defaultBufferSize}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Option configures a [Bus].
type Option func(*Bus)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) Option {
	return func(b *Bus) {
		if n < 1 {
			n = 1
		}

		b.bufSize = n
	}
}

// Emit records w in the accumulator and delivers it to active subscribers.
func (b *Bus) Emit(w Warning) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.warnings = append(b.warnings, w)

	alive := b.subscribers[:0]

	for _, sub := range b.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		select {
		case sub.ch <- w:
		default:
			select {
			case <-sub.ch:
			default:
			}

			select {
			case sub.ch <- w:
			default:
			}
		}

		alive = append(alive, sub)
	}

	for i := len(alive); i < len(b.subscribers); i++ {
		b.subscribers[i] = nil
	}

	b.subscribers = alive
}

// Drain returns all warnings accumulated since the last Drain call, in
// emission order, and clears the accumulator.
func (b *Bus) Drain() []Warning {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.warnings
	b.warnings = nil

	return out
}

// Len reports how many warnings are currently accumulated.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.warnings)
}

// Subscribe creates and registers a new [Subscription]. If the Bus is
// already closed the returned subscription's channel is immediately closed.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{ch: make(chan Warning, b.bufSize)}

	if b.closed {
		close(sub.ch)
		return sub
	}

	b.subscribers = append(b.subscribers, sub)

	return sub
}

// Close marks the Bus as closed, closes all subscription channels, and
// releases the subscriber list. Idempotent.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	for _, sub := range b.subscribers {
		close(sub.ch)
	}

	b.subscribers = nil

	return nil
}

// Subscription receives warnings from a [Bus].
type Subscription struct {
	ch     chan Warning
	closed atomic.Bool
}

// C returns the read-only channel that delivers warnings.
func (s *Subscription) C() <-chan Warning {
	return s.ch
}

// Close marks the subscription as closed. The Bus will close the
// underlying channel on its next Emit or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
