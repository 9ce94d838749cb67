package search

import (
	"time"

	"github.com/bep/debounce"
)

// DefaultDebounceInterval is the quiet interval after the last keystroke
// before a query is considered settled.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer coalesces a stream of raw query updates into settled-query
// emissions. An update arriving before the quiet interval elapses discards
// the pending emission and restarts the timer, so exactly one emission
// follows the last update of a burst.
//
// The emit callback runs on a timer goroutine; callers bridge it back into
// their own event loop.
type Debouncer struct {
	gate func(func())
	emit func(query string)
}

// NewDebouncer creates a debouncer emitting settled queries to emit.
func NewDebouncer(interval time.Duration, emit func(query string)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{
		gate: debounce.New(interval),
		emit: emit,
	}
}

// Update feeds one raw query update into the debouncer.
func (d *Debouncer) Update(query string) {
	d.gate(func() {
		d.emit(query)
	})
}
