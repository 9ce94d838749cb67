package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emissionRecorder struct {
	mu        sync.Mutex
	queries   []string
	timestamp []time.Time
}

func (r *emissionRecorder) record(query string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, query)
	r.timestamp = append(r.timestamp, time.Now())
}

func (r *emissionRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.queries...)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	rec := &emissionRecorder{}
	d := NewDebouncer(300*time.Millisecond, rec.record)

	// Keystrokes at t=0, 50, 100, 300 ms.
	start := time.Now()
	d.Update("a")
	time.Sleep(50 * time.Millisecond)
	d.Update("au")
	time.Sleep(50 * time.Millisecond)
	d.Update("aut")
	time.Sleep(200 * time.Millisecond)
	d.Update("auth")

	// Quiet interval runs out around t=600.
	time.Sleep(500 * time.Millisecond)

	emissions := rec.snapshot()
	require.Len(t, emissions, 1, "one emission per burst")
	assert.Equal(t, "auth", emissions[0])

	rec.mu.Lock()
	elapsed := rec.timestamp[0].Sub(start)
	rec.mu.Unlock()
	assert.GreaterOrEqual(t, elapsed, 550*time.Millisecond,
		"emission fires a full quiet interval after the last update")
}

func TestDebouncerRestartsOnUpdate(t *testing.T) {
	rec := &emissionRecorder{}
	d := NewDebouncer(100*time.Millisecond, rec.record)

	d.Update("first")
	time.Sleep(50 * time.Millisecond)
	// Arrives before the interval elapses: "first" must never emit.
	d.Update("second")
	time.Sleep(250 * time.Millisecond)

	emissions := rec.snapshot()
	require.Len(t, emissions, 1)
	assert.Equal(t, "second", emissions[0])
}

func TestDebouncerSeparateBursts(t *testing.T) {
	rec := &emissionRecorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)

	d.Update("one")
	time.Sleep(150 * time.Millisecond)
	d.Update("two")
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"one", "two"}, rec.snapshot())
}
