package sweep

import (
	"net"
	"sync"

	"github.com/projectdiscovery/gologger"
)

// ProgressUpdate summarizes sweep progress at one checkpoint.
type ProgressUpdate struct {
	Percent   int
	Completed int
	Total     int
	// First and Last bound the window of addresses completed since the
	// previous checkpoint, in completion order.
	First net.IP
	Last  net.IP
}

// ProgressFunc receives checkpoint updates as probes complete. Checkpoints
// fire roughly every quarter of the target list; the final checkpoint is
// always 100% and percentages never decrease.
type ProgressFunc func(ProgressUpdate)

// LogProgress returns a ProgressFunc that reports checkpoints for subnet
// through gologger. This is the default sink used by the CLI.
func LogProgress(subnet string) ProgressFunc {
	return func(update ProgressUpdate) {
		if update.First != nil && update.Last != nil {
			gologger.Info().Msgf("Scanning %s... %d%% complete (%s - %s)", subnet, update.Percent, update.First, update.Last)
			return
		}
		gologger.Info().Msgf("Scanning %s... %d%% complete (%d/%d)", subnet, update.Percent, update.Completed, update.Total)
	}
}

// progressTracker counts completions and emits checkpoint updates. The
// final checkpoint is deferred to finish so it always reads 100% after the
// pool has fully drained.
type progressTracker struct {
	mu        sync.Mutex
	fn        ProgressFunc
	total     int
	step      int
	nextMark  int
	completed int
	first     net.IP
	last      net.IP
}

func newProgressTracker(total int, fn ProgressFunc) *progressTracker {
	step := total / 4
	if step < 1 {
		step = 1
	}
	return &progressTracker{fn: fn, total: total, step: step, nextMark: step}
}

func (t *progressTracker) complete(ip net.IP) {
	if t.fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.completed++
	if t.first == nil {
		t.first = ip
	}
	t.last = ip

	// the final checkpoint is emitted by finish, after the pool drains
	if t.completed >= t.nextMark && t.completed < t.total {
		// sink invoked under the lock so checkpoints arrive in order
		t.fn(t.snapshot())
		t.first, t.last = nil, nil
		for t.nextMark <= t.completed {
			t.nextMark += t.step
		}
	}
}

func (t *progressTracker) finish() {
	if t.fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	update := t.snapshot()
	update.Percent = 100
	t.fn(update)
}

func (t *progressTracker) snapshot() ProgressUpdate {
	return ProgressUpdate{
		Percent:   100 * t.completed / t.total,
		Completed: t.completed,
		Total:     t.total,
		First:     t.first,
		Last:      t.last,
	}
}
