package sweep

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/projectdiscovery/pingx/pkg/cidr"
	"github.com/projectdiscovery/pingx/pkg/probe"
	"github.com/rs/xid"
)

// DefaultConcurrency caps the worker pool when the caller does not.
const DefaultConcurrency = 100

// Result records the probe outcome for one host.
type Result struct {
	IP        net.IP
	Reachable bool
}

// Report is the completed outcome of one sweep. Results hold exactly one
// entry per submitted target, ordered ascending by address.
type Report struct {
	ID        string
	Results   []Result
	Total     int
	Reachable int
	Duration  time.Duration
}

// Options tunes a Coordinator.
type Options struct {
	// Concurrency bounds the number of in-flight probes. Values <= 0
	// fall back to DefaultConcurrency.
	Concurrency int
	// Delay pauses between probe submissions. Zero means no pause.
	Delay time.Duration
	// Progress, when set, receives checkpoint updates as probes complete.
	Progress ProgressFunc
}

// Coordinator fans probes out over a bounded worker pool and fans results
// back in. Safe for sequential reuse; each Sweep call creates and fully
// joins its own pool.
type Coordinator struct {
	prober probe.Prober
	opts   Options
}

// NewCoordinator returns a Coordinator probing through p.
func NewCoordinator(p probe.Prober, opts Options) *Coordinator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Coordinator{prober: p, opts: opts}
}

// Sweep probes every target and returns the completed report. It blocks
// until all submitted probes have finished. A *probe.ExecutionError from any
// worker aborts the sweep: outstanding probes are cancelled, the pool is
// drained and no report is returned.
func (c *Coordinator) Sweep(ctx context.Context, targets []net.IP) (*Report, error) {
	start := time.Now()
	report := &Report{ID: xid.New().String(), Total: len(targets)}
	if len(targets) == 0 {
		return report, nil
	}

	limit := c.opts.Concurrency
	if limit > len(targets) {
		limit = len(targets)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		sem     = make(chan struct{}, limit)
		results = make([]Result, len(targets))
		tracker = newProgressTracker(len(targets), c.opts.Progress)

		fatalMu  sync.Mutex
		fatalErr error
	)

submit:
	for i, target := range targets {
		select {
		case <-ctx.Done():
			break submit
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, ip net.IP) {
			defer wg.Done()
			defer func() { <-sem }()

			reachable, err := c.prober.Probe(ctx, ip.String())
			if err != nil {
				fatalMu.Lock()
				if fatalErr == nil {
					fatalErr = err
					cancel()
				}
				fatalMu.Unlock()
				return
			}
			results[idx] = Result{IP: ip, Reachable: reachable}
			tracker.complete(ip)
		}(i, target)

		if c.opts.Delay > 0 && i < len(targets)-1 {
			select {
			case <-ctx.Done():
				break submit
			case <-time.After(c.opts.Delay):
			}
		}
	}
	wg.Wait()

	if fatalErr != nil {
		return nil, fatalErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracker.finish()

	// probes complete out of order, the report never does
	sort.Slice(results, func(i, j int) bool {
		return cidr.Compare(results[i].IP, results[j].IP) < 0
	})

	report.Results = results
	report.Duration = time.Since(start)
	for _, result := range results {
		if result.Reachable {
			report.Reachable++
		}
	}
	return report, nil
}
