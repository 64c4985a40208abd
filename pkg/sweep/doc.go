// Package sweep runs bounded-concurrency reachability sweeps over a set of
// host addresses and aggregates the outcomes into an ordered report.
//
// The Coordinator owns a worker pool sized min(len(targets), Concurrency),
// submits one probe per target and waits for every probe to finish before
// assembling the Report. Probes complete in arbitrary order; the Report is
// always sorted ascending by address. A probe mechanism failure aborts the
// sweep and no partial Report is returned.
//
// Example:
//
//	coordinator := sweep.NewCoordinator(prober, sweep.Options{
//		Concurrency: 100,
//		Progress:    sweep.LogProgress("192.168.1.0/24"),
//	})
//	report, err := coordinator.Sweep(ctx, hosts)
package sweep
