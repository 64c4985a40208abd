package probe

import "context"

// Prober performs one reachability check against a single host.
type Prober interface {
	// Probe reports whether host answered an echo request before the
	// configured timeout. A host that is down, filtered or silent is a
	// false result, not an error. A non-nil error is always a
	// *ExecutionError and means the probing mechanism itself failed.
	Probe(ctx context.Context, host string) (bool, error)
}

// ExecutionError indicates the probing mechanism is unusable, independently
// of any target host. It is fatal to the scan that raised it.
type ExecutionError struct {
	Host string
	Err  error
}

func (e *ExecutionError) Error() string {
	return "probe mechanism failed for " + e.Host + ": " + e.Err.Error()
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
