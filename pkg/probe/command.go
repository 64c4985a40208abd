package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// CommandProber runs the system ping utility once per probe. The subprocess
// is bounded by its own timeout flag plus a context deadline cushion, so a
// wedged binary cannot block a worker indefinitely.
type CommandProber struct {
	command PingCommand
	timeout time.Duration
}

// NewCommandProber returns a CommandProber using the given invocation
// template and per-probe timeout.
func NewCommandProber(command PingCommand, timeout time.Duration) *CommandProber {
	return &CommandProber{command: command, timeout: timeout}
}

// Probe spawns one ping subprocess against host and interprets its exit
// status. The subprocess handle is released before returning regardless of
// outcome.
func (p *CommandProber) Probe(ctx context.Context, target string) (bool, error) {
	// let the ping timeout flag fire first, the context deadline is a
	// backstop against a wedged subprocess
	ctx, cancel := context.WithTimeout(ctx, p.timeout+2*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.command.Binary, p.command.Args(target, p.timeout)...)
	output, err := cmd.Output()
	if err == nil {
		if p.command.OS == "windows" {
			// windows ping exits 0 even for "destination host
			// unreachable" replies from an intermediate router
			return bytes.Contains(output, []byte("Reply from")), nil
		}
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// non-zero exit: the host did not answer
		return false, nil
	}
	if ctx.Err() != nil {
		return false, nil
	}

	// fork/exec failure: missing binary, permission denied
	return false, &ExecutionError{Host: target, Err: err}
}
