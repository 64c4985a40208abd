package probe

import (
	"context"
	"time"

	ping "github.com/go-ping/ping"
)

// ICMPProber sends echo requests over an ICMP socket instead of spawning
// the system ping binary. Unprivileged UDP datagram sockets are used by
// default; privileged raw sockets can be requested where the platform needs
// them (windows) or the process runs as root.
type ICMPProber struct {
	timeout    time.Duration
	privileged bool
}

// NewICMPProber returns an ICMPProber with the given per-probe timeout.
func NewICMPProber(timeout time.Duration, privileged bool) *ICMPProber {
	return &ICMPProber{timeout: timeout, privileged: privileged}
}

// Probe sends a single echo request to host and waits for a reply up to the
// timeout. The socket is closed before returning regardless of outcome.
func (p *ICMPProber) Probe(ctx context.Context, target string) (bool, error) {
	pinger, err := ping.NewPinger(target)
	if err != nil {
		return false, &ExecutionError{Host: target, Err: err}
	}
	pinger.SetPrivileged(p.privileged)
	pinger.Count = 1
	pinger.Timeout = p.timeout

	done := make(chan error, 1)
	go func() {
		done <- pinger.Run()
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		<-done
		return false, nil
	case err := <-done:
		if err != nil {
			// Run fails on socket setup, not on missing replies:
			// typically a raw socket permission problem
			return false, &ExecutionError{Host: target, Err: err}
		}
	}

	return pinger.Statistics().PacketsRecv > 0, nil
}
