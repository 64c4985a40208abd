// Package probe issues single-host ICMP reachability checks.
//
// A Prober answers one question: did the host reply to an echo request
// before the timeout. An unreachable host is a normal false result, never
// an error; a non-nil error means the probing mechanism itself is broken
// (missing ping binary, raw socket permission denied) and the surrounding
// scan cannot continue.
//
// Two implementations are provided:
//   - CommandProber: spawns the system ping utility once per probe, using
//     an invocation template selected for the host OS at startup
//   - ICMPProber: sends echo requests natively over an ICMP socket
//
// Privilege Requirements:
// - Raw ICMP sockets require root/admin privileges on most systems
// - The system ping binary is typically setuid and works unprivileged
package probe
