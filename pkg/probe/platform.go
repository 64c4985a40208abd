package probe

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/shirou/gopsutil/v3/host"
)

// PingCommand describes how to invoke the system ping utility for a single
// echo request on one OS family. The template is computed once at process
// start and passed into CommandProber explicitly.
type PingCommand struct {
	Binary string
	OS     string
}

// Args returns the argument list for one echo request against host.
// Timeout flag units differ per OS family: windows and darwin take
// milliseconds, linux takes whole seconds.
func (c PingCommand) Args(target string, timeout time.Duration) []string {
	switch c.OS {
	case "windows":
		return []string{"-n", "1", "-w", strconv.Itoa(int(timeout.Milliseconds())), target}
	case "darwin":
		return []string{"-c", "1", "-W", strconv.Itoa(int(timeout.Milliseconds())), target}
	default:
		secs := int(timeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		return []string{"-c", "1", "-W", strconv.Itoa(secs), target}
	}
}

// DetectPlatform inspects the host OS once at startup and returns the ping
// invocation template to use. An OS family with no known ping syntax is a
// startup-fatal condition, reported before any scan begins.
func DetectPlatform() (PingCommand, error) {
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
	default:
		return PingCommand{}, fmt.Errorf("no ping invocation known for OS %q", runtime.GOOS)
	}

	if info, err := host.Info(); err == nil {
		gologger.Verbose().Msgf("detected platform: %s %s (kernel %s)", info.Platform, info.PlatformVersion, info.KernelVersion)
	}

	return PingCommand{Binary: "ping", OS: runtime.GOOS}, nil
}
