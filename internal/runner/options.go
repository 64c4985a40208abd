package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/pingx/pkg/sweep"
	"github.com/projectdiscovery/pingx/pkg/version"
	fileutil "github.com/projectdiscovery/utils/file"
)

var au = aurora.New(aurora.WithColors(true))

// probe mechanism names accepted by the -probe-mode flag
const (
	ProbeModeCommand = "cmd"
	ProbeModeICMP    = "icmp"
)

// Options contains the configuration options for a sweep run.
type Options struct {
	Cidrs goflags.StringSlice
	List  string

	Timeout     int
	Concurrency int
	Delay       int
	ProbeMode   string
	Privileged  bool

	OutputDir string

	NoColor bool
	Silent  bool
	Verbose bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`pingx sweeps one or more IPv4 subnets with ICMP echo probes and writes a per-subnet CSV report of reachable hosts`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&options.Cidrs, "cidr", "n", nil, "subnet(s) to sweep in CIDR notation (comma separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&options.List, "list", "l", "", "CSV file containing subnets to sweep (first column, one per row)"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.IntVar(&options.Timeout, "timeout", 1000, "time to wait for an echo reply in milliseconds"),
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", sweep.DefaultConcurrency, "maximum number of hosts probed in parallel"),
		flagSet.IntVar(&options.Delay, "delay", 0, "delay between probe submissions in milliseconds"),
		flagSet.StringVarP(&options.ProbeMode, "probe-mode", "pm", ProbeModeCommand, "probe mechanism to use (cmd, icmp)"),
		flagSet.BoolVar(&options.Privileged, "privileged", false, "use raw ICMP sockets in icmp probe mode"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.OutputDir, "output-dir", "o", "results", "directory to write per-subnet CSV reports"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if err := options.validate(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	return options
}

func (options *Options) validate() error {
	if len(options.Cidrs) == 0 && options.List == "" {
		return errors.New("no input provided, use -cidr or -list")
	}
	if len(options.Cidrs) > 0 && options.List != "" {
		return errors.New("-cidr and -list are mutually exclusive")
	}
	if options.List != "" && !fileutil.FileExists(options.List) {
		return fmt.Errorf("list file %q does not exist", options.List)
	}
	if options.ProbeMode != ProbeModeCommand && options.ProbeMode != ProbeModeICMP {
		return fmt.Errorf("unknown probe mode %q", options.ProbeMode)
	}
	if options.Timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	if options.Delay < 0 {
		return errors.New("delay cannot be negative")
	}
	return nil
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
