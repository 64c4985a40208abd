package runner

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/pingx/pkg/cidr"
	"github.com/projectdiscovery/pingx/pkg/output"
	"github.com/projectdiscovery/pingx/pkg/probe"
	"github.com/projectdiscovery/pingx/pkg/sweep"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	prober  probe.Prober
	writer  *output.Writer
}

// NewRunner instance. The probing mechanism is selected once here, before
// any subnet is attempted: an unsupported platform is fatal at startup.
func NewRunner(options *Options) (*Runner, error) {
	timeout := time.Duration(options.Timeout) * time.Millisecond

	var prober probe.Prober
	switch options.ProbeMode {
	case ProbeModeICMP:
		prober = probe.NewICMPProber(timeout, options.Privileged)
	default:
		command, err := probe.DetectPlatform()
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("no usable probing mechanism")
		}
		prober = probe.NewCommandProber(command, timeout)
	}

	return &Runner{
		options: options,
		prober:  prober,
		writer:  output.NewWriter(options.OutputDir),
	}, nil
}

// Run the instance. Subnets are swept strictly one after another; a failing
// subnet is reported and skipped, the remaining subnets still run.
func (r *Runner) Run() error {
	subnets, err := r.loadSubnets()
	if err != nil {
		return err
	}
	if len(subnets) == 0 {
		gologger.Info().Msg("no subnets to sweep")
		return nil
	}

	var totalHosts, totalReachable, failed int
	for _, subnet := range subnets {
		report, err := r.sweepSubnet(context.Background(), subnet)
		if err != nil {
			failed++
			gologger.Error().Msgf("could not sweep %s: %s", subnet, err)
			continue
		}
		totalHosts += report.Total
		totalReachable += report.Reachable
	}
	if failed == len(subnets) {
		return errors.New("all subnet sweeps failed")
	}

	gologger.Info().Msgf("Sweep complete: %s hosts are reachable", au.BrightGreen(fmt.Sprintf("%d out of %d", totalReachable, totalHosts)))
	return nil
}

// sweepSubnet expands one subnet, probes every usable host and persists the
// ordered report. Any error here aborts this subnet only.
func (r *Runner) sweepSubnet(ctx context.Context, subnet string) (*sweep.Report, error) {
	hosts, err := cidr.Hosts(subnet)
	if err != nil {
		return nil, err
	}
	gologger.Info().Msgf("Starting sweep of %s (%d hosts)", subnet, len(hosts))

	coordinator := sweep.NewCoordinator(r.prober, sweep.Options{
		Concurrency: r.options.Concurrency,
		Delay:       time.Duration(r.options.Delay) * time.Millisecond,
		Progress:    sweep.LogProgress(subnet),
	})
	report, err := coordinator.Sweep(ctx, hosts)
	if err != nil {
		return nil, err
	}
	gologger.Verbose().Msgf("sweep %s finished in %s", report.ID, report.Duration)

	path, err := r.writer.WriteReport(subnet, report)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not write report for %s", subnet)
	}
	gologger.Info().Msgf("Found %d reachable hosts in %s, results saved to %s", report.Reachable, subnet, path)
	return report, nil
}

// loadSubnets returns the deduplicated subnet list from the -cidr flag or
// the first column of the -list CSV file. Blank rows are skipped.
func (r *Runner) loadSubnets() ([]string, error) {
	if len(r.options.Cidrs) > 0 {
		return sliceutil.Dedupe([]string(r.options.Cidrs)), nil
	}

	file, err := os.Open(r.options.List)
	if err != nil {
		return nil, errorutil.NewWithErr(err).Msgf("could not open list file")
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var subnets []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("could not read list file")
		}
		if len(row) == 0 {
			continue
		}
		subnet := strings.TrimSpace(row[0])
		if subnet == "" {
			continue
		}
		subnets = append(subnets, subnet)
	}
	return sliceutil.Dedupe(subnets), nil
}

// Close the runner instance
func (r *Runner) Close() {}
