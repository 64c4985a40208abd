package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/pingx/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	sweepRunner, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}
	defer sweepRunner.Close()

	if err := sweepRunner.Run(); err != nil {
		gologger.Fatal().Msgf("Could not run sweep: %s\n", err)
	}
}
