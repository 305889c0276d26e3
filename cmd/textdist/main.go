package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/textdist/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to initialize textdist got %v", err)
	}
	defer r.Close()

	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("failed to score input got %v", err)
	}
}
