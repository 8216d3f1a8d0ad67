package main

import (
	"github.com/flowgen/netgen/dimacs"
	"github.com/flowgen/netgen/netgen"
	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// netgenCommand implements the "netgen" subcommand: the classic
// supply/chain/skeleton generator.
type netgenCommand struct {
	Positional struct {
		Rest []string
	} `positional-args:"yes"`

	global *globalOptions
}

// Execute converts positional args to a params.Config in the CLI's fixed
// argument order, runs netgen.Generate, and writes the DIMACS
// serialization.
func (c *netgenCommand) Execute(_ []string) error {
	vals, err := parseInt64Args(c.Positional.Rest, 15)
	if err != nil {
		return err
	}

	cfg := params.Config{
		Seed:        intArg(vals, 0, 1),
		Nodes:       intArg(vals, 1, 10),
		Sources:     intArg(vals, 2, 3),
		Sinks:       intArg(vals, 3, 3),
		Density:     intArg(vals, 4, 30),
		MinCost:     intArg(vals, 5, 10),
		MaxCost:     intArg(vals, 6, 99),
		Supply:      intArg(vals, 7, 1000),
		TSources:    intArg(vals, 8, 0),
		TSinks:      intArg(vals, 9, 0),
		HiCost:      intArg(vals, 10, 0),
		Capacitated: intArg(vals, 11, 100),
		MinCap:      intArg(vals, 12, 100),
		MaxCap:      intArg(vals, 13, 1000),
	}
	if intArg(vals, 14, 0) != 0 {
		cfg.RNGKind = params.Standard
	}

	p, err := params.New(cfg)
	if err != nil {
		return err
	}

	var hooks *netgen.Hooks
	if logger := commandLogger(c.global); logger != nil {
		hooks = &netgen.Hooks{OnPhase: func(name string) { logger.Debugf("phase: %s", name) }}
	}

	var source rng.Source
	if p.RNGKind == params.Standard {
		source = rng.NewStandard(p.Seed)
	} else {
		source = rng.New(p.Seed)
	}

	net, err := netgen.Generate(p, source, hooks)
	if err != nil {
		return err
	}

	text := dimacs.Write(net, dimacs.Header{
		Generator: "netgen",
		Seed:      p.Seed,
		Fields:    []string{params.Classify(p).String() + " problem"},
	}, c.global.File == "")

	return writeOutput(text, c.global.File, c.global.Quiet, stdout, stderr)
}
