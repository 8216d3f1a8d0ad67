package main

import (
	"github.com/flowgen/netgen/dimacs"
	"github.com/flowgen/netgen/grid"
	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// gridCommand implements the "grid" subcommand: the lattice generator.
type gridCommand struct {
	Positional struct {
		Rest []string
	} `positional-args:"yes"`

	global *globalOptions
}

func (c *gridCommand) Execute(_ []string) error {
	vals, err := parseInt64Args(c.Positional.Rest, 15)
	if err != nil {
		return err
	}

	cfg := grid.Config{
		Seed:        intArg(vals, 0, 1),
		Rows:        intArg(vals, 1, 3),
		Cols:        intArg(vals, 2, 4),
		Skeleton:    intArg(vals, 3, 1),
		Diagonal:    boolArg(vals, 4, true),
		Reverse:     boolArg(vals, 5, false),
		Wrap:        boolArg(vals, 6, false),
		MinCost:     intArg(vals, 7, 10),
		MaxCost:     intArg(vals, 8, 99),
		Supply:      intArg(vals, 9, 1000),
		HiCost:      intArg(vals, 10, 0),
		Capacitated: intArg(vals, 11, 100),
		MinCap:      intArg(vals, 12, 100),
		MaxCap:      intArg(vals, 13, 1000),
	}
	if intArg(vals, 14, 0) != 0 {
		cfg.RNGKind = params.Standard
	}

	p, err := grid.New(cfg)
	if err != nil {
		return err
	}

	var hooks *grid.Hooks
	if logger := commandLogger(c.global); logger != nil {
		hooks = &grid.Hooks{OnPhase: func(name string) { logger.Debugf("phase: %s", name) }}
	}

	var source rng.Source
	if p.RNGKind == params.Standard {
		source = rng.NewStandard(p.Seed)
	} else {
		source = rng.New(p.Seed)
	}

	net, err := grid.Generate(p, source, hooks)
	if err != nil {
		return err
	}

	text := dimacs.Write(net, dimacs.Header{
		Generator: "grid",
		Seed:      p.Seed,
	}, c.global.File == "")

	return writeOutput(text, c.global.File, c.global.Quiet, stdout, stderr)
}
