// Package genlog wires github.com/decred/slog subsystem loggers for the
// CLI layer. The generator core packages (rng, ilist, params, netgen,
// grid, dimacs) accept no logger of their own — only cmd/netgen imports
// this package and threads level-filtered closures down through
// netgen.Hooks/grid.Hooks.
package genlog
