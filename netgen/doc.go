// Package netgen implements the NETGEN skeleton-and-fill algorithm: supply
// distribution, chain construction from sources, sink linkage with flow
// balancing, skeleton sort, skeleton attribute assignment, and random-fill
// arc completion via pick_head.
//
// Generate is the single entry point. It consumes a validated
// *params.Params and an rng.Source, and produces a Network — parallel arc
// arrays plus a signed supply vector — without performing any I/O. The
// DIMACS text rendering lives in the sibling dimacs package.
//
// Determinism: for a fixed Params and rng.NetgenRNG, Generate draws RNG
// values in a fixed order, making its output reproducible bit-for-bit
// with the 1989 C NETGEN reference.
package netgen
