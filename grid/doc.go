// Package grid generates grid-structured transportation networks: a
// rows×cols lattice fed by a single master source and drained by a single
// master sink. Arcs are laid out in a fixed order (east, west, south,
// north, four diagonal families, master sink) so that output is
// byte-stable for a given parameter set and seed.
//
// Complexity: O(rows*cols) time and space; each interior arc emitted costs
// two RNG draws, or up to three on a skeleton row's east arc.
package grid
