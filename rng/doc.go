// Package rng provides the deterministic integer generators that drive the
// netgen and grid network generators.
//
// Two variants are exposed:
//
//   - NetgenRNG reproduces, bit-for-bit, the multiplicative (Lehmer)
//     congruential generator used by Schlenker's 1989 C translation of
//     NETGEN. Given the same seed and the same sequence of Generate(a, b)
//     calls, it returns the same stream on every platform and in every
//     target language.
//
//   - StandardRNG draws from a standard-library math/rand source. It is
//     reproducible only within a single Go process/version; it trades
//     cross-language bit-exactness for a better statistical profile.
//
// Both variants share the Source interface so callers (netgen, grid)
// never need to know which one they were handed.
package rng
