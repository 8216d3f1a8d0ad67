// Package params defines the validated, immutable parameter record that
// drives both the netgen and grid generators, plus the derivation rule
// that classifies a parameter set as a minimum-cost-flow, maximum-flow, or
// assignment instance.
//
// Params is constructed exclusively through New, which performs every
// invariant check before any RNG draw occurs elsewhere in the pipeline:
// generation either runs to completion or never starts.
package params
