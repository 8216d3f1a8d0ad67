package rng

// Source is the minimal contract the generator packages draw on: a single
// deterministic integer draw from a closed interval, plus the ability to
// rewind to the stream's starting point.
type Source interface {
	// Generate returns an integer in [min(a,b), max(a,b)] (NETGEN variant:
	// exactly b when b<=a) and advances the underlying state.
	Generate(a, b int64) (int64, error)
	// Reset rewinds the stream to the state it had immediately after
	// construction or the last SetSeed call.
	Reset()
}

// NetgenRNG is the multiplicative congruential generator used by the 1989 C
// NETGEN translation. It operates modulo 2^31-1 using the classic Lehmer
// "Schrage" decomposition (hi/lo split) to avoid 32-bit overflow; Go's
// int64 carries the arithmetic without the signed-overflow hazard the
// original C code relied on implementation-defined behavior for.
//
// The zero value is not usable; construct with New.
type NetgenRNG struct {
	origin   int64 // seed used to construct/reset this stream
	previous int64 // last internal state, mutated by Generate
}

// netgenModulus is 2^31-1, the modulus of the underlying Lehmer generator.
const netgenModulus int64 = 2147483647

// netgenMultiplier is the generator's multiplicative constant, 7^5.
const netgenMultiplier int64 = 16807

// New constructs a NetgenRNG seeded with seed. seed must already have been
// validated by the caller (params.New performs the seed<=0 substitution
// documented in the data model); New itself performs no validation.
func New(seed int64) *NetgenRNG {
	return &NetgenRNG{origin: seed, previous: seed}
}

// SetSeed reseeds the generator and resets its stream, equivalent to
// New(seed) but reusing the existing value.
func (r *NetgenRNG) SetSeed(seed int64) {
	r.origin = seed
	r.previous = seed
}

// Reset rewinds the stream to the seed passed to New or the last SetSeed.
func (r *NetgenRNG) Reset() {
	r.previous = r.origin
}

// Generate returns the next pseudo-random integer and advances the stream.
//
// The state transform runs unconditionally on every call, matching the
// historical NETGEN C source: even when b<=a and the function short-
// circuits to returning b, the underlying Lehmer state still advances.
// This is deliberate: implementations that skip the transform on b<=a
// will diverge from the reference stream on any later call.
func (r *NetgenRNG) Generate(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidBound
	}

	s := r.previous
	hi := netgenMultiplier * (s >> 16)
	lo := netgenMultiplier * (s & 0xffff)
	hi += lo >> 16
	lo &= 0xffff
	lo += hi >> 15
	hi &= 0x7fff
	lo -= netgenModulus
	next := (hi << 16) + lo
	if next < 0 {
		next += netgenModulus
	}
	r.previous = next

	if b <= a {
		return b, nil
	}
	return a + r.previous%(b-a+1), nil
}
