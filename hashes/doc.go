package hashes

/*

# Streaming 32-bit hash primitives (modified FNV-1)

This package provides the hash algorithm backing the Bloom filter layer: a
streaming, non-cryptographic 32-bit hash in the FNV family, with an extra
avalanche finalizer.

It follows the same "functional primitives" style as the rest of the module:

- small, composable pieces
- explicit byte layouts
- no allocation on hot paths
- a burden of knowledge on the caller

## The algorithm

The update step is FNV-1 with the xor/multiply order swapped (sometimes
called "modified FNV-1"): for each input byte b,

	current = (current ^ b) * 16777619

using ordinary wrapping uint32 arithmetic. The accumulator starts at the
32-bit FNV offset basis 2166136261.

Finalization applies a fixed 5-step avalanche mix (MurmurHash style) to the
accumulator:

	x += x << 13
	x ^= x >> 7
	x += x << 3
	x ^= x >> 17
	x += x << 5

The finalizer improves output bit distribution; it is applied identically
regardless of how many bytes were appended, including zero.

## The stateful peek

CurrentHash is a side-effecting peek: it finalizes the accumulator AND
replaces the stored accumulator with the finalized value. Two consecutive
calls therefore return different values (the second re-finalizes the first
result). This matches the wire behaviour of the original filter format and
is a contract of this package, not an accident. Callers that want a clean
accumulator afterwards use CurrentHashAndReset, which restores the offset
basis instead.

## What this is not

No cryptographic properties are claimed: no collision resistance, no
preimage resistance. The output is only well-distributed enough to derive
Bloom filter probe positions. Only a 32-bit output width is supported.

Accumulators are single-owner, single-goroutine state. Distinct accumulators
may be used concurrently; concurrent use of one accumulator is a data race.

*/
