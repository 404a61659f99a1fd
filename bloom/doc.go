package bloom

/*

# Bloom filter primitives (in-place, hash-scheme-tagged)

This package provides primitive building blocks for a Bloom filter stored in
a caller-supplied byte region.

It follows the "functional primitives" style used throughout this module:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be
  present (false positives are possible).

They are only an I/O optimization, never a proof of exclusion.

## Hashing

Probe positions come from double hashing. Two 32-bit values h1 and h2 are
derived from the element with a streaming hasher (hashes.Hasher32), each
under its own domain-separation byte, and probe i is

	(h1 + i*h2) mod mBits

for i in [0, k). The header records a hash scheme id so that a region can
only be read back with the hasher family that wrote it.

## Region layout

	+----------------------+  32B header (magic, version, params, checksum)
	| HeaderV1             |
	+----------------------+  ceil(mBits/8) bitset bytes
	| bitset               |
	+----------------------+

Bit numbering is LSB0: bit 0 is the least-significant bit of byte 0.

The header carries a 4-byte little-endian checksum of its parameter bytes,
computed with the same streaming hasher, so torn or foreign regions are
rejected rather than silently misread.

## API versioning: why the `V1` suffix exists

Functions are suffixed with the format version they implement (`InitV1`,
`InsertV1`, `MaybeContainsV1`): they assume a specific header layout, bit
numbering convention, and probe-derivation rule. Incompatible changes arrive
as `V2` side-by-side, without breaking previously persisted regions.

*/
