package hashes

import "errors"

const (
	// Prime32 is the 32-bit FNV prime used by the update step.
	Prime32 uint32 = 16777619

	// Offset32 is the 32-bit FNV offset basis; accumulators start here.
	Offset32 uint32 = 2166136261

	// SizeBytes32 is the byte length of a serialized 32-bit hash value.
	SizeBytes32 = 4
)

var ErrShortBuffer = errors.New("hashes: destination shorter than 4 bytes")

// Hasher32 is the capability contract the filter layer consumes. There is
// exactly one concrete algorithm in this module (ModifiedFNV32); the
// interface exists so the filter format can record a hash scheme id and
// later formats can dispatch across schemes.
type Hasher32 interface {
	// Append mixes p into the accumulator, byte by byte in order. It may be
	// called any number of times; the effect equals one call with the
	// concatenation. An empty p is a no-op. Append never fails.
	Append(p []byte)

	// Reset restores the accumulator to the offset basis, discarding all
	// previously appended data. Idempotent.
	Reset()

	// CurrentHash finalizes the accumulator, stores the finalized value back
	// as the new accumulator, and returns it. Repeated calls re-finalize;
	// see the package doc for why this mutating peek is a contract.
	CurrentHash() uint32

	// CurrentHashAndReset finalizes the accumulator, resets it to the offset
	// basis (not the finalized value), and returns the finalized value.
	CurrentHashAndReset() uint32

	// SumCurrent writes the 4-byte little-endian encoding of CurrentHash
	// into dst[:4]. Returns ErrShortBuffer, touching neither dst nor the
	// accumulator, when len(dst) < SizeBytes32.
	SumCurrent(dst []byte) error

	// SumCurrentAndReset writes the 4-byte little-endian encoding of
	// CurrentHashAndReset into dst[:4]. Returns ErrShortBuffer, touching
	// neither dst nor the accumulator, when len(dst) < SizeBytes32.
	SumCurrentAndReset(dst []byte) error
}
