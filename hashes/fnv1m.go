package hashes

// ModifiedFNV32 is a streaming modified FNV-1 accumulator. The zero value is
// NOT ready for use; construct with NewModifiedFNV32 or call Reset first.
type ModifiedFNV32 struct {
	current uint32
}

var _ Hasher32 = (*ModifiedFNV32)(nil)

// NewModifiedFNV32 returns an accumulator initialized to the offset basis.
func NewModifiedFNV32() *ModifiedFNV32 {
	return &ModifiedFNV32{current: Offset32}
}

// Append mixes p into the accumulator: current = (current ^ b) * Prime32 for
// each byte b in order. The multiply wraps modulo 2^32; that wrap is part of
// the algorithm, not an overflow condition.
func (h *ModifiedFNV32) Append(p []byte) {
	current := h.current
	for _, b := range p {
		current = (current ^ uint32(b)) * Prime32
	}
	h.current = current
}

// Reset restores the accumulator to the offset basis.
func (h *ModifiedFNV32) Reset() {
	h.current = Offset32
}

// CurrentHash finalizes the accumulator and returns the result. The
// finalized value also REPLACES the stored accumulator, so a second call
// with no intervening Append returns the finalization of the first result,
// not the same value. Use CurrentHashAndReset when reusing the accumulator
// for an unrelated hash.
func (h *ModifiedFNV32) CurrentHash() uint32 {
	h.current = avalanche32(h.current)
	return h.current
}

// CurrentHashAndReset finalizes the accumulator, returns the result, and
// resets the accumulator to the offset basis.
func (h *ModifiedFNV32) CurrentHashAndReset() uint32 {
	sum := avalanche32(h.current)
	h.current = Offset32
	return sum
}

// SumCurrent writes the little-endian bytes of CurrentHash into dst[:4].
//
// Returns ErrShortBuffer when len(dst) < SizeBytes32; neither dst nor the
// accumulator is modified in that case.
func (h *ModifiedFNV32) SumCurrent(dst []byte) error {
	if len(dst) < SizeBytes32 {
		return ErrShortBuffer
	}
	writeU32LE(dst, h.CurrentHash())
	return nil
}

// SumCurrentAndReset writes the little-endian bytes of CurrentHashAndReset
// into dst[:4].
//
// Returns ErrShortBuffer when len(dst) < SizeBytes32; neither dst nor the
// accumulator is modified in that case.
func (h *ModifiedFNV32) SumCurrentAndReset(dst []byte) error {
	if len(dst) < SizeBytes32 {
		return ErrShortBuffer
	}
	writeU32LE(dst, h.CurrentHashAndReset())
	return nil
}

// HashBytes32 is the one-shot form: the hash of p computed over a fresh
// accumulator, with no persistent state.
func HashBytes32(p []byte) uint32 {
	current := Offset32
	for _, b := range p {
		current = (current ^ uint32(b)) * Prime32
	}
	return avalanche32(current)
}

// avalanche32 is the finalization mix. The shift/add/xor sequence and its
// order are fixed by the serialized filter format; all arithmetic wraps
// modulo 2^32.
func avalanche32(x uint32) uint32 {
	x += x << 13
	x ^= x >> 7
	x += x << 3
	x ^= x >> 17
	x += x << 5
	return x
}
