package hashes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Golden values come from an independent reference implementation of the
// documented algorithm (see refHash32 below, cross-checked by hand for the
// short inputs).
const (
	emptyHash      uint32 = 0x5902879e // avalanche32(Offset32)
	emptyHashAgain uint32 = 0xa8422370 // avalanche32(avalanche32(Offset32))
	abcHash        uint32 = 0x02062503
	helloHash      uint32 = 0xeb22d089
	helloWorldHash uint32 = 0xe85560f2
)

// refHash32 recomputes the algorithm in uint64 with explicit masking, so the
// production uint32 wraparound is checked against independent arithmetic.
func refHash32(p []byte) uint32 {
	const mask = 0xFFFFFFFF
	x := uint64(Offset32)
	for _, b := range p {
		x = ((x ^ uint64(b)) * uint64(Prime32)) & mask
	}
	x = (x + x<<13) & mask
	x ^= x >> 7
	x = (x + x<<3) & mask
	x ^= x >> 17
	x = (x + x<<5) & mask
	return uint32(x)
}

// longInput returns a deterministic multi-hundred-byte sequence that drives
// the prime multiply through many wraps.
func longInput() []byte {
	p := make([]byte, 512)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}

func TestHashBytes32GoldenVectors(t *testing.T) {
	require.Equal(t, emptyHash, HashBytes32(nil))
	require.Equal(t, emptyHash, HashBytes32([]byte{}))
	require.Equal(t, abcHash, HashBytes32([]byte("abc")))
	require.Equal(t, helloHash, HashBytes32([]byte("hello")))
	require.Equal(t, helloWorldHash, HashBytes32([]byte("hello world")))
	require.Equal(t, uint32(0x9edd7ac5), HashBytes32(longInput()))
}

func TestHashBytes32Deterministic(t *testing.T) {
	for _, p := range [][]byte{nil, []byte("a"), []byte("hello world"), longInput()} {
		require.Equal(t, HashBytes32(p), HashBytes32(p))
	}
}

func TestHashBytes32MatchesReference(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0xFF},
		[]byte("abc"),
		[]byte("hello world"),
		longInput(),
	}
	for _, p := range inputs {
		require.Equal(t, refHash32(p), HashBytes32(p))
	}
}

func TestAppendChunkInvariance(t *testing.T) {
	p := longInput()
	want := HashBytes32(p)

	h := NewModifiedFNV32()
	for _, chunk := range [][]byte{p[:1], p[1:7], p[7:7], p[7:100], p[100:]} {
		h.Append(chunk)
	}
	require.Equal(t, want, h.CurrentHashAndReset())

	// Every two-way split agrees with the one-shot value.
	for cut := 0; cut <= len(p); cut += 31 {
		h.Append(p[:cut])
		h.Append(p[cut:])
		require.Equal(t, want, h.CurrentHashAndReset())
	}

	// Byte-at-a-time agrees too.
	for i := range p {
		h.Append(p[i : i+1])
	}
	require.Equal(t, want, h.CurrentHashAndReset())
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append([]byte("abc"))
	h.Append(nil)
	h.Append([]byte{})
	require.Equal(t, abcHash, h.CurrentHashAndReset())
}

func TestCurrentHashPeekMutates(t *testing.T) {
	h := NewModifiedFNV32()
	first := h.CurrentHash()
	second := h.CurrentHash()
	require.Equal(t, emptyHash, first)
	require.Equal(t, emptyHashAgain, second)
	require.NotEqual(t, first, second)
}

func TestCurrentHashThenAppendContinuesFromFinalized(t *testing.T) {
	// The peek stores the finalized value back, so a subsequent Append mixes
	// into that value rather than the raw accumulator.
	h := NewModifiedFNV32()
	h.Append([]byte("abc"))
	require.Equal(t, abcHash, h.CurrentHash())
	h.Append([]byte("d"))
	require.Equal(t, uint32(3540010517), h.CurrentHashAndReset())
}

func TestCurrentHashAndResetRestoresOffsetBasis(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append([]byte("abc"))
	require.Equal(t, abcHash, h.CurrentHashAndReset())

	// The accumulator is back at the offset basis, not the finalized value.
	require.Equal(t, emptyHash, h.CurrentHashAndReset())
}

func TestResetDiscardsAppendedData(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append(longInput())
	h.Reset()
	h.Reset() // idempotent
	require.Equal(t, HashBytes32(nil), h.CurrentHashAndReset())
}

func TestWriteU32LittleEndian(t *testing.T) {
	dst := make([]byte, SizeBytes32)
	writeU32LE(dst, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, dst)
}

func TestSumCurrentLittleEndian(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append([]byte("hello"))

	// helloHash = 0xeb22d089, little-endian.
	dst := make([]byte, SizeBytes32)
	require.NoError(t, h.SumCurrent(dst))
	require.Equal(t, []byte{0x89, 0xd0, 0x22, 0xeb}, dst)

	// SumCurrent shares the peek semantics: the accumulator now holds the
	// finalized value.
	require.Equal(t, avalanche32Ref(helloHash), h.CurrentHashAndReset())
}

func TestSumCurrentAndReset(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append([]byte("hello"))

	dst := make([]byte, SizeBytes32)
	require.NoError(t, h.SumCurrentAndReset(dst))
	require.Equal(t, []byte{0x89, 0xd0, 0x22, 0xeb}, dst)

	require.Equal(t, emptyHash, h.CurrentHashAndReset())
}

func TestSumCurrentShortBuffer(t *testing.T) {
	h := NewModifiedFNV32()
	h.Append([]byte("abc"))

	for _, n := range []int{0, 1, 3} {
		dst := make([]byte, n)
		require.ErrorIs(t, h.SumCurrent(dst), ErrShortBuffer)
		require.ErrorIs(t, h.SumCurrentAndReset(dst), ErrShortBuffer)
	}

	// A failed sum leaves the accumulator untouched.
	require.Equal(t, abcHash, h.CurrentHashAndReset())
}

// avalanche32Ref mirrors the finalizer in independent uint64 arithmetic.
func avalanche32Ref(v uint32) uint32 {
	const mask = 0xFFFFFFFF
	x := uint64(v)
	x = (x + x<<13) & mask
	x ^= x >> 7
	x = (x + x<<3) & mask
	x ^= x >> 17
	x = (x + x<<5) & mask
	return uint32(x)
}

func BenchmarkHashBytes32(b *testing.B) {
	p := longInput()
	b.SetBytes(int64(len(p)))
	for i := 0; i < b.N; i++ {
		_ = HashBytes32(p)
	}
}
