package bloom

import (
	"github.com/DeLoooping/BloomFilter.NetCore/hashes"
)

// Domain-separation bytes for the two halves of the double-hash pair.
const (
	probeDomainH1V1 = 0xB1
	probeDomainH2V1 = 0xB2
)

// InitV1 initializes a region with a HeaderV1 sized for capacity elements at
// the target false positive rate.
//
// The caller must allocate region with at least
// RegionBytesV1(MBitsSafeCast(BestMBitsV1(capacity, errorRate))) bytes.
func InitV1(region []byte, hasher hashes.Hasher32, capacity uint64, errorRate float64) error {
	if err := CheckSizingV1(capacity, errorRate); err != nil {
		return err
	}
	mBits64 := BestMBitsV1(capacity, errorRate)
	mBits := MBitsSafeCast(mBits64)
	if mBits == 0 {
		return ErrMBitsOverflow
	}
	k := BestKV1(capacity, mBits64)

	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// Ensure clean initialization even if region is reused.
	clear(region[:need])

	return EncodeHeaderV1(region, hasher, HeaderV1{
		BitOrder:   BitOrderLSB0,
		K:          k,
		HashScheme: HashSchemeModifiedFNV32,
		MBits:      mBits,
		NInserted:  0,
	})
}

// InsertV1 inserts elem into the filter and increments NInserted in the
// header. elem may be any byte sequence, including empty.
func InsertV1(region []byte, hasher hashes.Hasher32, elem []byte) error {
	h, ok, err := DecodeHeaderV1(region, hasher)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}

	bitset, err := bitsetV1(region, h.MBits)
	if err != nil {
		return err
	}

	h1, h2 := probePairV1(hasher, elem)
	setBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2)

	// Update optional counter.
	h.NInserted++
	return EncodeHeaderV1(region, hasher, h)
}

// MaybeContainsV1 checks membership for elem.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, hasher hashes.Hasher32, elem []byte) (bool, error) {
	h, ok, err := DecodeHeaderV1(region, hasher)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrNotInitialized
	}

	bitset, err := bitsetV1(region, h.MBits)
	if err != nil {
		return false, err
	}

	h1, h2 := probePairV1(hasher, elem)
	return testBitsLSB0(bitset, uint64(h.MBits), h.K, h1, h2), nil
}

func bitsetV1(region []byte, mBits uint32) ([]byte, error) {
	end := RegionBytesV1(mBits)
	if uint64(len(region)) < end {
		return nil, ErrBadRegionSize
	}
	return region[HeaderBytesV1:end], nil
}

// probePairV1 derives the double-hash pair for elem:
//
//	h1 = H( 0xB1 || elem )
//	h2 = H( 0xB2 || elem ), coerced to nonzero
//
// The hasher is left reset.
func probePairV1(hasher hashes.Hasher32, elem []byte) (h1 uint32, h2 uint32) {
	hasher.Reset()
	hasher.Append([]byte{probeDomainH1V1})
	hasher.Append(elem)
	h1 = hasher.CurrentHashAndReset()

	hasher.Append([]byte{probeDomainH2V1})
	hasher.Append(elem)
	h2 = hasher.CurrentHashAndReset()
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

func setBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint32) {
	for i := uint64(0); i < uint64(k); i++ {
		j := (uint64(h1) + i*uint64(h2)) % mBits
		byteIdx := j >> 3
		bit := uint8(j & 7)
		bitset[byteIdx] |= (1 << bit)
	}
}

func testBitsLSB0(bitset []byte, mBits uint64, k uint8, h1, h2 uint32) bool {
	for i := uint64(0); i < uint64(k); i++ {
		j := (uint64(h1) + i*uint64(h2)) % mBits
		byteIdx := j >> 3
		bit := uint8(j & 7)
		if (bitset[byteIdx] & (1 << bit)) == 0 {
			return false
		}
	}
	return true
}
