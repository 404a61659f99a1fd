package bloom

import "math"

// BestMBitsV1 returns the optimal bitset size in bits for holding capacity
// elements at the target false positive rate:
//
//	m = ceil(-(n * ln p) / (ln 2)^2)
//
// The caller validates capacity > 0 and 0 < errorRate < 1 (CheckSizingV1).
func BestMBitsV1(capacity uint64, errorRate float64) uint64 {
	return uint64(math.Ceil(-(float64(capacity) * math.Log(errorRate)) / (math.Ln2 * math.Ln2)))
}

// BestKV1 returns the optimal number of probe positions for capacity
// elements in an mBits-bit filter:
//
//	k = round((m/n) * ln 2)
//
// clamped to [1, 255] so it fits the header's uint8 field.
func BestKV1(capacity uint64, mBits uint64) uint8 {
	k := math.Round(float64(mBits) / float64(capacity) * math.Ln2)
	if k < 1 {
		return 1
	}
	if k > 255 {
		return 255
	}
	return uint8(k)
}

// CheckSizingV1 validates the sizing inputs for InitV1.
func CheckSizingV1(capacity uint64, errorRate float64) error {
	if capacity == 0 {
		return ErrBadCapacity
	}
	if !(errorRate > 0 && errorRate < 1) {
		return ErrBadErrorRate
	}
	return nil
}

// MBitsSafeCast returns mBits as uint32, or 0 if it is not safe to downcast.
func MBitsSafeCast(mBits64 uint64) uint32 {
	if mBits64 == 0 || mBits64 > uint64(^uint32(0)) {
		return 0
	}
	return uint32(mBits64)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return (mBits + 7) / 8
}

// RegionBytesV1 returns the required byte length for a filter region given
// mBits:
//
//	HeaderBytesV1 + ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(BitsetBytesV1(mBits))
}
