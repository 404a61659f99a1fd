package bloom

import (
	"bytes"

	"github.com/DeLoooping/BloomFilter.NetCore/hashes"
)

// Header layout (32 bytes):
//
//	[0:4]   magic "BLF1"
//	[4]     version
//	[5]     bitOrder
//	[6]     k
//	[7]     hashScheme
//	[8:12]  mBits      (big-endian)
//	[12:16] nInserted  (big-endian)
//	[16:20] checksum   (little-endian streaming hash of bytes [0:16])
//	[20:32] reserved, zero

// DecodeHeaderV1 decodes a V1 header from region, verifying its checksum
// with hasher.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte, hasher hashes.Hasher32) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}

	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}

	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.BitOrder = region[5]
	h.K = region[6]
	h.HashScheme = region[7]
	h.MBits = readU32BE(region[8:12])
	h.NInserted = readU32BE(region[12:16])

	var sum [hashes.SizeBytes32]byte
	if err := headerChecksumV1(region[0:16], hasher, sum[:]); err != nil {
		return HeaderV1{}, false, err
	}
	if !bytes.Equal(sum[:], region[16:20]) {
		return HeaderV1{}, false, ErrBadChecksum
	}

	if h.BitOrder != BitOrderLSB0 {
		return HeaderV1{}, false, ErrBadBitOrder
	}
	if h.HashScheme != HashSchemeModifiedFNV32 {
		return HeaderV1{}, false, ErrBadHashScheme
	}
	if h.K == 0 {
		return HeaderV1{}, false, ErrBadK
	}
	if h.MBits == 0 {
		return HeaderV1{}, false, ErrBadMBits
	}

	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region, checksummed with hasher.
func EncodeHeaderV1(region []byte, hasher hashes.Hasher32, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.BitOrder != BitOrderLSB0 {
		return ErrBadBitOrder
	}
	if h.HashScheme != HashSchemeModifiedFNV32 {
		return ErrBadHashScheme
	}
	if h.K == 0 {
		return ErrBadK
	}
	if h.MBits == 0 {
		return ErrBadMBits
	}

	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	region[5] = h.BitOrder
	region[6] = h.K
	region[7] = h.HashScheme
	writeU32BE(region[8:12], h.MBits)
	writeU32BE(region[12:16], h.NInserted)
	if err := headerChecksumV1(region[0:16], hasher, region[16:20]); err != nil {
		return err
	}
	clear(region[20:HeaderBytesV1])
	return nil
}

// headerChecksumV1 writes the 4-byte little-endian streaming hash of fields
// into dst. The hasher is left reset.
func headerChecksumV1(fields []byte, hasher hashes.Hasher32, dst []byte) error {
	hasher.Reset()
	hasher.Append(fields)
	return hasher.SumCurrentAndReset(dst)
}
