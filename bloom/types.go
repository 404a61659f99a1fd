package bloom

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "BLF1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0

	// HashSchemeModifiedFNV32 identifies the modified FNV-1 32-bit scheme
	// implemented by hashes.ModifiedFNV32.
	HashSchemeModifiedFNV32 uint8 = 1
)

var (
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")

	ErrBadMagic      = errors.New("bloom: header magic invalid")
	ErrBadVersion    = errors.New("bloom: header version invalid")
	ErrBadBitOrder   = errors.New("bloom: header bitOrder unsupported")
	ErrBadK          = errors.New("bloom: header k invalid")
	ErrBadMBits      = errors.New("bloom: header mBits invalid")
	ErrBadHashScheme = errors.New("bloom: header hash scheme unsupported")
	ErrBadChecksum   = errors.New("bloom: header checksum mismatch")

	ErrBadCapacity  = errors.New("bloom: capacity must be nonzero")
	ErrBadErrorRate = errors.New("bloom: error rate must be in (0,1)")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

type HeaderV1 struct {
	BitOrder   uint8
	K          uint8
	HashScheme uint8
	MBits      uint32
	NInserted  uint32
}
