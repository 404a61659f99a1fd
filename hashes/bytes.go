package hashes

import "encoding/binary"

func writeU32LE(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
