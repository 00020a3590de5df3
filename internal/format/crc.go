package format

import "hash/crc32"

// NameHash returns the 32-bit key hash of an encoded record name. The
// format uses the standard reflected CRC-32 (polynomial 0xEDB88320, initial
// register 0xFFFFFFFF, final complement), which is exactly what
// hash/crc32's IEEE table computes. The input is the name in the file's
// active text encoding, not necessarily UTF-8.
func NameHash(name []byte) uint32 {
	return crc32.ChecksumIEEE(name)
}
