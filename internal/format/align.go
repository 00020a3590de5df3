package format

// Alignment utilities. Sections are padded to 16-byte boundaries and record
// payloads to 4-byte boundaries, always with the 0xFF fill byte.

// Align4 returns n aligned up to the next 4-byte boundary.
func Align4(n int) int {
	return (n + RecordAlignment - 1) &^ (RecordAlignment - 1)
}

// Align16 returns n aligned up to the next 16-byte boundary.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n int) int {
	return (n + SectionAlignment - 1) &^ (SectionAlignment - 1)
}

// Pad appends fill bytes to dst until its length is a multiple of alignment.
func Pad(dst []byte, alignment int, fill byte) []byte {
	for len(dst)%alignment != 0 {
		dst = append(dst, fill)
	}
	return dst
}
