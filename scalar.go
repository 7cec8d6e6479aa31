package x448

// scalarBits is the bit length of a clamped X448 scalar.
const scalarBits = 448

// Scalar is a 56-byte little-endian X448 scalar.
type Scalar [Size]byte

// clamp applies the X448 decoding rules to s: the two least-significant bits
// are cleared and the most-significant bit is set. Clamping an already
// clamped scalar leaves it unchanged.
func (s *Scalar) clamp() {
	s[0] &= 252
	s[Size-1] |= 128
}

// bit returns bit i of s as 0 or 1. The index is public.
func (s *Scalar) bit(i int) byte {
	return (s[i>>3] >> uint(i&7)) & 1
}

// clear clears a scalar to prevent leaking sensitive information
func (s *Scalar) clear() {
	memclear(s[:])
}
