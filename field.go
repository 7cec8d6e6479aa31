package x448

import (
	"crypto/subtle"
)

// FieldElement represents an element of the field modulo the curve448 prime
// p = 2^448 - 2^224 - 1.
//
// The element is stored as 56 little-endian radix-256 limbs. The
// representation is redundant: every 448-bit value is a valid element and
// denotes its residue mod p, so values in [p, 2^448) are accepted without
// reduction. Every arithmetic primitive leaves its output squeezed into 56
// bytes, which makes any output a valid input to the next operation.
type FieldElement [fieldBytes]byte

const (
	fieldBytes = 56

	// fieldHalf is the byte offset of 2^224, the middle term of p.
	fieldHalf = 28

	// a24 is (A - 2) / 4 for curve448, A = 156326.
	a24 = 39081
)

var (
	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{1}

	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// subBias holds the limbs of 2p with every limb at least 0xff, so a limb
	// of a + 2p - b can never go negative.
	subBias = func() (b [fieldBytes]uint64) {
		for i := range b {
			b[i] = 0x1fe
		}
		b[fieldHalf] = 0x1fc
		return
	}()
)

// setBytes loads a field element from 56 little-endian bytes. All 448 bits
// are kept; no masking or reduction takes place.
func (r *FieldElement) setBytes(b *[fieldBytes]byte) {
	*r = FieldElement(*b)
}

// getBytes writes the canonical (fully reduced) little-endian encoding of r.
func (r *FieldElement) getBytes(b *[fieldBytes]byte) {
	t := *r
	t.normalize()
	*b = [fieldBytes]byte(t)
}

// setInt sets a field element to a small integer value
func (r *FieldElement) setInt(a uint32) {
	*r = FieldElement{}
	r[0] = byte(a)
	r[1] = byte(a >> 8)
	r[2] = byte(a >> 16)
	r[3] = byte(a >> 24)
}

// squeeze folds a carry out of the top limb back into the element. Since
// 2^448 = 2^224 + 1 (mod p) the carry is added at byte 0 and at byte 28.
//
// The first pass can overflow by at most one. If it does, the remaining value
// is below carry*(2^224+1), so the second pass cannot overflow again. Both
// passes always run.
func (r *FieldElement) squeeze(carry uint64) {
	for pass := 0; pass < 2; pass++ {
		c := carry
		for i := 0; i < fieldHalf; i++ {
			c += uint64(r[i])
			r[i] = byte(c)
			c >>= 8
		}
		c += carry
		for i := fieldHalf; i < fieldBytes; i++ {
			c += uint64(r[i])
			r[i] = byte(c)
			c >>= 8
		}
		carry = c
	}
}

// add sets r = a + b
func (r *FieldElement) add(a, b *FieldElement) {
	var c uint64
	for i := 0; i < fieldBytes; i++ {
		c += uint64(a[i]) + uint64(b[i])
		r[i] = byte(c)
		c >>= 8
	}
	r.squeeze(c)
}

// sub sets r = a - b, computed as a + 2p - b.
func (r *FieldElement) sub(a, b *FieldElement) {
	var c uint64
	for i := 0; i < fieldBytes; i++ {
		c += uint64(a[i]) + subBias[i] - uint64(b[i])
		r[i] = byte(c)
		c >>= 8
	}
	r.squeeze(c)
}

// mulSmall sets r = a * k for a small constant k (k < 2^24).
func (r *FieldElement) mulSmall(a *FieldElement, k uint32) {
	var c uint64
	for i := 0; i < fieldBytes; i++ {
		c += uint64(a[i]) * uint64(k)
		r[i] = byte(c)
		c >>= 8
	}
	r.squeeze(c)
}

// normalize reduces r to its canonical representative in [0, p).
//
// A squeezed element is below 2^448 < 2p, so at most one subtraction of p is
// needed. r + (2^224 + 1) = r - p + 2^448 carries out of the top limb exactly
// when r >= p; the low 448 bits are then r - p. The choice is made with a
// mask.
func (r *FieldElement) normalize() {
	var t FieldElement
	c := uint64(1)
	for i := 0; i < fieldHalf; i++ {
		c += uint64(r[i])
		t[i] = byte(c)
		c >>= 8
	}
	c++
	for i := fieldHalf; i < fieldBytes; i++ {
		c += uint64(r[i])
		t[i] = byte(c)
		c >>= 8
	}
	r.cmov(&t, byte(c))
}

// cmov conditionally moves a field element. If flag is 1, r = a; if flag is
// 0, r is unchanged.
func (r *FieldElement) cmov(a *FieldElement, flag byte) {
	mask := -(flag & 1)
	for i := 0; i < fieldBytes; i++ {
		r[i] ^= mask & (r[i] ^ a[i])
	}
}

// cswap exchanges r and a if flag is 1 and leaves both alone if flag is 0.
// Both elements are read and written in either case.
func (r *FieldElement) cswap(a *FieldElement, flag byte) {
	mask := -(flag & 1)
	for i := 0; i < fieldBytes; i++ {
		t := mask & (r[i] ^ a[i])
		r[i] ^= t
		a[i] ^= t
	}
}

// equal reports whether a and r denote the same residue mod p.
func (r *FieldElement) equal(a *FieldElement) bool {
	x, y := *r, *a
	x.normalize()
	y.normalize()
	return subtle.ConstantTimeCompare(x[:], y[:]) == 1
}

// isZero reports whether r is zero mod p
func (r *FieldElement) isZero() bool {
	return r.equal(&FieldElementZero)
}

// clear clears a field element to prevent leaking sensitive information
func (r *FieldElement) clear() {
	memclear(r[:])
}

// memclear clears memory to prevent leaking sensitive information
func memclear(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
