package x448

import (
	"math/big"
)

// Integer is the narrow view of an arbitrary-precision integer that
// ScalarMultInt needs: a fixed-length little-endian byte export and the
// matching import. Any big-integer type can take part by implementing it.
type Integer interface {
	// ExportLE writes the low len(buf) bytes of the value into buf,
	// least-significant byte first. Bytes above the value's length are zero.
	ExportLE(buf []byte)

	// ImportLE sets the value from buf, least-significant byte first.
	ImportLE(buf []byte)
}

// ScalarMultInt is ScalarMult over Integer values: 56 bytes of scalar and
// point are exported, multiplied, and the result is imported into out.
func ScalarMultInt(out, scalar, point Integer) {
	var k, u, r [Size]byte
	scalar.ExportLE(k[:])
	point.ExportLE(u[:])

	ScalarMult(&r, &k, &u)
	out.ImportLE(r[:])

	memclear(k[:])
	memclear(r[:])
}

// BigInt adapts a *big.Int to Integer. Only the magnitude is exported; the
// sign is ignored.
type BigInt struct {
	*big.Int
}

// NewBigInt wraps x, allocating a zero value if x is nil.
func NewBigInt(x *big.Int) BigInt {
	if x == nil {
		x = new(big.Int)
	}
	return BigInt{Int: x}
}

// ExportLE writes the low len(buf) bytes of |b| into buf, little-endian.
func (b BigInt) ExportLE(buf []byte) {
	be := b.Int.Bytes()
	for i := range buf {
		if i < len(be) {
			buf[i] = be[len(be)-1-i]
		} else {
			buf[i] = 0
		}
	}
	memclear(be)
}

// ImportLE sets b from the little-endian bytes in buf.
func (b BigInt) ImportLE(buf []byte) {
	be := make([]byte, len(buf))
	for i := range buf {
		be[len(be)-1-i] = buf[i]
	}
	b.Int.SetBytes(be)
	memclear(be)
}
