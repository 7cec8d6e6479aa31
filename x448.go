// Package x448 implements the X448 function of RFC 7748: Diffie-Hellman scalar
// multiplication on the Montgomery curve curve448 over the prime field
// 2^448 - 2^224 - 1.
//
// The arithmetic is written from scratch and carries no secret-dependent
// branches, loop bounds or memory indices. Protection against cache and other
// micro-architectural side channels is not attempted beyond that.
package x448

import (
	"crypto/subtle"
	"errors"
)

// Size is the length in bytes of X448 scalars, points and results.
const Size = fieldBytes

var (
	// ErrInvalidLength is returned by X448 when the scalar or the point is not
	// exactly Size bytes long.
	ErrInvalidLength = errors.New("x448: scalar and point must be 56 bytes")

	// ErrLowOrderPoint is returned by X448 when the result is the all-zero
	// value, which happens when the point has small order.
	ErrLowOrderPoint = errors.New("x448: low order point, result is all zero")
)

// Basepoint is the canonical curve448 generator, u = 5.
var Basepoint = [Size]byte{5}

// basePoint is kept private so that changes to Basepoint cannot affect
// ScalarBaseMult.
var basePoint = [Size]byte{5}

// ScalarMult sets dst to the product scalar * point, where point is the
// u-coordinate of a point on curve448 or its twist.
//
// The scalar is clamped internally as RFC 7748 requires. The point is read as
// a full 448-bit little-endian integer; non-canonical values are reduced.
// ScalarMult never fails: an all-zero dst is a valid result for low-order
// points and checking for it is left to the caller. dst may alias scalar or
// point.
func ScalarMult(dst, scalar, point *[Size]byte) {
	var out [Size]byte
	scalarMult(&out, scalar, point)
	*dst = out
}

// ScalarBaseMult sets dst to the product scalar * Basepoint.
func ScalarBaseMult(dst, scalar *[Size]byte) {
	ScalarMult(dst, scalar, &basePoint)
}

// X448 returns the result of the scalar multiplication (scalar * point),
// according to RFC 7748, Section 5. scalar, point and the return value are
// slices of 56 bytes.
//
// Unlike ScalarMult, X448 returns ErrLowOrderPoint if the result is the
// all-zero value, as RFC 7748 Section 6.2 recommends for Diffie-Hellman.
func X448(scalar, point []byte) ([]byte, error) {
	if len(scalar) != Size || len(point) != Size {
		return nil, ErrInvalidLength
	}

	var k, u, out [Size]byte
	copy(k[:], scalar)
	copy(u[:], point)
	ScalarMult(&out, &k, &u)
	memclear(k[:])

	var zero [Size]byte
	if subtle.ConstantTimeCompare(out[:], zero[:]) == 1 {
		return nil, ErrLowOrderPoint
	}
	return out[:], nil
}
