package x448

// cswap exchanges (x2, z2) with (x3, z3) when flag is 1 and leaves them
// alone when flag is 0. Both pairs are always read and written.
func cswap(x2, z2, x3, z3 *FieldElement, flag byte) {
	x2.cswap(x3, flag)
	z2.cswap(z3, flag)
}

// ladder computes the projective u-coordinate (x2 : z2) of k * u using the
// Montgomery ladder from RFC 7748 section 5. k must already be clamped.
//
// The loop runs for all 448 bits regardless of k and the only use of a key
// bit is as the flag of cswap. Swaps are deferred: the pair is swapped on the
// change of bit, and the final swap undoes the last pending one.
func ladder(x2, z2 *FieldElement, k *Scalar, u *FieldElement) {
	var (
		x1, x3, z3            FieldElement
		a, aa, b, bb, e, c, d FieldElement
		da, cb, t             FieldElement
		swap                  byte
	)

	x1 = *u
	*x2 = FieldElementOne
	*z2 = FieldElementZero
	x3 = x1
	z3 = FieldElementOne

	for i := scalarBits - 1; i >= 0; i-- {
		bit := k.bit(i)
		swap ^= bit
		cswap(x2, z2, &x3, &z3, swap)
		swap = bit

		a.add(x2, z2)
		aa.sqr(&a)
		b.sub(x2, z2)
		bb.sqr(&b)
		e.sub(&aa, &bb)
		c.add(&x3, &z3)
		d.sub(&x3, &z3)
		da.mul(&d, &a)
		cb.mul(&c, &b)

		// x3 = (DA + CB)^2
		x3.add(&da, &cb)
		x3.sqr(&x3)

		// z3 = x1 * (DA - CB)^2
		z3.sub(&da, &cb)
		z3.sqr(&z3)
		z3.mul(&x1, &z3)

		// x2 = AA * BB
		x2.mul(&aa, &bb)

		// z2 = E * (AA + a24 * E)
		t.mulSmall(&e, a24)
		t.add(&aa, &t)
		z2.mul(&e, &t)
	}

	cswap(x2, z2, &x3, &z3, swap)

	x1.clear()
	x3.clear()
	z3.clear()
	a.clear()
	aa.clear()
	b.clear()
	bb.clear()
	e.clear()
	c.clear()
	d.clear()
	da.clear()
	cb.clear()
	t.clear()
}

// scalarMult computes the affine u-coordinate of k * u, writing the canonical
// 56-byte encoding to out. k is clamped into a private copy; neither input is
// modified.
func scalarMult(out *[Size]byte, k *[Size]byte, u *[Size]byte) {
	var (
		s          Scalar
		pt, x2, z2 FieldElement
		zInv       FieldElement
	)

	s = Scalar(*k)
	s.clamp()
	pt.setBytes(u)

	ladder(&x2, &z2, &s, &pt)

	zInv.inv(&z2)
	x2.mul(&x2, &zInv)
	x2.getBytes(out)

	s.clear()
	x2.clear()
	z2.clear()
	zInv.clear()
}
