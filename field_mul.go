package x448

// mul multiplies two field elements: r = a * b
//
// The 56x56 limb product is accumulated into 112 columns. Each column is at
// most 56*255*255 < 2^22, and folding the high half at most triples that, so
// the accumulator never comes close to overflowing a uint64.
func (r *FieldElement) mul(a, b *FieldElement) {
	var t [2 * fieldBytes]uint64

	for i := 0; i < fieldBytes; i++ {
		ai := uint64(a[i])
		for j := 0; j < fieldBytes; j++ {
			t[i+j] += ai * uint64(b[j])
		}
	}

	// [... hi lo] with 2^448 = 2^224 + 1: a column k >= 56 contributes at
	// k-56 and at k-28. Walking down from the top means anything pushed to
	// k-28 >= 56 is folded again later in the same loop.
	for k := 2*fieldBytes - 1; k >= fieldBytes; k-- {
		hi := t[k]
		t[k] = 0
		t[k-fieldBytes] += hi
		t[k-fieldHalf] += hi
	}

	var c uint64
	for i := 0; i < fieldBytes; i++ {
		c += t[i]
		r[i] = byte(c)
		c >>= 8
	}
	r.squeeze(c)
}

// sqr squares a field element: r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	r.mul(a, a)
}

// sqrN squares a field element n times: r = a^(2^n)
func (r *FieldElement) sqrN(a *FieldElement, n int) {
	r.sqr(a)
	for i := 1; i < n; i++ {
		r.sqr(r)
	}
}

// inv computes the modular inverse of a field element: r = a^(p-2) mod p
//
// p-2 = 2^448 - 2^224 - 3 is, from the top, 223 ones, a zero, 222 ones, a
// zero and a one. The chain builds e(k) = a^(2^k - 1) for k = 223 and
// k = 222 and stitches them together. The exponent is public, so the fixed
// schedule of 453 squarings and 13 multiplications leaks nothing about a.
// The inverse of zero comes out as zero.
func (r *FieldElement) inv(a *FieldElement) {
	var e2, e3, e6, e12, e24, e30, e48, e96, e192, e222, e223, t FieldElement

	e2.sqr(a)
	e2.mul(&e2, a)

	e3.sqr(&e2)
	e3.mul(&e3, a)

	e6.sqrN(&e3, 3)
	e6.mul(&e6, &e3)

	e12.sqrN(&e6, 6)
	e12.mul(&e12, &e6)

	e24.sqrN(&e12, 12)
	e24.mul(&e24, &e12)

	e30.sqrN(&e24, 6)
	e30.mul(&e30, &e6)

	e48.sqrN(&e24, 24)
	e48.mul(&e48, &e24)

	e96.sqrN(&e48, 48)
	e96.mul(&e96, &e48)

	e192.sqrN(&e96, 96)
	e192.mul(&e192, &e96)

	e222.sqrN(&e192, 30)
	e222.mul(&e222, &e30)

	e223.sqr(&e222)
	e223.mul(&e223, a)

	// 223 ones, then a zero
	t.sqr(&e223)
	// then 222 ones
	t.sqrN(&t, 222)
	t.mul(&t, &e222)
	// then "01"
	t.sqrN(&t, 2)
	r.mul(&t, a)
}
