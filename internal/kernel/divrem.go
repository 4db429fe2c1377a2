package kernel

// DivMod implements Knuth's algorithm D over 32-bit limbs (ported
// structurally from the reference bignum library's op_divrem, itself
// derived from Hacker's Delight / Knuth). It returns freshly allocated
// quotient and remainder limb slices.
//
// Division by zero and a divisor wider than the dividend both take the
// same fast path: quotient = 0, remainder = dividend — division is a
// total operation here, never an error.
func DivMod(u, v []Limb) (quotient, remainder []Limb) {
	m := trimmedLen(u)
	n := trimmedLen(v)

	if m < n || n == 0 || v[n-1] == 0 {
		q := make([]Limb, len(u))
		r := make([]Limb, len(u))
		copy(r, u)
		return q, r
	}
	if m == 0 {
		return make([]Limb, len(u)), make([]Limb, len(u))
	}

	q := make([]Limb, len(u))
	r := make([]Limb, len(u))

	if n == 1 {
		divModSingle(u[:m], v[0], q, r)
		return q, r
	}

	divModKnuth(u[:m], v[:n], q, r)
	return q, r
}

// divModSingle handles a one-limb divisor with a simple running
// remainder.
func divModSingle(u []Limb, d Limb, q, r []Limb) {
	var k uint64
	for j := len(u) - 1; j >= 0; j-- {
		cur := k<<LimbBits | uint64(u[j])
		q[j] = Limb(cur / uint64(d))
		k = cur - uint64(q[j])*uint64(d)
	}
	r[0] = Limb(k)
}

// divModKnuth implements the general case (n >= 2): normalize, then the
// qhat-estimate / multiply-and-subtract / add-back-correction main loop,
// then denormalize the remainder.
func divModKnuth(u, v []Limb, q, r []Limb) {
	m, n := len(u), len(v)
	const b = uint64(1) << LimbBits

	s := CLZ32(v[n-1])

	vn := make([]Limb, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = shl(v[i], s) | shrWordSafe(v[i-1], LimbBits-s)
	}
	vn[0] = shl(v[0], s)

	un := make([]Limb, m+1)
	un[m] = shrWordSafe(u[m-1], LimbBits-s)
	for i := m - 1; i > 0; i-- {
		un[i] = shl(u[i], s) | shrWordSafe(u[i-1], LimbBits-s)
	}
	un[0] = shl(u[0], s)

	for j := m - n; j >= 0; j-- {
		num := uint64(un[j+n])*b + uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])

		for qhat >= b || qhat*uint64(vn[n-2]) > b*rhat+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		var borrow uint64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - int64(borrow) - int64(Limb(p))
			un[i+j] = Limb(t)
			borrow = (p >> LimbBits) - uint64(t>>LimbBits)
		}
		top := int64(un[j+n]) - int64(borrow)
		un[j+n] = Limb(top)

		q[j] = Limb(qhat)
		if top < 0 {
			q[j]--
			var c uint64
			for i := 0; i < n; i++ {
				t := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = Limb(t)
				c = t >> LimbBits
			}
			un[j+n] = Limb(uint64(un[j+n]) + c)
		}
	}

	for i := 0; i < n; i++ {
		r[i] = shrWordSafe(un[i], s) | shlWordSafe(un[i+1], LimbBits-s)
	}
}

func shl(w Limb, s int) Limb {
	if s == 0 {
		return w
	}
	return w << uint(s)
}

// shrWordSafe computes w >> s, defining the result as 0 when s == LimbBits
// (a plain Go shift by the word size is well-defined and already yields 0,
// but the guard documents the edge case explicitly rather than rely on
// implicit wraparound). A shift of 0 is the identity, not 0 — callers rely on that when a divisor
// is already normalized (s == 0) and pass the bare shift amount through
// here rather than through shl/shiftedRightWord.
func shrWordSafe(w Limb, s int) Limb {
	if s <= 0 {
		return w
	}
	if s >= LimbBits {
		return 0
	}
	return w >> uint(s)
}

func shlWordSafe(w Limb, s int) Limb {
	if s <= 0 {
		return 0
	}
	if s >= LimbBits {
		return 0
	}
	return w << uint(s)
}
