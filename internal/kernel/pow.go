package kernel

// Pow raises a to the exp'th power via squaring: exp == 0 yields 1;
// otherwise x and y track the running base and result
// while exp is reduced a bit at a time down to 1, and the result is the
// final product x*y. width == 0 means the result
// grows unbounded (bignum); a nonzero width masks every intermediate
// product to that many bits (wideint wraparound).
func Pow(a []Limb, exp uint64, width int) []Limb {
	if exp == 0 {
		return []Limb{1}
	}

	size := len(a)
	if width > 0 {
		size = NumLimbs(width)
	} else {
		size = growLen(a, exp)
	}

	x := Resize(a, size)
	y := make([]Limb, size)
	y[0] = 1

	scratch := make([]Limb, 2*size)
	for exp > 1 {
		if exp&1 == 0 {
			exp >>= 1
		} else {
			mulInto(scratch, y, x, width)
			copy(y, scratch[:size])
			exp = (exp - 1) >> 1
		}
		mulInto(scratch, x, x, width)
		copy(x, scratch[:size])
	}

	mulInto(scratch, x, y, width)
	result := make([]Limb, size)
	copy(result, scratch[:size])
	if width > 0 {
		MaskTop(result, width)
	} else {
		result = Trim(result)
	}
	return result
}

func mulInto(scratch, a, b []Limb, width int) {
	for i := range scratch {
		scratch[i] = 0
	}
	Mul(scratch, a, b)
	if width > 0 {
		MaskTop(scratch[:len(scratch)/2], width)
	}
}

// growLen picks a limb count generous enough that repeated squaring for
// exp iterations cannot overflow before the final Trim, without pre-
// computing the exact bit length (bignum has no fixed width to clamp to).
func growLen(a []Limb, exp uint64) int {
	bits := BitLen(a)
	if bits == 0 {
		bits = 1
	}
	total := uint64(bits) * exp
	if total == 0 {
		total = uint64(LimbBits)
	}
	n := int((total + LimbBits - 1) / LimbBits)
	if n < len(a) {
		n = len(a)
	}
	return n + 1
}
