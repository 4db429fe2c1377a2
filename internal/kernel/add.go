package kernel

// AddCarry computes dst = a + b + carryIn limb-wise, writing into dst
// (which must be at least as long as the longer of a, b) and returning
// the carry out of the top limb. Mirrors the widen-then-extract-the-
// carry-bit idiom used throughout a CPU's 8-bit ALU, generalized from
// one register to a limb vector: each limb addition widens into the
// next-size-up accumulator and the carry is whatever spilled past the
// limb's bit width.
func AddCarry(dst, a, b []Limb, carryIn Limb) Limb {
	carry := uint64(carryIn)
	for i := range dst {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		dst[i] = Limb(sum)
		carry = sum >> LimbBits
	}
	return Limb(carry)
}

// SubBorrow computes dst = a - b - borrowIn limb-wise, writing into dst
// and returning the borrow out of the top limb (1 if the subtraction
// underflowed, 0 otherwise).
func SubBorrow(dst, a, b []Limb, borrowIn Limb) Limb {
	borrow := uint64(borrowIn)
	for i := range dst {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		diff := av - bv - borrow
		dst[i] = Limb(diff)
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return Limb(borrow)
}

// Negate computes dst = two's-complement negation of a (bitwise-not then
// add one), masked to width.
func Negate(dst, a []Limb, width int) {
	for i := range dst {
		var av Limb
		if i < len(a) {
			av = a[i]
		}
		dst[i] = ^av
	}
	MaskTop(dst, width)
	AddCarry(dst, dst, []Limb{1}, 0)
	MaskTop(dst, width)
}
