package kernel

// And computes dst = a & b limb-wise over a virtual zero-padded view of
// the shorter operand, masked to width.
func And(dst, a, b []Limb, width int) {
	for i := range dst {
		dst[i] = limbAt(a, i) & limbAt(b, i)
	}
	MaskTop(dst, width)
}

// Or computes dst = a | b, masked to width.
func Or(dst, a, b []Limb, width int) {
	for i := range dst {
		dst[i] = limbAt(a, i) | limbAt(b, i)
	}
	MaskTop(dst, width)
}

// Xor computes dst = a ^ b, masked to width.
func Xor(dst, a, b []Limb, width int) {
	for i := range dst {
		dst[i] = limbAt(a, i) ^ limbAt(b, i)
	}
	MaskTop(dst, width)
}

// Not computes dst = ^a, masked to width.
func Not(dst, a []Limb, width int) {
	for i := range dst {
		dst[i] = ^limbAt(a, i)
	}
	MaskTop(dst, width)
}

func limbAt(limbs []Limb, i int) Limb {
	if i < len(limbs) {
		return limbs[i]
	}
	return 0
}
