package wideint

import "github.com/oisee/mpint/internal/kernel"

// Add returns x + y, discarding any carry out of the top limb — fixed-
// width wraparound.
func (x Int[W, S]) Add(y Int[W, S]) Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.AddCarry(dst, x.Limbs, y.Limbs, 0)
	kernel.MaskTop(dst, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Sub returns x - y.
func (x Int[W, S]) Sub(y Int[W, S]) Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.SubBorrow(dst, x.Limbs, y.Limbs, 0)
	kernel.MaskTop(dst, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Neg returns the two's-complement negation of x.
func (x Int[W, S]) Neg() Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.Negate(dst, x.Limbs, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Mul returns x * y modulo 2^W — schoolbook multiply over the raw limb
// pattern, exactly like the source's op_mult, with no sign-magnitude
// extraction since two's-complement multiply mod 2^W is sign-agnostic.
func (x Int[W, S]) Mul(y Int[W, S]) Int[W, S] {
	n := numLimbs[W]()
	scratch := make([]kernel.Limb, 2*n)
	kernel.Mul(scratch, x.Limbs, y.Limbs)
	dst := kernel.Resize(scratch, n)
	kernel.MaskTop(dst, width[W]())
	return Int[W, S]{Limbs: dst}
}

// DivMod returns (x/y, x%y) via Knuth algorithm D over the raw limb
// pattern, with no sign handling (matching the source's op_divrem);
// division by zero returns (0, x).
func (x Int[W, S]) DivMod(y Int[W, S]) (quotient, remainder Int[W, S]) {
	q, r := kernel.DivMod(x.Limbs, y.Limbs)
	n := numLimbs[W]()
	qOut := kernel.Resize(q, n)
	rOut := kernel.Resize(r, n)
	kernel.MaskTop(qOut, width[W]())
	kernel.MaskTop(rOut, width[W]())
	return Int[W, S]{Limbs: qOut}, Int[W, S]{Limbs: rOut}
}

// Div returns x / y.
func (x Int[W, S]) Div(y Int[W, S]) Int[W, S] {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x % y.
func (x Int[W, S]) Mod(y Int[W, S]) Int[W, S] {
	_, r := x.DivMod(y)
	return r
}

// Pow returns x raised to the exp'th power by squaring, wrapping modulo
// 2^W.
func (x Int[W, S]) Pow(exp uint64) Int[W, S] {
	result := kernel.Pow(x.Limbs, exp, width[W]())
	out := kernel.Resize(result, numLimbs[W]())
	return Int[W, S]{Limbs: out}
}

// reduceShift reduces a shift amount modulo W, using a bitmask AND when
// W is a power of two.
func reduceShift(shamt, w int) int {
	if w&(w-1) == 0 {
		return shamt & (w - 1)
	}
	m := shamt % w
	if m < 0 {
		m += w
	}
	return m
}

// Shl returns x << shamt, shamt reduced modulo W.
func (x Int[W, S]) Shl(shamt int) Int[W, S] {
	w := width[W]()
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.ShiftLeft(dst, x.Limbs, reduceShift(shamt, w), w)
	return Int[W, S]{Limbs: dst}
}

// Shr returns x >> shamt, sign-extending when S is Signed and x is
// negative.
func (x Int[W, S]) Shr(shamt int) Int[W, S] {
	w := width[W]()
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.ShiftRight(dst, x.Limbs, reduceShift(shamt, w), kernel.ShiftRightOpts{
		Signed: x.Signed(),
		Width:  w,
	})
	return Int[W, S]{Limbs: dst}
}

// And returns x & y.
func (x Int[W, S]) And(y Int[W, S]) Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.And(dst, x.Limbs, y.Limbs, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Or returns x | y.
func (x Int[W, S]) Or(y Int[W, S]) Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.Or(dst, x.Limbs, y.Limbs, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Xor returns x ^ y.
func (x Int[W, S]) Xor(y Int[W, S]) Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.Xor(dst, x.Limbs, y.Limbs, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Not returns ^x.
func (x Int[W, S]) Not() Int[W, S] {
	dst := make([]kernel.Limb, numLimbs[W]())
	kernel.Not(dst, x.Limbs, width[W]())
	return Int[W, S]{Limbs: dst}
}

// Cmp returns -1, 0 or 1 comparing x and y, sign-bit-first when S is
// Signed.
func (x Int[W, S]) Cmp(y Int[W, S]) int {
	if x.Signed() {
		return kernel.CmpSigned(x.Limbs, y.Limbs, width[W]())
	}
	return kernel.CmpUnsigned(x.Limbs, y.Limbs)
}

// Equal reports whether x and y hold the same bit pattern.
func (x Int[W, S]) Equal(y Int[W, S]) bool { return kernel.Equal(x.Limbs, y.Limbs) }

// Less reports whether x < y under Cmp's rules.
func (x Int[W, S]) Less(y Int[W, S]) bool { return x.Cmp(y) < 0 }

// String renders x in base 10 with no sign prefix, like the ported
// to_string.
func (x Int[W, S]) String() string { return kernel.FormatRadix(x.Limbs, 10) }

// Format renders x in the given radix (2, 10 or 16), "" otherwise.
func (x Int[W, S]) Format(radix int) string { return kernel.FormatRadix(x.Limbs, radix) }

// Parse parses text (optional "0b"/"0x" prefix auto-detects radix) into
// a width-W integer; ok is false when the digits could not be fully
// consumed.
func Parse[W Width, S Signedness](s string, radix int) (result Int[W, S], ok bool) {
	limbs, ok := kernel.ParseRadix(s, radix)
	out := kernel.Resize(limbs, numLimbs[W]())
	kernel.MaskTop(out, width[W]())
	return Int[W, S]{Limbs: out}, ok
}
