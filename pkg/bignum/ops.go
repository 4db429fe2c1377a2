package bignum

import (
	"github.com/oisee/mpint/internal/kernel"
)

// width picks the bit width a binary operation's result is clamped to:
// a fixed-width operand wins (both operands of a binary op are expected
// to share type), otherwise the result stays unbounded.
func (x Int) width(y Int) int {
	if x.Width > 0 {
		return x.Width
	}
	return y.Width
}

// expand grows limbs to n entries by appending zero limbs.
// Unbounded signed negative values are not sign-
// extended here — the source's own `_expand` zero-pads unconditionally,
// so a negative unbounded bignum only keeps its sign correct up to the
// limb count it already occupies; this mirrors the ported behavior
// rather than inventing a sign-aware growth rule the source lacks.
func expand(limbs []kernel.Limb, n int) []kernel.Limb {
	if len(limbs) >= n {
		out := make([]kernel.Limb, len(limbs))
		copy(out, limbs)
		return out
	}
	out := make([]kernel.Limb, n)
	copy(out, limbs)
	return out
}

func (x Int) finish(limbs []kernel.Limb, width int) Int {
	if width > 0 {
		kernel.MaskTop(limbs, width)
		return Int{Limbs: limbs, Signed: x.Signed, Width: width}
	}
	return Int{Limbs: kernel.Trim(limbs), Signed: x.Signed}
}

// Add returns x + y: expand to match lengths plus one
// limb of carry headroom for unbounded operands; fixed-width operands
// simply drop the final carry (two's-complement wraparound).
func (x Int) Add(y Int) Int {
	w := x.width(y)
	n := len(x.Limbs)
	if len(y.Limbs) > n {
		n = len(y.Limbs)
	}
	if w > 0 {
		n = kernel.NumLimbs(w)
	} else {
		n++
	}
	a, b := expand(x.Limbs, n), expand(y.Limbs, n)
	dst := make([]kernel.Limb, n)
	kernel.AddCarry(dst, a, b, 0)
	return x.finish(dst, w)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	w := x.width(y)
	n := len(x.Limbs)
	if len(y.Limbs) > n {
		n = len(y.Limbs)
	}
	if w > 0 {
		n = kernel.NumLimbs(w)
	} else {
		n++
	}
	a, b := expand(x.Limbs, n), expand(y.Limbs, n)
	dst := make([]kernel.Limb, n)
	kernel.SubBorrow(dst, a, b, 0)
	return x.finish(dst, w)
}

// Neg returns the two's-complement negation of x (bitwise-not, +1),
// masked to x's width.
func (x Int) Neg() Int {
	n := len(x.Limbs)
	if x.Width > 0 {
		n = kernel.NumLimbs(x.Width)
	}
	a := expand(x.Limbs, n)
	dst := make([]kernel.Limb, n)
	kernel.Negate(dst, a, x.Width)
	return x.finish(dst, x.Width)
}

// Mul returns x * y via schoolbook multiplication over the raw limb
// patterns — like the source's op_mult, there is no sign-magnitude
// extraction: two's-complement multiplication modulo 2^width is exact
// regardless of either operand's sign, so the fixed-width case needs no
// correction; an unbounded product simply grows to hold it.
func (x Int) Mul(y Int) Int {
	w := x.width(y)
	dst := make([]kernel.Limb, len(x.Limbs)+len(y.Limbs))
	kernel.Mul(dst, x.Limbs, y.Limbs)
	if w > 0 {
		dst = kernel.Resize(dst, kernel.NumLimbs(w))
	}
	return x.finish(dst, w)
}

// DivMod returns (x/y, x%y) via Knuth algorithm D over the raw limb
// patterns, exactly like the source's op_divrem: there is no sign
// handling, and division by zero returns (0, x) rather than erroring.
func (x Int) DivMod(y Int) (quotient, remainder Int) {
	w := x.width(y)
	q, r := kernel.DivMod(x.Limbs, y.Limbs)
	return x.finish(q, w), x.finish(r, w)
}

// Div returns x / y.
func (x Int) Div(y Int) Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x % y.
func (x Int) Mod(y Int) Int {
	_, r := x.DivMod(y)
	return r
}

// Pow returns x raised to the exp'th power by squaring.
func (x Int) Pow(exp uint64) Int {
	result := kernel.Pow(x.Limbs, exp, x.Width)
	return x.finish(result, x.Width)
}

// Shl returns x << shamt.
func (x Int) Shl(shamt int) Int {
	w := x.Width
	var n int
	if w > 0 {
		n = kernel.NumLimbs(w)
		shamt = reduceShift(shamt, w)
	} else {
		n = len(x.Limbs) + (shamt+kernel.LimbBits-1)/kernel.LimbBits + 1
	}
	dst := make([]kernel.Limb, n)
	kernel.ShiftLeft(dst, x.Limbs, shamt, w)
	return x.finish(dst, w)
}

// Shr returns x >> shamt, sign-extending when x is signed and negative.
func (x Int) Shr(shamt int) Int {
	w := x.Width
	if w == 0 {
		w = x.effectiveWidth()
	} else {
		shamt = reduceShift(shamt, w)
	}
	n := kernel.NumLimbs(w)
	dst := make([]kernel.Limb, n)
	kernel.ShiftRight(dst, x.Limbs, shamt, kernel.ShiftRightOpts{
		Signed: x.Signed,
		Width:  w,
	})
	return x.finish(dst, x.Width)
}

func reduceShift(shamt, width int) int {
	if width&(width-1) == 0 {
		return shamt & (width - 1)
	}
	m := shamt % width
	if m < 0 {
		m += width
	}
	return m
}

// And returns x & y.
func (x Int) And(y Int) Int {
	w := x.width(y)
	n := len(x.Limbs)
	if len(y.Limbs) > n {
		n = len(y.Limbs)
	}
	if w > 0 {
		n = kernel.NumLimbs(w)
	}
	dst := make([]kernel.Limb, n)
	kernel.And(dst, x.Limbs, y.Limbs, w)
	return x.finish(dst, w)
}

// Or returns x | y.
func (x Int) Or(y Int) Int {
	w := x.width(y)
	n := len(x.Limbs)
	if len(y.Limbs) > n {
		n = len(y.Limbs)
	}
	if w > 0 {
		n = kernel.NumLimbs(w)
	}
	dst := make([]kernel.Limb, n)
	kernel.Or(dst, x.Limbs, y.Limbs, w)
	return x.finish(dst, w)
}

// Xor returns x ^ y.
func (x Int) Xor(y Int) Int {
	w := x.width(y)
	n := len(x.Limbs)
	if len(y.Limbs) > n {
		n = len(y.Limbs)
	}
	if w > 0 {
		n = kernel.NumLimbs(w)
	}
	dst := make([]kernel.Limb, n)
	kernel.Xor(dst, x.Limbs, y.Limbs, w)
	return x.finish(dst, w)
}

// Not returns ^x, masked to x's width.
func (x Int) Not() Int {
	n := len(x.Limbs)
	if x.Width > 0 {
		n = kernel.NumLimbs(x.Width)
	}
	dst := make([]kernel.Limb, n)
	kernel.Not(dst, x.Limbs, x.Width)
	return x.finish(dst, x.Width)
}

// Cmp returns -1, 0 or 1 comparing x and y. When both are signed it
// compares sign bits first; otherwise it compares as
// unsigned magnitudes.
func (x Int) Cmp(y Int) int {
	if x.Signed && y.Signed {
		return kernel.CmpSigned(x.Limbs, y.Limbs, x.width(y))
	}
	return kernel.CmpUnsigned(x.Limbs, y.Limbs)
}

// Equal reports whether x and y represent the same bit pattern.
func (x Int) Equal(y Int) bool {
	return kernel.Equal(x.Limbs, y.Limbs)
}

// Less reports whether x < y under Cmp's rules.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// String renders x in base 10, with no sign prefix — like the ported
// to_string, negative two's-complement patterns print as their raw
// unsigned magnitude rather than a signed decimal.
func (x Int) String() string {
	return kernel.FormatRadix(x.Limbs, 10)
}

// Format renders x in the given radix (2, 10 or 16), "" otherwise.
func (x Int) Format(radix int) string {
	return kernel.FormatRadix(x.Limbs, radix)
}
