package propcheck

import "fmt"

// Invariant is one algebraic property of bignum/wideint arithmetic,
// checked against a random Vector. Check returns ok=false and a
// human-readable detail when the property is falsified.
type Invariant struct {
	Name  string
	Check func(v Vector) (ok bool, detail string)
}

// Invariants is the seed set driving the random fuzzing in this package:
// algebraic properties checked against arbitrary bignum.Int operands,
// alongside (not shared with) the hand-picked worked examples in the
// pkg/bignum and pkg/wideint unit tests.
var Invariants = []Invariant{
	{Name: "add-commutes", Check: checkAddCommutes},
	{Name: "mul-commutes", Check: checkMulCommutes},
	{Name: "add-sub-inverse", Check: checkAddSubInverse},
	{Name: "and-commutes", Check: checkAndCommutes},
	{Name: "or-commutes", Check: checkOrCommutes},
	{Name: "xor-commutes", Check: checkXorCommutes},
	{Name: "xor-self-inverse", Check: checkXorSelfInverse},
	{Name: "double-negate", Check: checkDoubleNegate},
	{Name: "double-not", Check: checkDoubleNot},
	{Name: "divmod-reconstructs", Check: checkDivModReconstructs},
	{Name: "cmp-antisymmetric", Check: checkCmpAntisymmetric},
	{Name: "shift-by-width-wraps", Check: checkShiftByWidthWraps},
}

func checkAddCommutes(v Vector) (bool, string) {
	lhs, rhs := v.A.Add(v.B), v.B.Add(v.A)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a+b=%v, b+a=%v", lhs.Limbs, rhs.Limbs)
	}
	return true, ""
}

func checkMulCommutes(v Vector) (bool, string) {
	lhs, rhs := v.A.Mul(v.B), v.B.Mul(v.A)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a*b=%v, b*a=%v", lhs.Limbs, rhs.Limbs)
	}
	return true, ""
}

func checkAddSubInverse(v Vector) (bool, string) {
	got := v.A.Add(v.B).Sub(v.B)
	if v.Width > 0 {
		got = got.WithWidth(v.Width, v.Signed)
	}
	want := v.A
	if v.Width > 0 {
		want = want.WithWidth(v.Width, v.Signed)
	}
	if !got.Equal(want) {
		return false, fmt.Sprintf("(a+b)-b=%v, a=%v", got.Limbs, want.Limbs)
	}
	return true, ""
}

func checkAndCommutes(v Vector) (bool, string) {
	lhs, rhs := v.A.And(v.B), v.B.And(v.A)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a&b=%v, b&a=%v", lhs.Limbs, rhs.Limbs)
	}
	return true, ""
}

func checkOrCommutes(v Vector) (bool, string) {
	lhs, rhs := v.A.Or(v.B), v.B.Or(v.A)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a|b=%v, b|a=%v", lhs.Limbs, rhs.Limbs)
	}
	return true, ""
}

func checkXorCommutes(v Vector) (bool, string) {
	lhs, rhs := v.A.Xor(v.B), v.B.Xor(v.A)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a^b=%v, b^a=%v", lhs.Limbs, rhs.Limbs)
	}
	return true, ""
}

func checkXorSelfInverse(v Vector) (bool, string) {
	got := v.A.Xor(v.B).Xor(v.B)
	if !got.Equal(v.A) {
		return false, fmt.Sprintf("(a^b)^b=%v, a=%v", got.Limbs, v.A.Limbs)
	}
	return true, ""
}

func checkDoubleNegate(v Vector) (bool, string) {
	got := v.A.Neg().Neg()
	if !got.Equal(v.A) {
		return false, fmt.Sprintf("-(-a)=%v, a=%v", got.Limbs, v.A.Limbs)
	}
	return true, ""
}

func checkDoubleNot(v Vector) (bool, string) {
	got := v.A.Not().Not()
	if !got.Equal(v.A) {
		return false, fmt.Sprintf("~~a=%v, a=%v", got.Limbs, v.A.Limbs)
	}
	return true, ""
}

// checkDivModReconstructs verifies q*b+r == a for b != 0, the invariant
// division is defined in terms of.
func checkDivModReconstructs(v Vector) (bool, string) {
	if v.B.IsZero() {
		return true, "" // division-by-zero has its own defined (0, a) result, not this invariant
	}
	q, r := v.A.DivMod(v.B)
	got := q.Mul(v.B).Add(r)
	want := v.A
	if v.Width > 0 {
		got = got.WithWidth(v.Width, v.Signed)
		want = want.WithWidth(v.Width, v.Signed)
	}
	if !got.Equal(want) {
		return false, fmt.Sprintf("q*b+r=%v, a=%v", got.Limbs, want.Limbs)
	}
	return true, ""
}

func checkCmpAntisymmetric(v Vector) (bool, string) {
	lhs := v.A.Cmp(v.B)
	rhs := v.B.Cmp(v.A)
	if lhs != -rhs {
		return false, fmt.Sprintf("a.Cmp(b)=%d, b.Cmp(a)=%d", lhs, rhs)
	}
	return true, ""
}

// checkShiftByWidthWraps verifies the shift-amount-reduction
// rule: shifting by width+k behaves the same as shifting by k, for a
// fixed-width operand.
func checkShiftByWidthWraps(v Vector) (bool, string) {
	if v.Width == 0 {
		return true, "" // rule only applies to fixed-width operands
	}
	k := 3
	lhs := v.A.Shl(v.Width + k)
	rhs := v.A.Shl(k)
	if !lhs.Equal(rhs) {
		return false, fmt.Sprintf("a<<(width+%d)=%v, a<<%d=%v", k, lhs.Limbs, k, rhs.Limbs)
	}
	return true, ""
}
