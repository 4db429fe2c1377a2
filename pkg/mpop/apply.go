package mpop

import (
	"errors"
	"fmt"

	"github.com/oisee/mpint/pkg/bignum"
)

// ErrWrongArity reports a caller applying a unary op with two operands, or
// vice versa.
var ErrWrongArity = errors.New("mpop: wrong operand count for operation")

// ApplyBinary evaluates a binary operation over a and b. Shift amounts
// (Shl/Shr) and the Pow exponent are taken from b's low 64 bits: the
// count is an ordinary integer, not an operand of the same width.
func ApplyBinary(op OpCode, a, b bignum.Int) (bignum.Int, error) {
	if Catalog[op].Arity != 2 {
		return bignum.Int{}, fmt.Errorf("%w: %s is unary", ErrWrongArity, op)
	}
	switch op {
	case Add:
		return a.Add(b), nil
	case Sub:
		return a.Sub(b), nil
	case Mul:
		return a.Mul(b), nil
	case Div:
		return a.Div(b), nil
	case Mod:
		return a.Mod(b), nil
	case Pow:
		return a.Pow(shiftCount(b)), nil
	case Shl:
		return a.Shl(int(shiftCount(b))), nil
	case Shr:
		return a.Shr(int(shiftCount(b))), nil
	case And:
		return a.And(b), nil
	case Or:
		return a.Or(b), nil
	case Xor:
		return a.Xor(b), nil
	default:
		return bignum.Int{}, fmt.Errorf("mpop: %s is not implemented as ApplyBinary", op)
	}
}

// ApplyUnary evaluates a unary operation over a.
func ApplyUnary(op OpCode, a bignum.Int) (bignum.Int, error) {
	if Catalog[op].Arity != 1 {
		return bignum.Int{}, fmt.Errorf("%w: %s is binary", ErrWrongArity, op)
	}
	switch op {
	case Neg:
		return a.Neg(), nil
	case Not:
		return a.Not(), nil
	default:
		return bignum.Int{}, fmt.Errorf("mpop: %s is not implemented as ApplyUnary", op)
	}
}

// shiftCount extracts an operand's low 64 bits, for use as a shift amount
// or exponent where the right-hand operand is conceptually a plain integer
// rather than a same-width value.
func shiftCount(b bignum.Int) uint64 {
	if len(b.Limbs) == 0 {
		return 0
	}
	v := uint64(b.Limbs[0])
	if len(b.Limbs) > 1 {
		v |= uint64(b.Limbs[1]) << 32
	}
	return v
}
