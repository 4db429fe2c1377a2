// Package bignum implements a variable-width multi-precision integer:
// a little-endian sequence of 32-bit limbs that grows and contracts as
// operations demand, optionally clamped to a fixed bit width.
package bignum

import (
	"errors"
	"fmt"

	"github.com/oisee/mpint/internal/kernel"
)

// ErrMalformedText is returned by Parse when the input contains a digit
// sequence the chosen radix cannot fully consume: the accumulated value is
// still returned (matching the original's pass-through-to-strtoull
// behavior) but wrapped with an error so callers can choose to reject
// it instead of silently accepting a truncated parse.
var ErrMalformedText = errors.New("bignum: malformed digit sequence")

// Int is a signed or unsigned multi-precision integer. Width == 0 means
// unbounded: the limb count grows and contracts as operations demand.
// A nonzero Width clamps the top limb to Width mod 32 bits and pins the
// limb count at ceil(Width/32), exactly like a fixed-width wideint.Int
// but with the width carried at runtime instead of in the type.
//
// Int is value-typed: every operation here returns a new Int rather
// than mutating a receiver, so copies never alias limb storage.
type Int struct {
	Limbs  []kernel.Limb
	Signed bool
	Width  int
}

// Zero returns the signed or unsigned zero value with unbounded width.
func Zero(signed bool) Int {
	return Int{Limbs: []kernel.Limb{0}, Signed: signed}
}

// FromUint64 builds an unbounded-width Int from a uint64 magnitude.
func FromUint64(v uint64, signed bool) Int {
	return Int{
		Limbs:  kernel.Trim([]kernel.Limb{kernel.Limb(v), kernel.Limb(v >> 32)}),
		Signed: signed,
	}
}

// FromInt64 builds an unbounded-width signed Int from a native int64,
// storing negative values in their two-limb two's complement pattern.
func FromInt64(v int64) Int {
	return Int{
		Limbs:  kernel.Trim([]kernel.Limb{kernel.Limb(v), kernel.Limb(v >> 32)}),
		Signed: true,
	}
}

// FromLimbs copies limbs (little-endian) into a new unbounded-width Int.
func FromLimbs(limbs []kernel.Limb, signed bool) Int {
	cp := append([]kernel.Limb(nil), limbs...)
	return Int{Limbs: kernel.Trim(cp), Signed: signed}
}

// WithWidth returns a copy of x clamped to a fixed width: limb storage
// is resized to ceil(width/32) limbs and the top limb masked, following
// the width/signedness promotion rule (low bits copied
// verbatim, no sign extension on narrowing, high limbs zeroed).
func (x Int) WithWidth(width int, signed bool) Int {
	if width <= 0 {
		return Int{Limbs: kernel.Trim(append([]kernel.Limb(nil), x.Limbs...)), Signed: signed}
	}
	n := kernel.NumLimbs(width)
	out := kernel.Resize(x.Limbs, n)
	kernel.MaskTop(out, width)
	return Int{Limbs: out, Signed: signed, Width: width}
}

// Parse converts text into an Int. radix == 0 auto-detects a leading
// "0b"/"0x" prefix and otherwise defaults to base 10. Signedness is
// passed explicitly rather than inferred from a leading sign: the
// ported from_string never looked for one either, it only recognized
// radix prefixes, so s is always read as a non-negative digit string
// and the resulting bit pattern is reinterpreted under signed only for
// later operations (shift-right, comparison) to act on. Parse returns
// ErrMalformedText (wrapping the partial result) when the digit text
// could not be fully consumed.
func Parse(s string, radix int, signed bool, width int) (Int, error) {
	limbs, ok := kernel.ParseRadix(s, radix)
	result := Int{Limbs: kernel.Trim(limbs), Signed: signed}
	if width > 0 {
		result = result.WithWidth(width, signed)
	}
	if !ok {
		return result, fmt.Errorf("%w: %q", ErrMalformedText, s)
	}
	return result, nil
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return kernel.IsZero(x.Limbs)
}

// BitLen returns the number of bits needed to represent x's magnitude,
// 0 for zero.
func (x Int) BitLen() int {
	return kernel.BitLen(x.Limbs)
}

// SignBit reports whether x's sign bit is set under its declared width
// and signedness (always false when unsigned).
func (x Int) SignBit() bool {
	if !x.Signed {
		return false
	}
	width := x.effectiveWidth()
	return kernel.SignBit(x.Limbs, width)
}

// IsNegative reports whether x represents a negative value.
func (x Int) IsNegative() bool {
	return x.SignBit()
}

// TestBit reports whether bit i of x is set.
func (x Int) TestBit(i int) bool {
	return kernel.TestBit(x.Limbs, i)
}

// SetBit returns a copy of x with bit i set, growing storage first if
// i falls beyond x's current limb count and x is unbounded.
func (x Int) SetBit(i int) Int {
	n := len(x.Limbs)
	need := i/kernel.LimbBits + 1
	if x.Width > 0 {
		n = kernel.NumLimbs(x.Width)
	} else if need > n {
		n = need
	}
	out := expand(x.Limbs, n)
	kernel.SetBit(out, i)
	return x.finish(out, x.Width)
}

// LeadingZeros returns the count of leading (most-significant) zero
// bits across x's current limb storage.
func (x Int) LeadingZeros() int {
	return kernel.LeadingZeros(x.Limbs)
}

// TrailingZeros returns the count of trailing (least-significant) zero
// bits, or len(Limbs)*32 for zero.
func (x Int) TrailingZeros() int {
	return kernel.TrailingZeros(x.Limbs)
}

// Uint8, Sint8, ... Uint64, Sint64 build a fixed-width bignum from a
// host integer of the matching size.
func Uint8(v uint8) Int   { return FromUint64(uint64(v), false).WithWidth(8, false) }
func Sint8(v int8) Int    { return FromInt64(int64(v)).WithWidth(8, true) }
func Uint16(v uint16) Int { return FromUint64(uint64(v), false).WithWidth(16, false) }
func Sint16(v int16) Int  { return FromInt64(int64(v)).WithWidth(16, true) }
func Uint32(v uint32) Int { return FromUint64(uint64(v), false).WithWidth(32, false) }
func Sint32(v int32) Int  { return FromInt64(int64(v)).WithWidth(32, true) }
func Uint64(v uint64) Int { return FromUint64(v, false).WithWidth(64, false) }
func Sint64(v int64) Int  { return FromInt64(v).WithWidth(64, true) }

// effectiveWidth returns x.Width if fixed, else the bit width implied
// by its current limb count (unbounded values still need a concrete
// width to locate a sign bit for shift/compare purposes).
func (x Int) effectiveWidth() int {
	if x.Width > 0 {
		return x.Width
	}
	return len(x.Limbs) * kernel.LimbBits
}
