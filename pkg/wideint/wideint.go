package wideint

import "github.com/oisee/mpint/internal/kernel"

// Int is a fixed-width integer: W fixes the bit width and S fixes
// signedness, both at compile time, mirroring wideint<bits, is_signed>.
// Go's own zero value Int[W, S]{} has a nil Limbs, not one sized to W —
// use Zero[W, S]() to get a properly-sized zero, the way a constructor
// would in the source.
type Int[W Width, S Signedness] struct {
	Limbs []kernel.Limb
}

func width[W Width]() int {
	var w W
	return w.Bits()
}

func signed[S Signedness]() bool {
	var s S
	return s.Signed()
}

func numLimbs[W Width]() int {
	return kernel.NumLimbs(width[W]())
}

// Zero returns the zero value of the requested width/signedness, with
// limb storage already sized and masked.
func Zero[W Width, S Signedness]() Int[W, S] {
	return Int[W, S]{Limbs: make([]kernel.Limb, numLimbs[W]())}
}

// FromUint64 builds a width-W integer from a uint64, masked to width
// (a narrower W truncates, following the promotion rule).
func FromUint64[W Width, S Signedness](v uint64) Int[W, S] {
	limbs := kernel.Resize([]kernel.Limb{kernel.Limb(v), kernel.Limb(v >> 32)}, numLimbs[W]())
	kernel.MaskTop(limbs, width[W]())
	return Int[W, S]{Limbs: limbs}
}

// FromInt64 builds a width-W integer from an int64's two's-complement
// bit pattern, masked to width.
func FromInt64[W Width, S Signedness](v int64) Int[W, S] {
	return FromUint64[W, S](uint64(v))
}

// FromLimbs builds a width-W integer from little-endian limbs, zero-
// extending or truncating to fit and masking the top limb.
func FromLimbs[W Width, S Signedness](limbs []kernel.Limb) Int[W, S] {
	out := kernel.Resize(limbs, numLimbs[W]())
	kernel.MaskTop(out, width[W]())
	return Int[W, S]{Limbs: out}
}

// Convert narrows or widens x into a width-W2/signedness-S2 integer,
// following the cross-width promotion rule: low bytes copied
// verbatim, high limbs zeroed, top limb masked, no sign extension.
func Convert[W2 Width, S2 Signedness, W Width, S Signedness](x Int[W, S]) Int[W2, S2] {
	return FromLimbs[W2, S2](x.Limbs)
}

// Width returns x's bit width.
func (x Int[W, S]) Width() int { return width[W]() }

// Signed reports whether x's type is signed.
func (x Int[W, S]) Signed() bool { return signed[S]() }

// IsZero reports whether x is zero.
func (x Int[W, S]) IsZero() bool { return kernel.IsZero(x.Limbs) }

// BitLen returns the number of bits needed for x's magnitude.
func (x Int[W, S]) BitLen() int { return kernel.BitLen(x.Limbs) }

// SignBit reports whether x's sign bit is set (always false when S is
// Unsigned).
func (x Int[W, S]) SignBit() bool {
	if !x.Signed() {
		return false
	}
	return kernel.SignBit(x.Limbs, x.Width())
}

// IsNegative reports whether x represents a negative value.
func (x Int[W, S]) IsNegative() bool { return x.SignBit() }

// TestBit reports whether bit i of x is set.
func (x Int[W, S]) TestBit(i int) bool { return kernel.TestBit(x.Limbs, i) }

// SetBit returns a copy of x with bit i set.
func (x Int[W, S]) SetBit(i int) Int[W, S] {
	out := append([]kernel.Limb(nil), x.Limbs...)
	kernel.SetBit(out, i)
	kernel.MaskTop(out, x.Width())
	return Int[W, S]{Limbs: out}
}

// LeadingZeros returns the count of leading zero bits, width for zero.
func (x Int[W, S]) LeadingZeros() int {
	return kernel.LeadingZeros(x.Limbs) - (len(x.Limbs)*kernel.LimbBits - x.Width())
}

// TrailingZeros returns the count of trailing zero bits, width for zero.
func (x Int[W, S]) TrailingZeros() int {
	if x.IsZero() {
		return x.Width()
	}
	return kernel.TrailingZeros(x.Limbs)
}

// Uint64 returns the low 64 bits of x.
func (x Int[W, S]) Uint64() uint64 {
	var lo, hi kernel.Limb
	if len(x.Limbs) > 0 {
		lo = x.Limbs[0]
	}
	if len(x.Limbs) > 1 {
		hi = x.Limbs[1]
	}
	return uint64(lo) | uint64(hi)<<32
}
