// Package kernel implements the shared limb-vector arithmetic engine used
// by both pkg/bignum and pkg/wideint. Every function here operates on
// plain little-endian []Limb slices plus explicit width/signedness
// parameters; it never allocates a growable or fixed-width integer type
// itself — that lifecycle belongs to the two surface packages.
package kernel

import "math/bits"

// Limb is the machine word the limb-vector is built from. Fixed at 32
// bits so multiply/divide can use a native 64-bit accumulator for the
// double-limb products Knuth's algorithm D needs.
type Limb = uint32

// LimbBits is the width in bits of a single Limb.
const LimbBits = 32

// CLZ32 returns the count of leading zero bits in v, or LimbBits if v==0.
func CLZ32(v Limb) int {
	return bits.LeadingZeros32(v)
}

// CTZ32 returns the count of trailing zero bits in v, or LimbBits if v==0.
func CTZ32(v Limb) int {
	return bits.TrailingZeros32(v)
}

// LeadingZeros returns the number of leading zero bits across the whole
// limb vector (scanning from the most significant limb down), or
// len(limbs)*LimbBits if every limb is zero.
func LeadingZeros(limbs []Limb) int {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return (len(limbs)-1-i)*LimbBits + CLZ32(limbs[i])
		}
	}
	return len(limbs) * LimbBits
}

// TrailingZeros returns the number of trailing zero bits across the
// whole limb vector (scanning from the least significant limb up), or
// len(limbs)*LimbBits if every limb is zero.
func TrailingZeros(limbs []Limb) int {
	for i, v := range limbs {
		if v != 0 {
			return i*LimbBits + CTZ32(v)
		}
	}
	return len(limbs) * LimbBits
}

// BitLen returns the position of the highest set bit plus one: 0 for
// zero, floor(log2(n))+1 otherwise.
func BitLen(limbs []Limb) int {
	total := len(limbs) * LimbBits
	lz := LeadingZeros(limbs)
	return total - lz
}
