package bignum

import (
	"testing"

	"github.com/oisee/mpint/internal/kernel"
)

func TestShiftLeftCarryAcrossLimbs(t *testing.T) {
	x := FromUint64(0xFFFFFFFF, false)
	got := x.Shl(10)
	want := FromLimbs([]kernel.Limb{0xFFFFFC00, 0x3FF}, false)
	if !got.Equal(want) {
		t.Fatalf("0xFFFFFFFF << 10 = %v, want %v", got.Limbs, want.Limbs)
	}
}

func TestFixedWidthWrap(t *testing.T) {
	x := FromUint64(0xFFFFFFFF, false).WithWidth(32, false)
	got := x.Add(FromUint64(2, false).WithWidth(32, false))
	want := FromUint64(1, false).WithWidth(32, false)
	if !got.Equal(want) {
		t.Fatalf("0xFFFFFFFF + 2 (width 32) = %v, want %v", got.Limbs, want.Limbs)
	}
}

func TestSignedRightShiftWidth65(t *testing.T) {
	one := FromUint64(1, true).WithWidth(65, true)
	neg := one.Neg()
	got := neg.Shr(1)
	want := FromLimbs([]kernel.Limb{0xFFFFFFFF, 0xFFFFFFFF, 1}, true).WithWidth(65, true)
	if !got.Equal(want) {
		t.Fatalf("-1 >> 1 (signed, width 65) = %v, want %v", got.Limbs, want.Limbs)
	}
}

func TestUnsignedRightShiftWidth65(t *testing.T) {
	one := FromUint64(1, false).WithWidth(65, true)
	neg := one.Neg()
	unsignedNeg := Int{Limbs: neg.Limbs, Signed: false, Width: 65}
	got := unsignedNeg.Shr(1)
	want := FromLimbs([]kernel.Limb{0xFFFFFFFF, 0xFFFFFFFF, 0}, false).WithWidth(65, false)
	if !got.Equal(want) {
		t.Fatalf("-1 >> 1 (unsigned, width 65) = %v, want %v", got.Limbs, want.Limbs)
	}
}

func TestMulAndDivRoundTrip(t *testing.T) {
	b14 := FromUint64(2147483647, false)
	b15 := b14.Mul(b14)
	wantB15 := FromLimbs([]kernel.Limb{1, 0x3FFFFFFF}, false)
	if !b15.Equal(wantB15) {
		t.Fatalf("2147483647^2 = %v, want %v", b15.Limbs, wantB15.Limbs)
	}

	b16 := b15.Mul(b15)
	q := b16.Div(b15)
	if q.String() != "4611686014132420609" {
		t.Fatalf("b16/b15 = %s, want 4611686014132420609", q.String())
	}
}

func TestPow(t *testing.T) {
	got := FromUint64(71, false).Pow(17)
	if got.String() != "29606831241262271996845213307591" {
		t.Fatalf("71^17 = %s", got.String())
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	s := "0xdeadbeef00ff00ff00ff00ff"
	x, err := Parse(s, 16, false, 0)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	if got := x.Format(16); got != s {
		t.Fatalf("round-trip = %s, want %s", got, s)
	}
}

func TestCmpSigned(t *testing.T) {
	negOne := FromUint64(1, true).WithWidth(32, true).Neg()
	one := FromUint64(1, true).WithWidth(32, true)
	if !negOne.Less(one) {
		t.Fatalf("-1 should be less than 1")
	}
	if negOne.Cmp(one) >= 0 {
		t.Fatalf("-1.Cmp(1) should be negative")
	}
}

func TestIsZeroAndBitLen(t *testing.T) {
	if !Zero(false).IsZero() {
		t.Fatal("Zero() should report IsZero")
	}
	if FromUint64(0, false).BitLen() != 0 {
		t.Fatal("BitLen(0) should be 0")
	}
	if FromUint64(1, false).BitLen() != 1 {
		t.Fatal("BitLen(1) should be 1")
	}
}

func TestNamedAliases(t *testing.T) {
	x := Sint8(-1)
	if x.Width != 8 || !x.Signed {
		t.Fatalf("Sint8(-1) has width=%d signed=%v, want 8/true", x.Width, x.Signed)
	}
	if x.Format(16) != "0xff" {
		t.Fatalf("Sint8(-1) bit pattern = %s, want 0xff", x.Format(16))
	}
}

func TestParseMalformedReportsError(t *testing.T) {
	_, err := Parse("12x4", 10, false, 0)
	if err == nil {
		t.Fatal("expected ErrMalformedText for a truncated chunk")
	}
}

func TestWithWidthNarrowsVerbatim(t *testing.T) {
	x := FromUint64(0xFFFFFFFFFFFFFFFF, false)
	got := x.WithWidth(48, false)
	want := FromUint64(0x0000FFFFFFFFFFFF, false).WithWidth(48, false)
	if !got.Equal(want) {
		t.Fatalf("narrow(0xFFFF...FFFF, 48) = %v, want %v", got.Limbs, want.Limbs)
	}
}
