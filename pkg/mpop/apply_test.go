package mpop

import (
	"errors"
	"testing"

	"github.com/oisee/mpint/pkg/bignum"
)

func TestApplyBinaryAdd(t *testing.T) {
	a := bignum.FromUint64(2, false)
	b := bignum.FromUint64(3, false)
	got, err := ApplyBinary(Add, a, b)
	if err != nil {
		t.Fatalf("ApplyBinary(Add) error: %v", err)
	}
	if got.String() != "5" {
		t.Fatalf("2+3 = %s, want 5", got.String())
	}
}

func TestApplyBinaryRejectsUnary(t *testing.T) {
	a := bignum.FromUint64(2, false)
	_, err := ApplyBinary(Neg, a, a)
	if !errors.Is(err, ErrWrongArity) {
		t.Fatalf("ApplyBinary(Neg) error = %v, want ErrWrongArity", err)
	}
}

func TestApplyUnaryNeg(t *testing.T) {
	a := bignum.FromUint64(1, true).WithWidth(8, true)
	got, err := ApplyUnary(Neg, a)
	if err != nil {
		t.Fatalf("ApplyUnary(Neg) error: %v", err)
	}
	if got.Format(16) != "0xff" {
		t.Fatalf("-1 (width 8) = %s, want 0xff", got.Format(16))
	}
}

func TestApplyUnaryRejectsBinary(t *testing.T) {
	a := bignum.FromUint64(2, false)
	_, err := ApplyUnary(Add, a)
	if !errors.Is(err, ErrWrongArity) {
		t.Fatalf("ApplyUnary(Add) error = %v, want ErrWrongArity", err)
	}
}

func TestApplyBinaryShl(t *testing.T) {
	a := bignum.FromUint64(1, false)
	shift := bignum.FromUint64(4, false)
	got, err := ApplyBinary(Shl, a, shift)
	if err != nil {
		t.Fatalf("ApplyBinary(Shl) error: %v", err)
	}
	if got.String() != "16" {
		t.Fatalf("1<<4 = %s, want 16", got.String())
	}
}
