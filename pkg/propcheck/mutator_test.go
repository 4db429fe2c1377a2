package propcheck

import (
	"math/rand/v2"
	"testing"
)

func TestRandomProducesRequestedWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	m := NewMutator(rng, []int{32})
	for i := 0; i < 20; i++ {
		v := m.Random()
		if v.Width != 32 {
			t.Fatalf("Random() width = %d, want 32", v.Width)
		}
		if v.A.Width != 32 || v.B.Width != 32 {
			t.Fatalf("Random() operand widths = %d/%d, want 32/32", v.A.Width, v.B.Width)
		}
	}
}

func TestMutateDoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	m := NewMutator(rng, []int{0, 32, 64})
	v := m.Random()
	aBefore, bBefore := v.A, v.B

	for i := 0; i < 50; i++ {
		_ = m.Mutate(v)
		if !v.A.Equal(aBefore) || !v.B.Equal(bBefore) {
			t.Fatal("Mutate modified its input Vector")
		}
	}
}

func TestUseEdgeValueStaysWithinWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	m := NewMutator(rng, []int{16})
	v := m.Random()
	for i := 0; i < 50; i++ {
		v = m.useEdgeValue(v)
		if v.A.BitLen() > 16 || v.B.BitLen() > 16 {
			t.Fatalf("edge value exceeds width 16: a=%v b=%v", v.A.Limbs, v.B.Limbs)
		}
	}
}
