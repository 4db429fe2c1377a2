package propcheck

import (
	"math/rand/v2"
	"testing"

	"github.com/oisee/mpint/pkg/bignum"
)

func TestInvariantsHoldOverRandomVectors(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	m := NewMutator(rng, []int{0, 8, 32, 65})
	for i := 0; i < 500; i++ {
		v := m.Random()
		for _, inv := range Invariants {
			if ok, detail := inv.Check(v); !ok {
				t.Fatalf("invariant %s falsified: %s (vector a=%v b=%v width=%d signed=%v)",
					inv.Name, detail, v.A.Limbs, v.B.Limbs, v.Width, v.Signed)
			}
		}
	}
}

func TestInvariantsHoldUnderMutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 8))
	m := NewMutator(rng, []int{0, 16, 32, 48, 64})
	v := m.Random()
	for i := 0; i < 500; i++ {
		v = m.Mutate(v)
		for _, inv := range Invariants {
			if ok, detail := inv.Check(v); !ok {
				t.Fatalf("invariant %s falsified after mutation: %s", inv.Name, detail)
			}
		}
	}
}

func TestDivModReconstructsSkipsZeroDivisor(t *testing.T) {
	zero := bignum.Zero(false).WithWidth(32, false)
	v := Vector{
		A:      zero,
		B:      zero,
		Width:  32,
		Signed: false,
	}
	if ok, _ := checkDivModReconstructs(v); !ok {
		t.Fatal("checkDivModReconstructs should not falsify on a zero divisor")
	}
}
