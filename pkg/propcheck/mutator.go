package propcheck

import (
	"math/rand/v2"

	"github.com/oisee/mpint/internal/kernel"
	"github.com/oisee/mpint/pkg/bignum"
)

// Vector is one random test case: two operands sharing a width/signedness,
// the shape every binary invariant here is checked against.
type Vector struct {
	A, B   bignum.Int
	Width  int // 0 means unbounded
	Signed bool
}

// Mutator generates and perturbs Vectors, the propcheck analogue of
// stoke.Mutator generating and perturbing instruction sequences.
type Mutator struct {
	rng    *rand.Rand
	widths []int // candidate fixed widths, 0 included for unbounded
}

// NewMutator creates a Mutator with the given candidate widths (pass 0 to
// include unbounded bignums among the candidates).
func NewMutator(rng *rand.Rand, widths []int) *Mutator {
	return &Mutator{rng: rng, widths: widths}
}

// Random generates a fresh random Vector.
func (m *Mutator) Random() Vector {
	width := m.widths[m.rng.IntN(len(m.widths))]
	signed := m.rng.IntN(2) == 0
	return Vector{
		A:      m.randomInt(width, signed),
		B:      m.randomInt(width, signed),
		Width:  width,
		Signed: signed,
	}
}

// Mutate applies a random perturbation to v and returns a new Vector; v
// itself is never modified. Weighted selection mirrors stoke.Mutator's
// switch: 40% replace an operand, 25% flip a random bit, 25% substitute an
// edge value (zero / all-ones / min-signed), 10% resize to a different
// width.
func (m *Mutator) Mutate(v Vector) Vector {
	r := m.rng.IntN(100)
	switch {
	case r < 40:
		return m.replaceOperand(v)
	case r < 65:
		return m.flipBit(v)
	case r < 90:
		return m.useEdgeValue(v)
	default:
		return m.resize(v)
	}
}

func (m *Mutator) replaceOperand(v Vector) Vector {
	if m.rng.IntN(2) == 0 {
		v.A = m.randomInt(v.Width, v.Signed)
	} else {
		v.B = m.randomInt(v.Width, v.Signed)
	}
	return v
}

func (m *Mutator) flipBit(v Vector) Vector {
	target := &v.A
	if m.rng.IntN(2) == 1 {
		target = &v.B
	}
	width := target.BitLen()
	if width == 0 {
		width = 1
	}
	bit := m.rng.IntN(width)
	*target = target.SetBit(bit)
	return v
}

// useEdgeValue replaces one operand with a boundary value likely to
// trigger named corner cases (all-ones width, zero, minimum signed value).
func (m *Mutator) useEdgeValue(v Vector) Vector {
	width := v.Width
	if width == 0 {
		width = 64
	}
	edges := []bignum.Int{
		bignum.Zero(v.Signed).WithWidth(width, v.Signed),
		bignum.FromUint64(0, v.Signed).WithWidth(width, v.Signed).Not(),
	}
	if v.Signed {
		minSigned := bignum.FromUint64(1, true).WithWidth(width, true)
		minSigned = minSigned.Shl(width - 1)
		edges = append(edges, minSigned)
	}
	edge := edges[m.rng.IntN(len(edges))]
	if v.Width == 0 {
		edge = edge.WithWidth(0, v.Signed)
	}
	if m.rng.IntN(2) == 0 {
		v.A = edge
	} else {
		v.B = edge
	}
	return v
}

func (m *Mutator) resize(v Vector) Vector {
	newWidth := m.widths[m.rng.IntN(len(m.widths))]
	v.Width = newWidth
	v.A = v.A.WithWidth(newWidth, v.Signed)
	v.B = v.B.WithWidth(newWidth, v.Signed)
	return v
}

// randomInt builds a random Int of the given width/signedness. Width 0
// yields a random 1-4 limb unbounded value.
func (m *Mutator) randomInt(width int, signed bool) bignum.Int {
	n := kernel.NumLimbs(width)
	if width == 0 {
		n = 1 + m.rng.IntN(4)
	}
	limbs := make([]kernel.Limb, n)
	for i := range limbs {
		limbs[i] = kernel.Limb(m.rng.Uint32())
	}
	out := bignum.FromLimbs(limbs, signed)
	if width > 0 {
		out = out.WithWidth(width, signed)
	}
	return out
}
