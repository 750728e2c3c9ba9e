package noise

import (
	"math"

	"multinoise/pkg/noiserand"
)

// ImprovedNoise is one octave of Ken Perlin's classic 3-D gradient noise
// over a seeded permutation of 0..255 and three fractional origin offsets
// drawn from the source at construction time.
type ImprovedNoise struct {
	xo, yo, zo float64
	perm       [256]byte
}

// NewImprovedNoise builds a permutation table and origin offsets from
// source, consuming exactly 256 next_int_max draws plus 3 next_double
// draws.
func NewImprovedNoise(source noiserand.Source) *ImprovedNoise {
	n := &ImprovedNoise{
		xo: source.NextDouble() * 256.0,
		yo: source.NextDouble() * 256.0,
		zo: source.NextDouble() * 256.0,
	}
	for i := range n.perm {
		n.perm[i] = byte(i)
	}
	for i := 0; i < 256; i++ {
		j, err := source.NextIntMax(int32(256 - i))
		if err != nil {
			// 256-i is always in [1,256]; NextIntMax never rejects a
			// positive bound.
			panic(err)
		}
		n.perm[i], n.perm[i+int(j)] = n.perm[i+int(j)], n.perm[i]
	}
	return n
}

func (n *ImprovedNoise) p(i int32) int32 {
	return int32(n.perm[i&255])
}

// Sample evaluates the noise field at (x,y,z). yScale and yLimit implement
// the reference's vertical-quantization trick used by terrain-style
// callers: when yScale is nonzero, the fractional y coordinate is snapped
// to a step of size yScale (clamped to yLimit when yLimit is in [0, y))
// before the lattice lookup, while the unclamped fractional y still drives
// the outer smoothstep weight.
func (n *ImprovedNoise) Sample(x, y, z, yScale, yLimit float64) float64 {
	x2 := x + n.xo
	y2 := y + n.yo
	z2 := z + n.zo
	x3 := math.Floor(x2)
	y3 := math.Floor(y2)
	z3 := math.Floor(z2)
	x4 := x2 - x3
	y4 := y2 - y3
	z4 := z2 - z3

	y6 := 0.0
	if yScale != 0.0 {
		t := y4
		if yLimit >= 0.0 && yLimit < y4 {
			t = yLimit
		}
		y6 = math.Floor(t/yScale + 1.0e-7)
	}

	return n.sampleAndLerp(int32(x3), int32(y3), int32(z3), x4, y4-y6, z4, y4)
}

func (n *ImprovedNoise) sampleAndLerp(a, b, c int32, d, e, f, g float64) float64 {
	h := n.p(a)
	i := n.p(a + 1)
	j := n.p(h + b)
	k := n.p(h + b + 1)
	l := n.p(i + b)
	m := n.p(i + b + 1)

	n0 := gradDot(n.p(j+c), d, e, f)
	o := gradDot(n.p(l+c), d-1.0, e, f)
	p := gradDot(n.p(k+c), d, e-1.0, f)
	q := gradDot(n.p(m+c), d-1.0, e-1.0, f)
	r := gradDot(n.p(j+c+1), d, e, f-1.0)
	s := gradDot(n.p(l+c+1), d-1.0, e, f-1.0)
	t := gradDot(n.p(k+c+1), d, e-1.0, f-1.0)
	u := gradDot(n.p(m+c+1), d-1.0, e-1.0, f-1.0)

	v := smoothstep(d)
	w := smoothstep(g)
	xx := smoothstep(f)

	return lerp3(v, w, xx, n0, o, p, q, r, s, t, u)
}
