package noise

import "math"

// gradient is the fixed 16-entry edge-vector table improved noise hashes
// into. Entries 12-15 repeat earlier vectors; this duplication is load-
// bearing (it is how the reference keeps the table a clean power of two
// while skewing the edge-vector distribution) and must not be "simplified"
// away.
var gradient = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

func lerp(a, b, c float64) float64 {
	return b + a*(c-b)
}

func lerp2(a, b, c, d, e, f float64) float64 {
	return lerp(b, lerp(a, c, d), lerp(a, e, f))
}

func lerp3(a, b, c, d, e, f, g, h, i, j, k float64) float64 {
	return lerp(c, lerp2(a, b, d, e, f, g), lerp2(a, b, h, i, j, k))
}

func smoothstep(x float64) float64 {
	return x * x * x * (x*(x*6.0-15.0) + 10.0)
}

func gradDot(hash int32, x, y, z float64) float64 {
	g := gradient[hash&15]
	return g[0]*x + g[1]*y + g[2]*z
}

const wrapModulus = 3.3554432e7

// wrap reduces value into a centered window of width wrapModulus so octave
// inputs stay bounded before the per-octave frequency multiplication.
func wrap(value float64) float64 {
	return value - math.Floor(value/wrapModulus+0.5)*wrapModulus
}
