package grid

import "math"

// Bounds describes a rectangular sampling region over three axes: for each
// axis, from is the first coordinate, to is the exclusive upper bound, and
// step is the stride between samples.
type Bounds struct {
	XFrom, XTo, XStep float64
	YFrom, YTo, YStep float64
	ZFrom, ZTo, ZStep float64
}

func axisCount(from, to, step float64) int {
	return int(math.Floor((to - from) / step))
}

// Iterate evaluates f over every lattice point in b, in x-major then y then
// z iteration order, and returns the dense results in that order. The
// sample count per axis is floor((to-from)/step).
func Iterate[T any](b Bounds, f func(x, y, z float64) T) []T {
	xCount := axisCount(b.XFrom, b.XTo, b.XStep)
	yCount := axisCount(b.YFrom, b.YTo, b.YStep)
	zCount := axisCount(b.ZFrom, b.ZTo, b.ZStep)

	result := make([]T, 0, xCount*yCount*zCount)
	for x := 0; x < xCount; x++ {
		xx := float64(x)*b.XStep + b.XFrom
		for y := 0; y < yCount; y++ {
			yy := float64(y)*b.YStep + b.YFrom
			for z := 0; z < zCount; z++ {
				zz := float64(z)*b.ZStep + b.ZFrom
				result = append(result, f(xx, yy, zz))
			}
		}
	}
	return result
}
