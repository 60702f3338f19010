package common

import "math"

// TileSize is the edge length of one level tile in world units.
const TileSize = 32

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
