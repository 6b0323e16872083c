package sphere

import (
	"math"

	"github.com/san-kum/spinglobe/internal/vecmath"
)

// Intersect returns the point where the line origin + t*dir first meets the
// unit sphere. origin.X and origin.Y are treated as zero.
//
// With (a, b, c) = dir and z0 = origin.Z the line satisfies
//
//	t²(a²+b²+c²) + t(2·z0·c) + (z0²-1) = 0
//
// and the smaller root is taken. A tangent ray (zero discriminant) hits.
func Intersect(origin, dir vecmath.Vec3) (vecmath.Vec3, bool) {
	z0 := origin.Z
	a := dir.Dot(dir)
	b := 2 * z0 * dir.Z
	c := z0*z0 - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return vecmath.Vec3{}, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	return vecmath.Vec3{Z: z0}.Add(dir.Scale(t)), true
}
