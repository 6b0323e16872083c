package sphere

import (
	"fmt"
	"math"

	"github.com/san-kum/spinglobe/internal/vecmath"
)

// Coords are unsigned angles in radians, both in [0, π].
type Coords struct {
	Lat  float64
	Long float64
}

func (c Coords) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Long)
}

// ToGeometric maps a point on the unit sphere to latitude and longitude.
//
// Lat is the angle between (-1, 0) and (y, z) in the yz plane; Long is the
// angle between (-1, 0) and (x, z) in the xz plane. The reference directions
// have unit length so only the projected point normalizes the dot product.
// A point whose projection is zero yields NaN.
func ToGeometric(p vecmath.Vec3) Coords {
	return Coords{
		Lat:  angle(p.Y, p.Z, -p.Y),
		Long: angle(p.X, p.Z, -p.X),
	}
}

func angle(u, v, dot float64) float64 {
	return math.Acos(dot / math.Sqrt(u*u+v*v))
}
