// Package sphere implements the geometry of the unit sphere centered at the
// world origin:
//
//   - [Intersect]: closed-form nearest ray/sphere intersection
//   - [ToGeometric]: Cartesian surface point to latitude/longitude
//
// The camera is always on the z axis and outside the sphere, so only the z
// component of a ray origin takes part in the intersection algebra and the
// smaller root of the quadratic is always the visible entry point.
package sphere
