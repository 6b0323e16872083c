// Package render turns a texture map into character frames of the spinning
// sphere.
//
// The camera sits at (0, 0, -1.5) looking toward +z. A frame is as wide as
// the texture map and a quarter as tall, since terminal cells are roughly
// twice as tall as they are wide. Every pixel casts one ray:
//
//	ray := r.Direction(x, y)
//	p, hit := sphere.Intersect(Camera, ray)
//	glyph := sampler.SampleHit(sphere.ToGeometric(p), hit, rotation)
package render
