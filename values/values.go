// Package values provides small immutable value types — an RGB colour and
// 2D/3D points and dimensions. They are plain field holders with a
// formatting method; no invariants are enforced beyond field storage.
package values

import "fmt"

// Color is an 8-bit-per-channel RGB colour.
type Color struct {
	R, G, B uint8
}

// String returns the colour as a lower-case hex triplet: "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Point is a position in 2D space.
type Point struct {
	X, Y float64
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Point3D is a position in 3D space.
type Point3D struct {
	X, Y, Z float64
}

// String returns "(x, y, z)".
func (p Point3D) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

// Dimension is a 2D extent.
type Dimension struct {
	Width, Height float64
}

// String returns "w×h".
func (d Dimension) String() string {
	return fmt.Sprintf("%v×%v", d.Width, d.Height)
}

// Dimension3D is a 3D extent.
type Dimension3D struct {
	Width, Height, Depth float64
}

// String returns "w×h×d".
func (d Dimension3D) String() string {
	return fmt.Sprintf("%v×%v×%v", d.Width, d.Height, d.Depth)
}
