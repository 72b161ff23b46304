package gesture

// Vec is a two-dimensional float64 vector. It is used for positions,
// scroll deltas and velocities alike.
type Vec struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Negate returns v with both components negated.
func (v Vec) Negate() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns the squared magnitude of v. Comparisons against
// squared thresholds avoid the sqrt on the hot path.
func (v Vec) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
