package easel

import "math"

// Epsilon is the tolerance used when comparing coordinates.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// circlePoint returns the point on the circle around center with radius r at
// angle theta in radians, counter clockwise from 3 o'clock.
func circlePoint(center Point, r, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	return Point{center.X + r*costheta, center.Y + r*sintheta}
}
