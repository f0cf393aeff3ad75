package pga

import "math"

// Line is a Vector read as the line E1·x + E2·y + E0 = 0.
type Line = Vector

// Point is a BiVector read as a point. The Euclidean point (x, y) is
// y·e01 - x·e02 + e12; a point with E12 == 0 is ideal (a direction).
type Point = BiVector

// Pt returns the Euclidean point (x, y).
func Pt(x, y float32) Point {
	return Point{E01: y, E02: -x, E12: 1}
}

// Dir returns the ideal point in direction (x, y).
func Dir(x, y float32) Point {
	return Point{E01: y, E02: -x}
}

// NewLine returns the line a·x + b·y + c = 0.
func NewLine(a, b, c float32) Line {
	return Line{E0: c, E1: a, E2: b}
}

// X returns the Euclidean x coordinate of the point.
// For an ideal point the result is ±Inf or NaN.
func (a BiVector) X() float32 {
	return -a.E02 / a.E12
}

// Y returns the Euclidean y coordinate of the point.
func (a BiVector) Y() float32 {
	return a.E01 / a.E12
}

// IsIdeal reports whether the point lies at infinity.
func (a BiVector) IsIdeal() bool {
	return a.E12 == 0
}

// IdentityMotor returns the motor that leaves every point in place.
func IdentityMotor() Motor {
	return Motor{S: 1}
}

// Translator returns the motor that moves points by (dx, dy).
func Translator(dx, dy float32) Motor {
	return Motor{S: 1, E01: -dx / 2, E02: -dy / 2}
}

// Rotor returns the motor that rotates points counter-clockwise by angle
// radians about the origin.
func Rotor(angle float32) Motor {
	sin, cos := math.Sincos(float64(angle) / 2)
	return Motor{S: float32(cos), E12: float32(-sin)}
}

// RotorAbout returns the motor that rotates points counter-clockwise by
// angle radians about center.
func RotorAbout(angle float32, center Point) Motor {
	x, y := center.X(), center.Y()
	return Translator(x, y).MulMotor(Rotor(angle)).MulMotor(Translator(-x, -y))
}

// Reverse returns the reverse of a: the bivector part changes sign.
// For a unit motor the reverse is its inverse.
func (a Motor) Reverse() Motor {
	return Motor{S: a.S, E01: -a.E01, E02: -a.E02, E12: -a.E12}
}

// Norm returns the Euclidean norm sqrt(S² + E12²).
func (a Motor) Norm() float32 {
	return float32(math.Hypot(float64(a.S), float64(a.E12)))
}

// Normalized returns a scaled to unit norm. Repeated composition drifts
// away from unit norm; normalizing keeps Apply a rigid motion.
// A zero motor is returned unchanged.
func (a Motor) Normalized() Motor {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return Motor{S: a.S / n, E01: a.E01 / n, E02: a.E02 / n, E12: a.E12 / n}
}

// Apply moves p by the sandwich product a·p·~a.
func (a Motor) Apply(p Point) Point {
	r := a.MulBiVector(p).MulMotor(a.Reverse())
	return Point{E01: r.E01, E02: r.E02, E12: r.E12}
}

// Then returns the motor that applies a first and next second.
func (a Motor) Then(next Motor) Motor {
	return next.MulMotor(a)
}

// Translation returns where a moves the origin.
func (a Motor) Translation() (x, y float32) {
	o := a.Apply(Pt(0, 0))
	return o.X(), o.Y()
}

// angleSnap is how close to -π an angle must be to report it as π.
const angleSnap = 1e-6

// Angle returns the rotation angle of a in radians, in (-π, π]. A half
// turn reads as π even when float32 rounding puts it just past -π.
func (a Motor) Angle() float32 {
	s, e := a.S, a.E12
	if s < 0 {
		s, e = -s, -e
	}
	angle := 2 * math.Atan2(float64(-e), float64(s))
	if angle <= -math.Pi+angleSnap {
		angle += 2 * math.Pi
	}
	return float32(angle)
}
