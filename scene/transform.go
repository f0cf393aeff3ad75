package scene

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/pga"
)

// Transform is an entity's placement relative to its parent, or to the
// world when it has none.
type Transform struct {
	Motor pga.Motor
}

// Identity returns the transform that leaves an entity at its parent's
// origin.
func Identity() Transform {
	return Transform{Motor: pga.IdentityMotor()}
}

// At returns a transform that places an entity at (x, y).
func At(x, y float32) Transform {
	return Transform{Motor: pga.Translator(x, y)}
}

// AtAngle returns a transform that rotates an entity counter-clockwise
// by angle radians and then places it at (x, y).
func AtAngle(x, y, angle float32) Transform {
	return Transform{Motor: pga.Rotor(angle).Then(pga.Translator(x, y))}
}

// Position returns where the transform moves the local origin.
func (t Transform) Position() (x, y float32) {
	return t.Motor.Translation()
}

// Angle returns the rotation of the transform in radians.
func (t Transform) Angle() float32 {
	return t.Motor.Angle()
}

// Translate returns t followed by a world-space move of (dx, dy).
func (t Transform) Translate(dx, dy float32) Transform {
	return Transform{Motor: t.Motor.Then(pga.Translator(dx, dy))}
}

// GlobalTransform is an entity's placement in world space, computed by
// World.Propagate.
type GlobalTransform struct {
	motor pga.Motor
}

// Motor returns the world-space motor.
func (g GlobalTransform) Motor() pga.Motor {
	return g.motor
}

// Position returns the entity's world-space origin.
func (g GlobalTransform) Position() (x, y float32) {
	return g.motor.Translation()
}

// Apply maps a local-space point into world space.
func (g GlobalTransform) Apply(p pga.Point) pga.Point {
	return g.motor.Apply(p)
}

// Aff3 returns the transform as a row-major 2×3 affine matrix
//
//	x' = m[0]·x + m[1]·y + m[2]
//	y' = m[3]·x + m[4]·y + m[5]
func (g GlobalTransform) Aff3() f32.Aff3 {
	return motorAff3(g.motor)
}

// motorAff3 converts a motor to the equivalent affine matrix. The columns
// are the images of the x and y directions and of the origin.
func motorAff3(m pga.Motor) f32.Aff3 {
	m = m.Normalized()
	ex := m.Apply(pga.Dir(1, 0))
	ey := m.Apply(pga.Dir(0, 1))
	tx, ty := m.Translation()
	return f32.Aff3{
		-ex.E02, -ey.E02, tx,
		ex.E01, ey.E01, ty,
	}
}

// mulAff3 returns the affine matrix that applies q and then p.
func mulAff3(p, q f32.Aff3) f32.Aff3 {
	return f32.Aff3{
		p[0]*q[0] + p[1]*q[3],
		p[0]*q[1] + p[1]*q[4],
		p[0]*q[2] + p[1]*q[5] + p[2],
		p[3]*q[0] + p[4]*q[3],
		p[3]*q[1] + p[4]*q[4],
		p[3]*q[2] + p[4]*q[5] + p[5],
	}
}

// ApplyAff3 maps (x, y) through m.
func ApplyAff3(m f32.Aff3, x, y float32) (float32, float32) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
