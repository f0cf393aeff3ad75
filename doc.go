// Package pga provides 2-D Projective Geometric Algebra for the GoGPU
// ecosystem.
//
// # Overview
//
// pga implements the algebra R(2,0,1): multivectors with eight basis
// components
//
//	s, e0, e1, e2, e01, e02, e12, e012
//
// where e0 is the null (projective) direction and e1, e2 are the Euclidean
// directions. Vectors represent lines, bivectors represent points and
// even-graded elements (Motor) represent rotations and translations.
//
// # Quick Start
//
//	import "github.com/gogpu/pga"
//
//	p := pga.Pt(1, 2)
//	m := pga.Translator(3, 5).MulMotor(pga.Rotor(math.Pi / 2))
//	q := m.Apply(p)
//	fmt.Println(q.X(), q.Y())
//
// # Shapes and Zero Elimination
//
// Every slot of a multivector is either Real (it stores a float32) or
// Absent (it is algebraically zero and has no storage). The set of Real
// slots is the value's [Shape]. Two families of types carry shapes:
//
//   - Typed values ([Scalar], [Vector], [BiVector], [TriVector], [Motor],
//     [MultiVector] and the result types named after their Real slots, such
//     as [SE0E1E2]) fix the shape at compile time. Their operators are
//     generated per operand pair with every term that involves an Absent
//     slot removed, so a Vector times a Vector performs only the multiplies
//     that can be non-zero and returns a Motor.
//   - [Generic] carries its shape at run time and applies the same rules
//     slot by slot through [Component].
//
// Widening conversions (ToMotor, ToMultiVector, ...) are generated only
// where no Real slot would be dropped, so a lossy conversion does not
// compile.
//
// # Numeric Precision
//
// All values are float32, matching the GPU-facing parts of the stack.
// NaN and infinities propagate according to IEEE 754 and are not checked.
package pga

//go:generate go run ./internal/cmd/shapegen -o shapes_gen.go

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
