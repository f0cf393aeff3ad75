package pga

import (
	"strconv"
	"strings"

	"github.com/gogpu/pga/internal/cayley"
)

// Slot is the position of a basis blade within a multivector.
// The order is fixed: s, e0, e1, e2, e01, e02, e12, e012.
type Slot uint8

const (
	SlotS    = Slot(cayley.S)    // scalar
	SlotE0   = Slot(cayley.E0)   // null direction
	SlotE1   = Slot(cayley.E1)   // Euclidean x direction
	SlotE2   = Slot(cayley.E2)   // Euclidean y direction
	SlotE01  = Slot(cayley.E01)  // bivector
	SlotE02  = Slot(cayley.E02)  // bivector
	SlotE12  = Slot(cayley.E12)  // bivector, Euclidean rotation plane
	SlotE012 = Slot(cayley.E012) // pseudoscalar
)

// NumSlots is the number of slots in a multivector.
const NumSlots = cayley.NumSlots

// Slots lists every slot in order.
var Slots = [NumSlots]Slot{SlotS, SlotE0, SlotE1, SlotE2, SlotE01, SlotE02, SlotE12, SlotE012}

// String returns the blade name, e.g. "e01".
func (s Slot) String() string {
	if int(s) < NumSlots {
		return cayley.Names[s]
	}
	return "Slot(" + strconv.Itoa(int(s)) + ")"
}

// Grade returns the grade of the slot's blade (0 to 3), or -1 for a slot
// outside the algebra.
func (s Slot) Grade() int {
	if int(s) >= NumSlots {
		return -1
	}
	return cayley.Grades[s]
}

// Shape is the set of Real slots of a multivector. A slot outside the
// shape is Absent.
type Shape uint8

// Named shapes.
const (
	ShapeZero        Shape = 0
	ShapeScalar      Shape = 1 << SlotS
	ShapeVector      Shape = 1<<SlotE0 | 1<<SlotE1 | 1<<SlotE2
	ShapeBiVector    Shape = 1<<SlotE01 | 1<<SlotE02 | 1<<SlotE12
	ShapeTriVector   Shape = 1 << SlotE012
	ShapeMotor       Shape = ShapeScalar | ShapeBiVector
	ShapeMultiVector Shape = 0xFF
)

// ShapeOf returns the shape whose Real slots are exactly the given slots.
func ShapeOf(slots ...Slot) Shape {
	var sh Shape
	for _, s := range slots {
		sh |= 1 << s
	}
	return sh
}

// Has reports whether slot s is Real in the shape.
func (sh Shape) Has(s Slot) bool {
	return cayley.Has(uint8(sh), uint8(s))
}

// Union returns the shape Real wherever either operand is Real.
// It is the result shape of addition and subtraction.
func (sh Shape) Union(o Shape) Shape {
	return sh | o
}

// Contains reports whether every Real slot of o is Real in sh, i.e.
// whether a value of shape o can be converted to shape sh without loss.
func (sh Shape) Contains(o Shape) bool {
	return sh&o == o
}

// Len returns the number of Real slots.
func (sh Shape) Len() int {
	return cayley.Count(uint8(sh))
}

// Slots returns the Real slots in order.
func (sh Shape) Slots() []Slot {
	out := make([]Slot, 0, sh.Len())
	for _, s := range Slots {
		if sh.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// ProductShape returns the shape of a·b for a of shape sh and b of shape o.
// A slot is Real in the result iff at least one of its Cayley terms has
// both factors Real.
func (sh Shape) ProductShape(o Shape) Shape {
	return Shape(cayley.ProductMask(uint8(sh), uint8(o)))
}

// String returns the shape's name, or its Real slots in braces.
func (sh Shape) String() string {
	switch sh {
	case ShapeZero:
		return "Zero"
	case ShapeScalar:
		return "Scalar"
	case ShapeVector:
		return "Vector"
	case ShapeBiVector:
		return "BiVector"
	case ShapeTriVector:
		return "TriVector"
	case ShapeMotor:
		return "Motor"
	case ShapeMultiVector:
		return "MultiVector"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range sh.Slots() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteByte('}')
	return b.String()
}
