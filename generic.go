package pga

import (
	"strings"

	"github.com/gogpu/pga/internal/cayley"
)

// Generic is a multivector whose shape is carried at run time.
//
// It follows the same rules as the generated types: Absent slots read as
// zero, the result shape of every operator is derived from the operand
// shapes alone, and a Real slot stays Real even when its value is 0.
// Use it when shapes are only known at run time or to compare values of
// different typed shapes.
type Generic struct {
	shape Shape
	v     [NumSlots]float32
}

// newGeneric builds a Generic, clearing any value stored outside shape.
func newGeneric(shape Shape, v [NumSlots]float32) Generic {
	for _, s := range Slots {
		if !shape.Has(s) {
			v[s] = 0
		}
	}
	return Generic{shape: shape, v: v}
}

// NewGeneric returns a Generic with the given shape. Values for slots
// outside the shape are ignored.
func NewGeneric(shape Shape, values [NumSlots]float32) Generic {
	return newGeneric(shape, values)
}

// FromComponents builds a Generic slot by slot.
func FromComponents(c [NumSlots]Component) Generic {
	var g Generic
	for _, s := range Slots {
		if c[s].IsReal() {
			g.shape |= 1 << s
			g.v[s] = c[s].v
		}
	}
	return g
}

// Shape returns the set of Real slots.
func (g Generic) Shape() Shape {
	return g.shape
}

// Component returns the content of slot s.
func (g Generic) Component(s Slot) Component {
	if g.shape.Has(s) {
		return RealComponent(g.v[s])
	}
	return AbsentComponent()
}

// Components returns all eight slots.
func (g Generic) Components() [NumSlots]Component {
	var c [NumSlots]Component
	for _, s := range Slots {
		c[s] = g.Component(s)
	}
	return c
}

// Get returns the value of slot s. Absent slots and slots outside the
// algebra read as exactly 0.
func (g Generic) Get(s Slot) float32 {
	if int(s) >= NumSlots {
		return 0
	}
	return g.v[s]
}

// Values returns the eight slot values in order, with zeros for Absent slots.
func (g Generic) Values() [NumSlots]float32 {
	return g.v
}

// Neg returns -g with the same shape.
func (g Generic) Neg() Generic {
	var c [NumSlots]Component
	for _, s := range Slots {
		c[s] = g.Component(s).Neg()
	}
	return FromComponents(c)
}

// Add returns g + o. The result shape is the union of the operand shapes.
func (g Generic) Add(o Generic) Generic {
	var c [NumSlots]Component
	for _, s := range Slots {
		c[s] = g.Component(s).Add(o.Component(s))
	}
	return FromComponents(c)
}

// Sub returns g - o. The result shape is the union of the operand shapes.
func (g Generic) Sub(o Generic) Generic {
	var c [NumSlots]Component
	for _, s := range Slots {
		c[s] = g.Component(s).Sub(o.Component(s))
	}
	return FromComponents(c)
}

// Mul returns the geometric product g·o.
//
// Each output slot sums its Cayley terms. A term with an Absent factor is
// skipped without multiplying, and a slot whose terms were all skipped is
// Absent in the result.
func (g Generic) Mul(o Generic) Generic {
	var c [NumSlots]Component
	for _, s := range Slots {
		acc := AbsentComponent()
		for _, t := range cayley.Terms[s] {
			if !t.Live(uint8(g.shape), uint8(o.shape)) {
				continue
			}
			p := RealComponent(g.v[t.Left]).Mul(RealComponent(o.v[t.Right]))
			if t.Sign < 0 {
				acc = acc.Sub(p)
			} else {
				acc = acc.Add(p)
			}
		}
		c[s] = acc
	}
	return FromComponents(c)
}

// Widen returns g with every slot of to made Real. Slots that were Absent
// become Real zeros; no value is ever dropped.
func (g Generic) Widen(to Shape) Generic {
	return Generic{shape: g.shape.Union(to), v: g.v}
}

// Equal reports whether g and o are equal after widening both to the
// union of their shapes: every slot value must match exactly.
func (g Generic) Equal(o Generic) bool {
	return g.v == o.v
}

// Identical reports whether g and o have the same shape and values.
func (g Generic) Identical(o Generic) bool {
	return g.shape == o.shape && g.v == o.v
}

// String formats the Real slots, e.g. "{e0:1 e1:2 e2:3}".
func (g Generic) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range g.shape.Slots() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
		b.WriteByte(':')
		b.WriteString(RealComponent(g.v[s]).String())
	}
	b.WriteByte('}')
	return b.String()
}
