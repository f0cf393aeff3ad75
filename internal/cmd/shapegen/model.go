package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/pga/internal/cayley"
)

// shapeType is one generated struct: a fixed set of Real slots.
type shapeType struct {
	Name  string
	Mask  uint8
	Named bool
	Doc   string
}

// Fields returns the Go field names of the Real slots in slot order.
func (t shapeType) Fields() []string {
	var out []string
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(t.Mask, i) {
			out = append(out, fieldName(i))
		}
	}
	return out
}

// ShapeExpr is the Go expression for the type's Shape.
func (t shapeType) ShapeExpr() string {
	if t.Named || t.Mask == 0 {
		return "Shape" + t.Name
	}
	var parts []string
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(t.Mask, i) {
			parts = append(parts, "1<<Slot"+fieldName(i))
		}
	}
	if len(parts) == 1 {
		return "Shape(" + strings.ReplaceAll(parts[0], "<<", " << ") + ")"
	}
	return "Shape(" + strings.Join(parts, " | ") + ")"
}

// namedTypes are the algebra's named specializations. Every ordered pair
// of them gets Add, Sub and Mul operators.
var namedTypes = []shapeType{
	{
		Name:  "Scalar",
		Mask:  1 << cayley.S,
		Named: true,
		Doc:   "Scalar is a grade-0 element.",
	},
	{
		Name:  "Vector",
		Mask:  1<<cayley.E0 | 1<<cayley.E1 | 1<<cayley.E2,
		Named: true,
		Doc: "Vector is a grade-1 element. In 2-D PGA it represents the line\n" +
			"E1·x + E2·y + E0 = 0.",
	},
	{
		Name:  "BiVector",
		Mask:  1<<cayley.E01 | 1<<cayley.E02 | 1<<cayley.E12,
		Named: true,
		Doc: "BiVector is a grade-2 element. In 2-D PGA it represents a point;\n" +
			"E12 is its weight and a zero E12 marks a direction (ideal point).",
	},
	{
		Name:  "TriVector",
		Mask:  1 << cayley.E012,
		Named: true,
		Doc:   "TriVector is a grade-3 element, a multiple of the pseudoscalar.",
	},
	{
		Name:  "Motor",
		Mask:  1<<cayley.S | 1<<cayley.E01 | 1<<cayley.E02 | 1<<cayley.E12,
		Named: true,
		Doc: "Motor is an even element: a scalar plus a bivector. Unit motors\n" +
			"represent rigid motions (rotations and translations).",
	},
	{
		Name:  "MultiVector",
		Mask:  0xFF,
		Named: true,
		Doc:   "MultiVector is the general element with all eight slots Real.",
	},
}

// fieldName returns the struct field for a blade, e.g. "E01".
func fieldName(i uint8) string {
	return strings.ToUpper(cayley.Names[i])
}

// typeName names an unnamed shape after its Real slots.
func typeName(mask uint8) string {
	if mask == 0 {
		return "Zero"
	}
	var b strings.Builder
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(mask, i) {
			b.WriteString(fieldName(i))
		}
	}
	return b.String()
}

// model is everything the template needs.
type model struct {
	Package string
	Types   []shapeType
	byMask  map[uint8]shapeType
}

// buildModel collects the named types plus every result shape of a
// binary operator applied to two named types.
func buildModel(pkg string) *model {
	m := &model{Package: pkg, byMask: make(map[uint8]shapeType)}
	for _, t := range namedTypes {
		m.Types = append(m.Types, t)
		m.byMask[t.Mask] = t
	}

	var derived []uint8
	seen := make(map[uint8]bool)
	for _, a := range namedTypes {
		for _, b := range namedTypes {
			for _, mask := range []uint8{a.Mask | b.Mask, cayley.ProductMask(a.Mask, b.Mask)} {
				if _, ok := m.byMask[mask]; ok || seen[mask] {
					continue
				}
				seen[mask] = true
				derived = append(derived, mask)
			}
		}
	}
	sort.Slice(derived, func(i, j int) bool { return derived[i] < derived[j] })

	for _, mask := range derived {
		t := shapeType{Name: typeName(mask), Mask: mask}
		if mask == 0 {
			t.Doc = "Zero is the empty shape: every slot is Absent."
		} else {
			t.Doc = fmt.Sprintf("%s holds the Real slots %s; every other slot is Absent.",
				t.Name, slotList(mask))
		}
		m.Types = append(m.Types, t)
		m.byMask[mask] = t
	}
	return m
}

// slotList renders "s, e0 and e012".
func slotList(mask uint8) string {
	var names []string
	for i := range uint8(cayley.NumSlots) {
		if cayley.Has(mask, i) {
			names = append(names, cayley.Names[i])
		}
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// lookup returns the generated type for a shape.
func (m *model) lookup(mask uint8) shapeType {
	t, ok := m.byMask[mask]
	if !ok {
		panic(fmt.Sprintf("shapegen: no type for shape %08b", mask))
	}
	return t
}

// Named returns the named types.
func (m *model) Named() []shapeType {
	return namedTypes
}
