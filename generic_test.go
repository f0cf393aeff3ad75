package pga

import (
	"math"
	"testing"
)

// primes fills Real slots with distinct small integers so that every
// product in the tests is exact in float32.
func primes(shape Shape, offset int) Generic {
	p := [...]float32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}
	var v [NumSlots]float32
	for i := range v {
		v[i] = p[(i+offset)%len(p)]
	}
	return NewGeneric(shape, v)
}

// allShapes enumerates the 256 possible shapes.
func allShapes() []Shape {
	out := make([]Shape, 0, 256)
	for i := range 256 {
		out = append(out, Shape(i))
	}
	return out
}

var (
	regressionA = NewGeneric(ShapeMultiVector, [NumSlots]float32{2, 3, 5, 7, 11, 13, 17, 19})
	regressionB = NewGeneric(ShapeMultiVector, [NumSlots]float32{23, 29, 31, 37, 41, 43, 47, 53})
	regressionP = NewGeneric(ShapeMultiVector, [NumSlots]float32{-339, -1351, 477, -57, 1477, -741, 453, 1253})
)

func TestGeneric_NewClearsAbsentSlots(t *testing.T) {
	g := NewGeneric(ShapeVector, [NumSlots]float32{1, 2, 3, 4, 5, 6, 7, 8})
	want := [NumSlots]float32{0, 2, 3, 4, 0, 0, 0, 0}
	if got := g.Values(); got != want {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if g.Component(SlotS).IsReal() {
		t.Error("slot s of a Vector should be Absent")
	}
	if got := g.Get(SlotE012); got != 0 {
		t.Errorf("Absent slot reads %v, want 0", got)
	}
}

func TestGeneric_FromComponents(t *testing.T) {
	var c [NumSlots]Component
	c[SlotE1] = RealComponent(0)
	c[SlotE12] = RealComponent(4)
	g := FromComponents(c)
	if g.Shape() != ShapeOf(SlotE1, SlotE12) {
		t.Errorf("Shape() = %v, want {e1, e12}", g.Shape())
	}
	if g.Components() != c {
		t.Errorf("Components() = %v, want %v", g.Components(), c)
	}
}

func TestGeneric_NegInvolution(t *testing.T) {
	for _, sh := range allShapes() {
		a := primes(sh, 0)
		got := a.Neg().Neg()
		if !got.Identical(a) {
			t.Fatalf("shape %v: -(-a) = %v, want %v", sh, got, a)
		}
		if a.Neg().Shape() != sh {
			t.Fatalf("shape %v: Neg changed shape to %v", sh, a.Neg().Shape())
		}
	}
}

func TestGeneric_AddCommutativeAssociative(t *testing.T) {
	shapes := []Shape{ShapeScalar, ShapeVector, ShapeBiVector, ShapeTriVector, ShapeMotor, ShapeMultiVector, ShapeOf(SlotE0, SlotE012)}
	for _, sa := range shapes {
		for _, sb := range shapes {
			for _, sc := range shapes {
				a, b, c := primes(sa, 0), primes(sb, 3), primes(sc, 7)
				if !a.Add(b).Identical(b.Add(a)) {
					t.Errorf("%v + %v not commutative", sa, sb)
				}
				if !a.Add(b).Add(c).Identical(a.Add(b.Add(c))) {
					t.Errorf("(%v + %v) + %v not associative", sa, sb, sc)
				}
			}
		}
	}
}

func TestGeneric_AddNegIsZeroOfSameShape(t *testing.T) {
	for _, sh := range allShapes() {
		a := primes(sh, 2)
		z := a.Add(a.Neg())
		if z.Shape() != sh {
			t.Fatalf("a + (-a) has shape %v, want %v", z.Shape(), sh)
		}
		if z.Values() != [NumSlots]float32{} {
			t.Fatalf("a + (-a) = %v, want all zero", z)
		}
	}
}

func TestGeneric_SubIsAddNeg(t *testing.T) {
	for _, sa := range allShapes() {
		for _, sb := range []Shape{ShapeZero, ShapeScalar, ShapeVector, ShapeBiVector, ShapeMotor, ShapeMultiVector} {
			a, b := primes(sa, 0), primes(sb, 5)
			if !a.Sub(b).Identical(a.Add(b.Neg())) {
				t.Fatalf("%v - %v != %v + (-%v)", sa, sb, sa, sb)
			}
		}
	}
}

func TestGeneric_LinearShapeIsUnion(t *testing.T) {
	for _, sa := range allShapes() {
		for _, sb := range []Shape{ShapeZero, ShapeScalar, ShapeVector, ShapeBiVector, ShapeTriVector, ShapeMultiVector} {
			a, b := primes(sa, 0), primes(sb, 1)
			if got := a.Add(b).Shape(); got != sa.Union(sb) {
				t.Fatalf("shape(%v + %v) = %v, want %v", sa, sb, got, sa.Union(sb))
			}
			if got := a.Sub(b).Shape(); got != sa.Union(sb) {
				t.Fatalf("shape(%v - %v) = %v, want %v", sa, sb, got, sa.Union(sb))
			}
		}
	}
}

func TestGeneric_ProductShapeLaw(t *testing.T) {
	for _, sa := range allShapes() {
		for _, sb := range allShapes() {
			got := primes(sa, 0).Mul(primes(sb, 4)).Shape()
			if want := sa.ProductShape(sb); got != want {
				t.Fatalf("shape(%v * %v) = %v, want %v", sa, sb, got, want)
			}
		}
	}
}

func TestGeneric_MulRegression(t *testing.T) {
	got := regressionA.Mul(regressionB)
	if !got.Identical(regressionP) {
		t.Errorf("A*B = %v, want %v", got, regressionP)
	}
}

func TestGeneric_MulScalarIdentity(t *testing.T) {
	one := NewGeneric(ShapeScalar, [NumSlots]float32{SlotS: 1})
	for _, sh := range allShapes() {
		a := primes(sh, 1)
		if got := one.Mul(a); !got.Identical(a) {
			t.Fatalf("1 * %v = %v", a, got)
		}
		if got := a.Mul(one); !got.Identical(a) {
			t.Fatalf("%v * 1 = %v", a, got)
		}
	}
}

func TestGeneric_MulAssociative(t *testing.T) {
	a := primes(ShapeMultiVector, 0)
	b := primes(ShapeMultiVector, 5)
	c := primes(ShapeMultiVector, 9)
	l := a.Mul(b).Mul(c)
	r := a.Mul(b.Mul(c))
	if !l.Identical(r) {
		t.Errorf("(ab)c = %v, a(bc) = %v", l, r)
	}
}

func TestGeneric_NumericZeroStaysReal(t *testing.T) {
	// e1 and e2 are orthogonal lines through the origin: their product has a
	// zero scalar part, but the slot is still Real.
	a := NewGeneric(ShapeVector, [NumSlots]float32{SlotE1: 1})
	b := NewGeneric(ShapeVector, [NumSlots]float32{SlotE2: 1})
	p := a.Mul(b)
	if !p.Component(SlotS).IsReal() {
		t.Error("scalar part of e1*e2 should be Real")
	}
	if p.Get(SlotS) != 0 || p.Get(SlotE12) != 1 {
		t.Errorf("e1*e2 = %v, want {s:0 e12:1}", p)
	}
}

func TestGeneric_WidenAndEqual(t *testing.T) {
	v := NewGeneric(ShapeVector, [NumSlots]float32{SlotE0: 1, SlotE1: 2, SlotE2: 3})
	w := v.Widen(ShapeMultiVector)
	if w.Shape() != ShapeMultiVector {
		t.Errorf("Widen shape = %v", w.Shape())
	}
	if !w.Equal(v) || !v.Equal(w) {
		t.Error("a widened value should equal the original")
	}
	if w.Identical(v) {
		t.Error("a widened value is not identical to the original")
	}
	if narrow := w.Widen(ShapeScalar); narrow.Shape() != ShapeMultiVector {
		t.Error("Widen must never drop slots")
	}
	u := NewGeneric(ShapeVector, [NumSlots]float32{SlotE0: 1, SlotE1: 2, SlotE2: 4})
	if v.Equal(u) {
		t.Error("values differing in e2 compared equal")
	}
}

func TestGeneric_NaNPropagates(t *testing.T) {
	nan := float32(math.NaN())
	a := NewGeneric(ShapeVector, [NumSlots]float32{SlotE1: nan})
	b := NewGeneric(ShapeOf(SlotE2), [NumSlots]float32{SlotE2: 1})
	p := a.Mul(b)
	if !math.IsNaN(float64(p.Get(SlotE12))) {
		t.Errorf("e12 = %v, want NaN", p.Get(SlotE12))
	}
	// The e1·e1 term is eliminated because b has no e1 slot, so the NaN
	// never reaches the scalar part.
	if p.Get(SlotS) != 0 {
		t.Errorf("s = %v, want 0", p.Get(SlotS))
	}
}

func TestGeneric_String(t *testing.T) {
	g := NewGeneric(ShapeVector, [NumSlots]float32{SlotE0: 1, SlotE1: -2, SlotE2: 0.5})
	if got, want := g.String(), "{e0:1 e1:-2 e2:0.5}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := (Generic{}).String(); got != "{}" {
		t.Errorf("zero String() = %q", got)
	}
}

func TestGeneric_OutOfRangeSlot(t *testing.T) {
	g := primes(ShapeMultiVector, 0)
	s := Slot(NumSlots)
	if got := g.Get(s); got != 0 {
		t.Errorf("Get(%v) = %v, want 0", s, got)
	}
	if g.Component(s).IsReal() {
		t.Errorf("Component(%v) should be Absent", s)
	}
	if got := (MultiVector{S: 1}).Get(s); got != g.Get(s) {
		t.Errorf("typed Get(%v) = %v, generic Get = %v", s, got, g.Get(s))
	}
}
