package pga

import (
	"slices"
	"testing"
)

func TestSlot_StringAndGrade(t *testing.T) {
	tests := []struct {
		slot  Slot
		name  string
		grade int
	}{
		{SlotS, "s", 0},
		{SlotE0, "e0", 1},
		{SlotE1, "e1", 1},
		{SlotE2, "e2", 1},
		{SlotE01, "e01", 2},
		{SlotE02, "e02", 2},
		{SlotE12, "e12", 2},
		{SlotE012, "e012", 3},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.slot) != i {
				t.Errorf("slot %s has index %d, want %d", tt.name, tt.slot, i)
			}
			if got := tt.slot.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.slot.Grade(); got != tt.grade {
				t.Errorf("Grade() = %d, want %d", got, tt.grade)
			}
		})
	}
}

func TestShape_Named(t *testing.T) {
	tests := []struct {
		shape Shape
		slots []Slot
		name  string
	}{
		{ShapeZero, nil, "Zero"},
		{ShapeScalar, []Slot{SlotS}, "Scalar"},
		{ShapeVector, []Slot{SlotE0, SlotE1, SlotE2}, "Vector"},
		{ShapeBiVector, []Slot{SlotE01, SlotE02, SlotE12}, "BiVector"},
		{ShapeTriVector, []Slot{SlotE012}, "TriVector"},
		{ShapeMotor, []Slot{SlotS, SlotE01, SlotE02, SlotE12}, "Motor"},
		{ShapeMultiVector, Slots[:], "MultiVector"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeOf(tt.slots...); got != tt.shape {
				t.Errorf("ShapeOf(%v) = %v, want %v", tt.slots, got, tt.shape)
			}
			if got := tt.shape.Slots(); !slices.Equal(got, tt.slots) {
				t.Errorf("Slots() = %v, want %v", got, tt.slots)
			}
			if got := tt.shape.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestShape_UnionAndContains(t *testing.T) {
	u := ShapeVector.Union(ShapeScalar)
	if u != ShapeOf(SlotS, SlotE0, SlotE1, SlotE2) {
		t.Errorf("Vector ∪ Scalar = %v", u)
	}
	if !u.Contains(ShapeVector) || !u.Contains(ShapeScalar) {
		t.Error("union should contain both operands")
	}
	if ShapeVector.Contains(u) {
		t.Error("Vector should not contain Vector ∪ Scalar")
	}
	if !ShapeMotor.Contains(ShapeBiVector) {
		t.Error("Motor should contain BiVector")
	}
	if !ShapeVector.Contains(ShapeZero) {
		t.Error("every shape contains Zero")
	}
	if got := u.String(); got != "{s, e0, e1, e2}" {
		t.Errorf("String() = %q", got)
	}
}

func TestShape_ProductShape(t *testing.T) {
	tests := []struct {
		name string
		l, r Shape
		want Shape
	}{
		{"scalar*vector", ShapeScalar, ShapeVector, ShapeVector},
		{"vector*vector", ShapeVector, ShapeVector, ShapeMotor},
		{"bivector*bivector", ShapeBiVector, ShapeBiVector, ShapeOf(SlotS, SlotE01, SlotE02)},
		{"vector*bivector", ShapeVector, ShapeBiVector, ShapeOf(SlotE0, SlotE1, SlotE2, SlotE012)},
		{"vector*trivector", ShapeVector, ShapeTriVector, ShapeOf(SlotE01, SlotE02)},
		{"trivector*trivector", ShapeTriVector, ShapeTriVector, ShapeZero},
		{"motor*motor", ShapeMotor, ShapeMotor, ShapeMotor},
		{"multivector*multivector", ShapeMultiVector, ShapeMultiVector, ShapeMultiVector},
		{"zero*multivector", ShapeZero, ShapeMultiVector, ShapeZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.ProductShape(tt.r); got != tt.want {
				t.Errorf("%v.ProductShape(%v) = %v, want %v", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestSlot_OutOfRange(t *testing.T) {
	s := Slot(NumSlots + 3)
	if got := s.Grade(); got != -1 {
		t.Errorf("Grade() = %d, want -1", got)
	}
	if got := s.String(); got != "Slot(11)" {
		t.Errorf("String() = %q, want Slot(11)", got)
	}
}
