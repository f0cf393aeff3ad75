package pga

import (
	"math"
	"testing"
)

func TestComponent_Zero(t *testing.T) {
	var c Component
	if c.Tag() != Absent {
		t.Errorf("zero Component tag = %v, want Absent", c.Tag())
	}
	if c.Float() != 0 {
		t.Errorf("zero Component Float() = %v, want 0", c.Float())
	}
	if c != AbsentComponent() {
		t.Error("zero Component should equal AbsentComponent()")
	}
}

func TestComponent_RealZeroIsReal(t *testing.T) {
	c := RealComponent(0)
	if !c.IsReal() {
		t.Error("RealComponent(0) should stay Real")
	}
	if c == AbsentComponent() {
		t.Error("RealComponent(0) must not compare equal to AbsentComponent()")
	}
}

func TestComponent_Neg(t *testing.T) {
	tests := []struct {
		name string
		in   Component
		want Component
	}{
		{"absent", AbsentComponent(), AbsentComponent()},
		{"positive", RealComponent(3), RealComponent(-3)},
		{"negative", RealComponent(-2.5), RealComponent(2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Neg(); got != tt.want {
				t.Errorf("%v.Neg() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComponent_Add(t *testing.T) {
	tests := []struct {
		name string
		l, r Component
		want Component
	}{
		{"absent+absent", AbsentComponent(), AbsentComponent(), AbsentComponent()},
		{"absent+real", AbsentComponent(), RealComponent(4), RealComponent(4)},
		{"real+absent", RealComponent(5), AbsentComponent(), RealComponent(5)},
		{"real+real", RealComponent(5), RealComponent(4), RealComponent(9)},
		{"real+real cancel", RealComponent(5), RealComponent(-5), RealComponent(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Add(tt.r); got != tt.want {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestComponent_Sub(t *testing.T) {
	tests := []struct {
		name string
		l, r Component
		want Component
	}{
		{"absent-absent", AbsentComponent(), AbsentComponent(), AbsentComponent()},
		{"absent-real", AbsentComponent(), RealComponent(4), RealComponent(-4)},
		{"real-absent", RealComponent(5), AbsentComponent(), RealComponent(5)},
		{"real-real", RealComponent(5), RealComponent(4), RealComponent(1)},
		{"real-real equal", RealComponent(5), RealComponent(5), RealComponent(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Sub(tt.r); got != tt.want {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestComponent_Mul(t *testing.T) {
	tests := []struct {
		name string
		l, r Component
		want Component
	}{
		{"absent*absent", AbsentComponent(), AbsentComponent(), AbsentComponent()},
		{"absent*real", AbsentComponent(), RealComponent(4), AbsentComponent()},
		{"real*absent", RealComponent(5), AbsentComponent(), AbsentComponent()},
		{"real*real", RealComponent(5), RealComponent(4), RealComponent(20)},
		{"real*zero", RealComponent(5), RealComponent(0), RealComponent(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Mul(tt.r); got != tt.want {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.l, tt.r, got, tt.want)
			}
		})
	}
}

func TestComponent_NaNPropagates(t *testing.T) {
	nan := RealComponent(float32(math.NaN()))
	got := nan.Add(RealComponent(1))
	if !got.IsReal() || !math.IsNaN(float64(got.Float())) {
		t.Errorf("NaN + 1 = %v, want Real(NaN)", got)
	}
	inf := RealComponent(float32(math.Inf(1)))
	got = inf.Sub(inf)
	if !math.IsNaN(float64(got.Float())) {
		t.Errorf("Inf - Inf = %v, want NaN", got)
	}
}

func TestComponent_String(t *testing.T) {
	if got := AbsentComponent().String(); got != "Absent" {
		t.Errorf("Absent String() = %q", got)
	}
	if got := RealComponent(1.5).String(); got != "1.5" {
		t.Errorf("Real(1.5) String() = %q", got)
	}
	if got := Real.String(); got != "Real" {
		t.Errorf("Real.String() = %q", got)
	}
}
