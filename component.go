package pga

import "strconv"

// Tag says whether a slot stores a value.
type Tag uint8

const (
	// Absent marks a slot that is algebraically zero. It has no storage.
	Absent Tag = iota
	// Real marks a slot that stores one float32.
	Real
)

// String returns "Absent" or "Real".
func (t Tag) String() string {
	switch t {
	case Absent:
		return "Absent"
	case Real:
		return "Real"
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}

// Component is the content of a single slot: either Absent or Real(v).
//
// The zero Component is Absent. Components are only built through
// AbsentComponent and RealComponent, so no third state can exist.
type Component struct {
	tag Tag
	v   float32
}

// AbsentComponent returns the statically zero component.
func AbsentComponent() Component {
	return Component{}
}

// RealComponent returns a component storing v.
// A Real component holding 0 is still Real.
func RealComponent(v float32) Component {
	return Component{tag: Real, v: v}
}

// Tag returns the component's tag.
func (c Component) Tag() Tag {
	return c.tag
}

// IsReal reports whether the component stores a value.
func (c Component) IsReal() bool {
	return c.tag == Real
}

// Float returns the stored value. Absent reads as exactly 0.
func (c Component) Float() float32 {
	if c.tag == Real {
		return c.v
	}
	return 0
}

// pair packs two tags so that a single switch covers all four combinations.
func pair(l, r Tag) uint8 {
	return uint8(l)<<1 | uint8(r)
}

const (
	absentAbsent = uint8(Absent)<<1 | uint8(Absent)
	absentReal   = uint8(Absent)<<1 | uint8(Real)
	realAbsent   = uint8(Real)<<1 | uint8(Absent)
	realReal     = uint8(Real)<<1 | uint8(Real)
)

// Neg returns -c. Negating Absent yields Absent.
func (c Component) Neg() Component {
	switch c.tag {
	case Absent:
		return c
	case Real:
		return RealComponent(-c.v)
	}
	panic("pga: invalid component tag " + c.tag.String())
}

// Add returns c + o.
//
//	Absent + Absent = Absent
//	Absent + Real   = Real(o)
//	Real   + Absent = Real(c)
//	Real   + Real   = Real(c+o)
func (c Component) Add(o Component) Component {
	switch pair(c.tag, o.tag) {
	case absentAbsent:
		return c
	case absentReal:
		return o
	case realAbsent:
		return c
	case realReal:
		return RealComponent(c.v + o.v)
	}
	panic("pga: invalid component tags " + c.tag.String() + ", " + o.tag.String())
}

// Sub returns c - o.
//
//	Absent - Absent = Absent
//	Absent - Real   = Real(-o)
//	Real   - Absent = Real(c)
//	Real   - Real   = Real(c-o)
func (c Component) Sub(o Component) Component {
	switch pair(c.tag, o.tag) {
	case absentAbsent:
		return c
	case absentReal:
		return RealComponent(-o.v)
	case realAbsent:
		return c
	case realReal:
		return RealComponent(c.v - o.v)
	}
	panic("pga: invalid component tags " + c.tag.String() + ", " + o.tag.String())
}

// Mul returns c·o. The product is Absent if either factor is Absent.
func (c Component) Mul(o Component) Component {
	switch pair(c.tag, o.tag) {
	case absentAbsent, absentReal:
		return c
	case realAbsent:
		return o
	case realReal:
		return RealComponent(c.v * o.v)
	}
	panic("pga: invalid component tags " + c.tag.String() + ", " + o.tag.String())
}

// String returns "Absent" or the stored value.
func (c Component) String() string {
	if c.tag == Real {
		return strconv.FormatFloat(float64(c.v), 'g', -1, 32)
	}
	return "Absent"
}
