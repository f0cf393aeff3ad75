package cayley

import "math/bits"

// NumSlots is the number of basis blades in R(2,0,1).
const NumSlots = 8

// Blade indices.
const (
	S uint8 = iota
	E0
	E1
	E2
	E01
	E02
	E12
	E012
)

// Names are the blade names in index order.
var Names = [NumSlots]string{"s", "e0", "e1", "e2", "e01", "e02", "e12", "e012"}

// Grades are the blade grades in index order.
var Grades = [NumSlots]int{0, 1, 1, 1, 2, 2, 2, 3}

// Entry is the product of two basis blades: Sign times blade Out.
// A zero Sign means the product vanishes because it contains e0·e0.
type Entry struct {
	Sign int8
	Out  uint8
}

// Table[l][r] is the geometric product of blade l with blade r.
var Table = [NumSlots][NumSlots]Entry{
	{{1, S}, {1, E0}, {1, E1}, {1, E2}, {1, E01}, {1, E02}, {1, E12}, {1, E012}},
	{{1, E0}, {}, {1, E01}, {1, E02}, {}, {}, {1, E012}, {}},
	{{1, E1}, {-1, E01}, {1, S}, {1, E12}, {-1, E0}, {-1, E012}, {1, E2}, {-1, E02}},
	{{1, E2}, {-1, E02}, {-1, E12}, {1, S}, {1, E012}, {-1, E0}, {-1, E1}, {1, E01}},
	{{1, E01}, {}, {1, E0}, {1, E012}, {}, {}, {1, E02}, {}},
	{{1, E02}, {}, {-1, E012}, {1, E0}, {}, {}, {-1, E01}, {}},
	{{1, E12}, {1, E012}, {-1, E2}, {1, E1}, {-1, E02}, {1, E01}, {-1, S}, {-1, E0}},
	{{1, E012}, {}, {-1, E02}, {1, E01}, {}, {}, {-1, E0}, {}},
}

// Term is one signed pairwise product contributing to an output blade.
type Term struct {
	Left  uint8
	Right uint8
	Sign  int8
}

// Terms[out] lists every non-vanishing product that lands on blade out,
// ordered by left blade and then right blade.
var Terms [NumSlots][]Term

func init() {
	for l := range uint8(NumSlots) {
		for r := range uint8(NumSlots) {
			e := Table[l][r]
			if e.Sign == 0 {
				continue
			}
			Terms[e.Out] = append(Terms[e.Out], Term{Left: l, Right: r, Sign: e.Sign})
		}
	}
}

// Has reports whether blade i is set in mask.
func Has(mask, i uint8) bool {
	return mask&(1<<i) != 0
}

// Live reports whether both factors of t are present in the given shapes.
func (t Term) Live(left, right uint8) bool {
	return Has(left, t.Left) && Has(right, t.Right)
}

// ProductMask returns the shape of the product of two shapes: an output
// blade is present iff at least one of its terms has both factors present.
func ProductMask(left, right uint8) uint8 {
	var out uint8
	for o := range uint8(NumSlots) {
		for _, t := range Terms[o] {
			if t.Live(left, right) {
				out |= 1 << o
				break
			}
		}
	}
	return out
}

// Count returns the number of blades present in mask.
func Count(mask uint8) int {
	return bits.OnesCount8(mask)
}
