package cayley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSquares(t *testing.T) {
	// e0 is null, e1 and e2 square to one, bivectors e12 and the
	// pseudoscalar behave as in R(2,0,1).
	assert.Equal(t, Entry{1, S}, Table[S][S])
	assert.Equal(t, Entry{}, Table[E0][E0])
	assert.Equal(t, Entry{1, S}, Table[E1][E1])
	assert.Equal(t, Entry{1, S}, Table[E2][E2])
	assert.Equal(t, Entry{}, Table[E01][E01])
	assert.Equal(t, Entry{}, Table[E02][E02])
	assert.Equal(t, Entry{-1, S}, Table[E12][E12])
	assert.Equal(t, Entry{}, Table[E012][E012])
}

func TestTableGradeClosure(t *testing.T) {
	for l := range uint8(NumSlots) {
		for r := range uint8(NumSlots) {
			e := Table[l][r]
			if e.Sign == 0 {
				continue
			}
			// The grade of a blade product has the parity of the grade sum.
			assert.Equal(t, (Grades[l]+Grades[r])%2, Grades[e.Out]%2,
				"%s*%s -> %s", Names[l], Names[r], Names[e.Out])
		}
	}
}

func TestTableAnticommutes(t *testing.T) {
	vectors := []uint8{E0, E1, E2}
	for _, a := range vectors {
		for _, b := range vectors {
			if a == b {
				continue
			}
			ab, ba := Table[a][b], Table[b][a]
			require.Equal(t, ab.Out, ba.Out)
			assert.Equal(t, -ab.Sign, ba.Sign, "%s %s", Names[a], Names[b])
		}
	}
}

func TestTermsCount(t *testing.T) {
	// 64 pairs minus the 16 whose blades both contain e0.
	total := 0
	for o := range NumSlots {
		total += len(Terms[o])
	}
	assert.Equal(t, 48, total)

	want := [NumSlots]int{4, 8, 4, 4, 8, 8, 4, 8}
	for o := range NumSlots {
		assert.Len(t, Terms[o], want[o], Names[o])
	}
}

func TestProductMask(t *testing.T) {
	const (
		scalar      = 1 << S
		vector      = 1<<E0 | 1<<E1 | 1<<E2
		bivector    = 1<<E01 | 1<<E02 | 1<<E12
		trivector   = 1 << E012
		motor       = scalar | bivector
		multivector = 0xFF
	)
	tests := []struct {
		name        string
		left, right uint8
		want        uint8
	}{
		{"scalar*scalar", scalar, scalar, scalar},
		{"scalar*vector", scalar, vector, vector},
		{"vector*vector", vector, vector, motor},
		{"vector*bivector", vector, bivector, vector | trivector},
		{"bivector*bivector", bivector, bivector, scalar | 1<<E01 | 1<<E02},
		{"bivector*trivector", bivector, trivector, 1 << E0},
		{"trivector*trivector", trivector, trivector, 0},
		{"motor*motor", motor, motor, motor},
		{"multivector*trivector", multivector, trivector, 1<<E0 | 1<<E01 | 1<<E02 | 1<<E012},
		{"multivector*multivector", multivector, multivector, multivector},
		{"empty", 0, multivector, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductMask(tt.left, tt.right))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(0))
	assert.Equal(t, 3, Count(1<<E0|1<<E1|1<<E2))
	assert.Equal(t, NumSlots, Count(0xFF))
}
