package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/pga"
)

func assertAff3(t *testing.T, want, got f32.Aff3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}

func TestCamera_Missing(t *testing.T) {
	w := NewWorld()
	w.Spawn(Identity(), Quad{Width: 1, Height: 1})

	_, _, err := w.Camera()
	assert.ErrorIs(t, err, ErrNoCamera)
	assert.ErrorIs(t, w.PanCamera(1, 1, Viewport{800, 600}), ErrNoCamera)
	assert.ErrorIs(t, w.ZoomCamera(ScrollUp), ErrNoCamera)
	_, err = w.View(Viewport{800, 600})
	assert.ErrorIs(t, err, ErrNoCamera)
}

func TestCamera_FirstWins(t *testing.T) {
	w := NewWorld()
	first := w.Spawn(Identity(), Camera{VerticalHeight: 2})
	w.Spawn(Identity(), Camera{VerticalHeight: 5})

	e, c, err := w.Camera()
	require.NoError(t, err)
	assert.Equal(t, first, e)
	assert.Equal(t, float32(2), c.VerticalHeight)
}

func TestPanCamera(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		vp     Viewport
		wantX  float32
		wantY  float32
	}{
		{"still", 0, 0, Viewport{800, 600}, 0, 0},
		{"right drags world right", 400, 0, Viewport{800, 600}, -4.0 / 3, 0},
		{"down drags world down", 0, 300, Viewport{800, 600}, 0, 1},
		{"square viewport", -100, -100, Viewport{200, 200}, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			cam := w.Spawn(Identity(), Camera{VerticalHeight: 2})
			require.NoError(t, w.PanCamera(tt.dx, tt.dy, tt.vp))

			local, err := w.Transform(cam)
			require.NoError(t, err)
			x, y := local.Position()
			assert.InDelta(t, tt.wantX, x, eps)
			assert.InDelta(t, tt.wantY, y, eps)
		})
	}
}

func TestPanCamera_Accumulates(t *testing.T) {
	w := NewWorld()
	cam := w.Spawn(At(1, 1), Camera{VerticalHeight: 2})
	vp := Viewport{Width: 100, Height: 100}
	for range 4 {
		require.NoError(t, w.PanCamera(-25, 0, vp))
	}
	assert.Equal(t, 1, w.Propagate())
	g, _ := w.GlobalTransform(cam)
	assertPosition(t, g, 3, 1)
}

func TestPanCamera_EmptyViewport(t *testing.T) {
	w := NewWorld()
	w.Spawn(Identity(), Camera{VerticalHeight: 2})
	assert.ErrorIs(t, w.PanCamera(1, 1, Viewport{0, 600}), ErrEmptyViewport)
	_, err := w.View(Viewport{800, -1})
	assert.ErrorIs(t, err, ErrEmptyViewport)
}

func TestZoomCamera(t *testing.T) {
	w := NewWorld()
	w.Spawn(Identity(), Camera{VerticalHeight: 2})

	require.NoError(t, w.ZoomCamera(ScrollUp))
	_, c, _ := w.Camera()
	assert.InDelta(t, 1.8, c.VerticalHeight, eps)

	require.NoError(t, w.ZoomCamera(ScrollDown))
	require.NoError(t, w.ZoomCamera(ScrollDown))
	_, c, _ = w.Camera()
	assert.InDelta(t, 2/0.9, c.VerticalHeight, eps)

	assert.Error(t, w.ZoomCamera(Scroll(7)))
}

func TestScroll_String(t *testing.T) {
	assert.Equal(t, "up", ScrollUp.String())
	assert.Equal(t, "down", ScrollDown.String())
	assert.Equal(t, "Scroll(7)", Scroll(7).String())
}

func TestViewport_Aspect(t *testing.T) {
	assert.InDelta(t, 4.0/3, Viewport{800, 600}.Aspect(), eps)
	assert.True(t, Viewport{}.Empty())
	assert.False(t, Viewport{1, 1}.Empty())
}

func TestViewAff3(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	tests := []struct {
		name   string
		camera Transform
		height float32
		x, y   float32
		px, py float32
	}{
		{"origin to center", Identity(), 2, 0, 0, 400, 300},
		{"top right", Identity(), 2, 1, 1, 700, 0},
		{"quad center", Identity(), 2, -0.6, 0, 220, 300},
		{"zoomed out", Identity(), 4, 1, 1, 550, 150},
		{"moved camera", At(1, 0), 2, 1, 0, 400, 300},
		{"rotated camera", AtAngle(0, 0, math.Pi/2), 2, 0, 1, 700, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.Spawn(tt.camera, Camera{VerticalHeight: tt.height})
			w.Propagate()

			m, err := w.View(vp)
			require.NoError(t, err)
			px, py := ApplyAff3(m, tt.x, tt.y)
			assert.InDelta(t, tt.px, px, 1e-3)
			assert.InDelta(t, tt.py, py, 1e-3)
		})
	}
}

func TestView_BeforePropagate(t *testing.T) {
	w := NewWorld()
	w.Spawn(At(1, 0), Camera{VerticalHeight: 2})
	m, err := w.View(Viewport{800, 600})
	require.NoError(t, err)
	px, py := ApplyAff3(m, 1, 0)
	assert.InDelta(t, 400, px, 1e-3)
	assert.InDelta(t, 300, py, 1e-3)
}

func TestGlobalTransform_Aff3(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		want f32.Aff3
	}{
		{"identity", Identity(), f32.Aff3{1, 0, 0, 0, 1, 0}},
		{"translate", At(2, -3), f32.Aff3{1, 0, 2, 0, 1, -3}},
		{"quarter turn", AtAngle(2, 0, math.Pi/2), f32.Aff3{0, -1, 2, 1, 0, 0}},
		{"half turn", AtAngle(0, 0, math.Pi), f32.Aff3{-1, 0, 0, 0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GlobalTransform{motor: tt.t.Motor}
			assertAff3(t, tt.want, g.Aff3())
		})
	}
}

func TestAff3_MatchesMotor(t *testing.T) {
	g := GlobalTransform{motor: AtAngle(-1.5, 0.25, 0.8).Motor}
	m := g.Aff3()
	p := g.Apply(pga.Pt(0.3, -2))
	x, y := ApplyAff3(m, 0.3, -2)
	assert.InDelta(t, p.X(), x, 1e-4)
	assert.InDelta(t, p.Y(), y, 1e-4)
}

func TestMulAff3(t *testing.T) {
	scale := f32.Aff3{2, 0, 0, 0, 2, 0}
	shift := f32.Aff3{1, 0, 5, 0, 1, 7}
	// shift, then scale
	x, y := ApplyAff3(mulAff3(scale, shift), 1, 1)
	assert.Equal(t, float32(12), x)
	assert.Equal(t, float32(16), y)
}
