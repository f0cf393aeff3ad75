package scene

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// ZoomFactor scales the camera's vertical height per scroll step.
const ZoomFactor = 0.9

// Camera marks the entity the world is viewed from. VerticalHeight is the
// world-space height that fills the viewport; the visible width follows
// from the viewport's aspect ratio.
type Camera struct {
	VerticalHeight float32
}

func (c Camera) attach(r *record) { r.camera = &c }

// Viewport is the size of the render target in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width over height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Empty reports whether either dimension is not positive.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Scroll is one step of the mouse wheel.
type Scroll int

const (
	// ScrollUp zooms in.
	ScrollUp Scroll = iota
	// ScrollDown zooms out.
	ScrollDown
)

// String returns "up" or "down".
func (s Scroll) String() string {
	switch s {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	default:
		return fmt.Sprintf("Scroll(%d)", int(s))
	}
}

// ViewAff3 returns the matrix that maps world space to viewport pixels for
// a camera placed at global. The camera's origin lands in the viewport
// center and y points up.
func (c Camera) ViewAff3(global GlobalTransform, vp Viewport) f32.Aff3 {
	s := float32(vp.Height) / c.VerticalHeight
	screen := f32.Aff3{
		s, 0, float32(vp.Width) / 2,
		0, -s, float32(vp.Height) / 2,
	}
	return mulAff3(screen, motorAff3(global.motor.Normalized().Reverse()))
}

// Camera returns the camera entity and its settings. When several
// entities carry a Camera the first spawned one wins.
func (w *World) Camera() (Entity, Camera, error) {
	e, r, err := w.camera()
	if err != nil {
		return 0, Camera{}, err
	}
	return e, *r.camera, nil
}

func (w *World) camera() (Entity, *record, error) {
	for _, e := range w.order {
		if r := w.records[e]; r.camera != nil {
			return e, r, nil
		}
	}
	return 0, nil, ErrNoCamera
}

// PanCamera drags the camera by a mouse movement of (dx, dy) pixels, with
// dy growing downward. The world follows the cursor: the camera moves the
// opposite way, scaled so one viewport height equals VerticalHeight.
func (w *World) PanCamera(dx, dy float32, vp Viewport) error {
	if vp.Empty() {
		return fmt.Errorf("pan camera: %w", ErrEmptyViewport)
	}
	_, r, err := w.camera()
	if err != nil {
		return fmt.Errorf("pan camera: %w", err)
	}
	h := r.camera.VerticalHeight
	mx := -dx / float32(vp.Width) * h * vp.Aspect()
	my := dy / float32(vp.Height) * h
	r.setLocal(r.local.Translate(mx, my))
	return nil
}

// ZoomCamera applies one scroll step: ScrollUp shrinks the vertical height
// by ZoomFactor and ScrollDown grows it by the inverse.
func (w *World) ZoomCamera(s Scroll) error {
	_, r, err := w.camera()
	if err != nil {
		return fmt.Errorf("zoom camera: %w", err)
	}
	switch s {
	case ScrollUp:
		r.camera.VerticalHeight *= ZoomFactor
	case ScrollDown:
		r.camera.VerticalHeight /= ZoomFactor
	default:
		return fmt.Errorf("zoom camera: unknown scroll %v", s)
	}
	return nil
}

// View returns the world-to-pixel matrix for the camera's current global
// transform. Call it after Propagate.
func (w *World) View(vp Viewport) (f32.Aff3, error) {
	if vp.Empty() {
		return f32.Aff3{}, fmt.Errorf("view: %w", ErrEmptyViewport)
	}
	e, r, err := w.camera()
	if err != nil {
		return f32.Aff3{}, fmt.Errorf("view: %w", err)
	}
	if !r.hasGlobal {
		w.log().Warn("scene: camera has no global transform, using local", "entity", e)
		return r.camera.ViewAff3(GlobalTransform{motor: r.local.Motor}, vp), nil
	}
	return r.camera.ViewAff3(r.global, vp), nil
}
