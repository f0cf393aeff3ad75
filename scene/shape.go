package scene

import (
	"image/color"
	"math"

	"github.com/gogpu/pga"
)

// Shape is drawable geometry in an entity's local space.
type Shape interface {
	Component

	// Outline returns the boundary as a closed polygon, counter-clockwise.
	// Curved shapes are approximated with the given number of segments.
	Outline(segments int) []pga.Point
}

// Quad is an axis-aligned rectangle centered on the local origin.
type Quad struct {
	Width, Height float32
}

func (q Quad) attach(r *record) { r.shape = q }

// Outline returns the four corners. segments is ignored.
func (q Quad) Outline(int) []pga.Point {
	w, h := q.Width/2, q.Height/2
	return []pga.Point{
		pga.Pt(-w, -h),
		pga.Pt(w, -h),
		pga.Pt(w, h),
		pga.Pt(-w, h),
	}
}

// Circle is a disc centered on the local origin.
type Circle struct {
	Radius float32
}

// MinCircleSegments is the fewest segments Circle.Outline produces.
const MinCircleSegments = 8

func (c Circle) attach(r *record) { r.shape = c }

// Outline returns a regular polygon inscribed in the circle. The first
// vertex lies on the positive x axis.
func (c Circle) Outline(segments int) []pga.Point {
	segments = max(segments, MinCircleSegments)
	pts := make([]pga.Point, segments)
	edge := pga.Pt(c.Radius, 0)
	for i := range pts {
		angle := 2 * math.Pi * float32(i) / float32(segments)
		pts[i] = pga.Rotor(angle).Apply(edge)
	}
	return pts
}

// Material is a flat fill color with channels in [0, 1].
type Material struct {
	Red, Green, Blue float32
}

func (m Material) attach(r *record) { r.material = &m }

// RGBA converts the material to an opaque 8-bit color. Channels outside
// [0, 1] are clamped.
func (m Material) RGBA() color.RGBA {
	return color.RGBA{R: channel(m.Red), G: channel(m.Green), B: channel(m.Blue), A: 0xff}
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// Drawable is one shaped entity ready to render.
type Drawable struct {
	Entity    Entity
	Shape     Shape
	Material  Material
	Transform GlobalTransform
}

// WorldOutline returns the shape's outline in world space.
func (d Drawable) WorldOutline(segments int) []pga.Point {
	return d.Place(d.Shape.Outline(segments))
}

// Place maps local-space points into world space. local is not modified.
func (d Drawable) Place(local []pga.Point) []pga.Point {
	out := make([]pga.Point, len(local))
	for i, p := range local {
		out[i] = d.Transform.Apply(p)
	}
	return out
}

// Bounds returns the world-space axis-aligned bounding box of the outline.
func (d Drawable) Bounds(segments int) (minX, minY, maxX, maxY float32) {
	pts := d.WorldOutline(segments)
	minX, minY = float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY = float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, p := range pts {
		x, y := p.X(), p.Y()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return minX, minY, maxX, maxY
}
