package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/pga/scene"
)

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

// render rasterizes every drawable in w as seen from its camera.
// w must have been propagated.
func render(w *scene.World, vp scene.Viewport, segments int, outlines *scene.OutlineCache) (*image.RGBA, error) {
	view, err := w.View(vp)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(vp.Width, vp.Height)
	for _, d := range w.Drawables() {
		r.Reset(vp.Width, vp.Height)
		for i, p := range d.Place(outlines.Outline(d.Shape, segments)) {
			px, py := scene.ApplyAff3(view, p.X(), p.Y())
			if i == 0 {
				r.MoveTo(px, py)
			} else {
				r.LineTo(px, py)
			}
		}
		r.ClosePath()
		r.Draw(dst, dst.Bounds(), image.NewUniform(d.Material.RGBA()), image.Point{})
	}
	return dst, nil
}
