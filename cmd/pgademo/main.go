// Command pgademo renders a small scene positioned with 2-D PGA motors.
//
// It spawns a camera, an orange quad and a violet circle, applies a
// scripted camera drag and zoom, and writes the frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/pga"
	"github.com/gogpu/pga/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pgademo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("pgademo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file")
	fs.IntVar(&cfg.Segments, "segments", cfg.Segments, "circle segments")
	fs.IntVar(&cfg.Zoom, "zoom", cfg.Zoom, "scroll steps, positive zooms in")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log propagation")
	panX := fs.Float64("pan-x", float64(cfg.PanX), "camera drag in pixels, x")
	panY := fs.Float64("pan-y", float64(cfg.PanY), "camera drag in pixels, y (down)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.PanX, cfg.PanY = float32(*panX), float32(*panY)
	if err := cfg.validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	pga.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	vp := scene.Viewport{Width: cfg.Width, Height: cfg.Height}
	w := demoWorld()
	if err := applyInput(w, cfg, vp); err != nil {
		return err
	}
	w.Propagate()

	img, err := render(w, vp, cfg.Segments, scene.NewOutlineCache(0))
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	pga.Logger().Info("demo saved", "path", cfg.Output, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// demoWorld builds the startup scene.
func demoWorld() *scene.World {
	w := scene.NewWorld()
	w.Spawn(scene.Identity(), scene.Camera{VerticalHeight: 2})
	w.Spawn(scene.At(-0.6, 0),
		scene.Quad{Width: 1, Height: 1},
		scene.Material{Red: 1, Green: 0.2, Blue: 0},
	)
	w.Spawn(scene.At(0.6, 0),
		scene.Circle{Radius: 0.5},
		scene.Material{Red: 0.2, Green: 0, Blue: 1},
	)
	return w
}

// applyInput replays the configured drag and scroll steps.
func applyInput(w *scene.World, cfg Config, vp scene.Viewport) error {
	if cfg.PanX != 0 || cfg.PanY != 0 {
		if err := w.PanCamera(cfg.PanX, cfg.PanY, vp); err != nil {
			return err
		}
	}
	step := scene.ScrollUp
	n := cfg.Zoom
	if n < 0 {
		step, n = scene.ScrollDown, -n
	}
	for range n {
		if err := w.ZoomCamera(step); err != nil {
			return err
		}
	}
	return nil
}
