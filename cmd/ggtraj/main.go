// Command ggtraj generates a synthetic object-trajectory video and renders
// it as a 3D animation.
//
// Usage:
//
//	ggtraj -mode dot -out dot.png
//	ggtraj -mode sprite -sprite fish.png -sprite-size 12x8 -out fish.gif
//	ggtraj -mode dot -steps 200 -path lissajous -preview -out frames/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggtraj"
	"github.com/gogpu/ggtraj/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run parses args and executes one generate-render-export pass. Its
// deferred cleanup always runs before main decides to exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ggtraj", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode       = fs.String("mode", "dot", "object kind: dot or sprite")
		width      = fs.Int("width", 0, "frame width (default 30 for dot, 50 for sprite)")
		height     = fs.Int("height", 0, "frame height (default 30 for dot, 50 for sprite)")
		steps      = fs.Int("steps", 100, "number of frames")
		pathKind   = fs.String("path", "ellipse", "motion path: ellipse or lissajous")
		spriteFile = fs.String("sprite", "", "sprite image (default: built-in fish)")
		spriteSize = fs.String("sprite-size", "", "resize the sprite to WxH")
		composite  = fs.String("composite", "replace", "sprite compositing: replace or over")
		output     = fs.String("out", "trajectory.png", "output: .png (APNG), .gif, - (PNG stream) or a directory")
		rawDir     = fs.String("raw", "", "also write the raw video frames to this directory")
		canvas     = fs.Int("canvas", 480, "animation size in pixels")
		spring     = fs.Bool("spring", false, "ease the camera with a spring")
		workers    = fs.Int("workers", 0, "render goroutines (0: one per CPU)")
		trajColor  = fs.String("color", "#ff0000", "trajectory color")
		preview    = fs.Bool("preview", false, "plot x(t) and y(t) in the terminal")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *verbose {
		ggtraj.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	lineColor, err := ggtraj.ParseHex(*trajColor)
	if err != nil {
		return fmt.Errorf("invalid -color: %w", err)
	}

	ds, err := generate(*mode, *width, *height, *steps, *pathKind, *spriteFile, *spriteSize, *composite)
	if err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	if *rawDir != "" {
		if err := writeRaw(*rawDir, ds.Video); err != nil {
			return fmt.Errorf("failed to write raw frames: %w", err)
		}
	}

	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = *canvas, *canvas
	cfg.Trajectory = lineColor.Color()
	if *spring {
		cfg.Camera = render.NewSpringCamera(render.DefaultCamera(), ds.Video.Steps(), 30, 6, 1)
	}

	anim, err := render.NewAnimator(ds.Video, ds.Trajectory, cfg)
	if err != nil {
		return fmt.Errorf("failed to create animator: %w", err)
	}

	frames, err := anim.RenderParallel(ctx, *workers)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	if err := render.Export(*output, frames, stdout); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	// Keep stdout clean for the PNG stream.
	out := stdout
	if *output == "-" {
		out = stderr
	}
	p := message.NewPrinter(language.English)
	fmt.Fprintln(out, summary(p, *mode, *output, ds))
	if *preview {
		fmt.Fprintln(out, plot(ds.Trajectory))
	}
	return nil
}

// generate builds the dataset selected by the command-line flags.
func generate(mode string, width, height, steps int, pathKind, spriteFile, spriteSize, composite string) (*ggtraj.Dataset, error) {
	defW, defH := 30, 30
	if mode == "sprite" {
		defW, defH = 50, 50
	}
	if width == 0 {
		width = defW
	}
	if height == 0 {
		height = defH
	}

	var opts []ggtraj.Option
	switch pathKind {
	case "ellipse":
	case "lissajous":
		opts = append(opts, ggtraj.WithPath(ggtraj.NewLissajous(width, height)))
	default:
		return nil, fmt.Errorf("unknown path %q", pathKind)
	}

	switch mode {
	case "dot":
		return ggtraj.GenerateDot(width, height, steps, opts...)
	case "sprite":
		m, err := ggtraj.ParseCompositeMode(composite)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ggtraj.WithCompositeMode(m))
		s, err := loadSprite(spriteFile, spriteSize)
		if err != nil {
			return nil, err
		}
		return ggtraj.GenerateSprite(width, height, steps, s, opts...)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// loadSprite reads the sprite file, or draws the built-in fish when file
// is empty, and applies the optional WxH size.
func loadSprite(file, size string) (*ggtraj.Sprite, error) {
	w, h := 12, 8
	var opts []ggtraj.SpriteOption
	if size != "" {
		var err error
		if w, h, err = parseSize(size); err != nil {
			return nil, err
		}
		opts = append(opts, ggtraj.WithSpriteSize(w, h))
	}
	if file != "" {
		return ggtraj.LoadSprite(file, opts...)
	}
	return ggtraj.NewSprite(fish(w, h))
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// writeRaw saves every video frame as an 8-bit PNG.
func writeRaw(dir string, v *ggtraj.Video) error {
	frames := make([]image.Image, v.Steps())
	for t := range frames {
		f, err := v.Frame(t)
		if err != nil {
			return err
		}
		frames[t] = f.Image()
	}
	_, err := render.WritePNGSequence(dir, "raw_", frames)
	return err
}
