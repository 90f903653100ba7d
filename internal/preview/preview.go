// Package preview renders a debug contact sheet of a camera plan: a
// grid of sampled instants, each cell showing the source canvas with
// the camera viewport, the cursor and any live highlights outlined.
// It exists for plan debugging only; production compositing is the
// export collaborator's job.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/autozoom/internal/renderer"
)

// SheetOptions controls the contact sheet layout.
type SheetOptions struct {
	Columns  int
	CellW    int
	CellH    int
	Interval float64 // seconds between sampled cells
}

// DefaultSheetOptions lays out 8 columns of 320x180 cells sampled
// every half second.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{Columns: 8, CellW: 320, CellH: 180, Interval: 0.5}
}

var (
	background = color.RGBA{24, 24, 28, 255}
	canvasFill = color.RGBA{52, 52, 60, 255}
	viewportC  = color.RGBA{79, 142, 247, 255}
	cursorC    = color.RGBA{240, 84, 84, 255}
	overlayC   = color.RGBA{247, 168, 79, 255}
)

// ContactSheet samples the resolver across the duration and renders
// the cells into one grid image.
func ContactSheet(r *renderer.Resolver, duration float64, opts SheetOptions) *image.RGBA {
	if opts.Columns <= 0 || opts.CellW <= 0 || opts.CellH <= 0 || opts.Interval <= 0 {
		opts = DefaultSheetOptions()
	}

	var times []float64
	for t := 0.0; t <= duration; t += opts.Interval {
		times = append(times, t)
	}
	if len(times) == 0 {
		times = []float64{0}
	}

	rows := (len(times) + opts.Columns - 1) / opts.Columns
	sheet := image.NewRGBA(image.Rect(0, 0, opts.Columns*opts.CellW, rows*opts.CellH))
	fill(sheet, sheet.Bounds(), background)

	// Cells are drawn at 2x and downscaled, the cheap way to keep the
	// one-pixel outlines readable on small cells.
	cellRect := image.Rect(0, 0, opts.CellW*2, opts.CellH*2)
	for i, t := range times {
		cell := image.NewRGBA(cellRect)
		drawCell(cell, r.Resolve(t))

		col, row := i%opts.Columns, i/opts.Columns
		dst := image.Rect(col*opts.CellW, row*opts.CellH, (col+1)*opts.CellW, (row+1)*opts.CellH)
		xdraw.ApproxBiLinear.Scale(sheet, dst, cell, cellRect, xdraw.Src, nil)
	}
	return sheet
}

// WritePNG renders the sheet and writes it to path.
func WritePNG(r *renderer.Resolver, duration float64, opts SheetOptions, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, ContactSheet(r, duration, opts)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

func drawCell(img *image.RGBA, frame renderer.Frame) {
	b := img.Bounds()
	fill(img, b, canvasFill)

	w, h := float64(b.Dx()), float64(b.Dy())

	v := frame.Transform.Viewport()
	outlineRect(img,
		image.Rect(int(v.X*w), int(v.Y*h), int((v.X+v.W)*w), int((v.Y+v.H)*h)),
		viewportC)

	for _, ov := range frame.Overlays {
		cx, cy := int(ov.Highlight.Pos.X*w), int(ov.Highlight.Pos.Y*h)
		outlineCircle(img, cx, cy, int(ov.Radius*h*4), overlayC)
	}

	dot(img, int(frame.Cursor.X*w), int(frame.Cursor.Y*h), 4, cursorC)
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func outlineRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

func outlineCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	if radius < 1 {
		radius = 1
	}
	// Midpoint circle, enough for a debug overlay.
	x, y, d := radius, 0, 1-radius
	for x >= y {
		setInBounds(img, cx+x, cy+y, c)
		setInBounds(img, cx+y, cy+x, c)
		setInBounds(img, cx-y, cy+x, c)
		setInBounds(img, cx-x, cy+y, c)
		setInBounds(img, cx-x, cy-y, c)
		setInBounds(img, cx-y, cy-x, c)
		setInBounds(img, cx+y, cy-x, c)
		setInBounds(img, cx+x, cy-y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func dot(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				setInBounds(img, cx+x, cy+y, c)
			}
		}
	}
}

func setInBounds(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
