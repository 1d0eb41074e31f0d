// Package raster draws onto an in-memory image, for headless rendering and PNG export
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"
)

// Circle tessellation bounds
const (
	minSegments = 8
	maxSegments = 64
)

// Surface is an antialiased image target
type Surface struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	bg   *image.Uniform
	w, h float64
}

// New creates a width x height surface cleared to bg
func New(width, height int, bg color.Color) *Surface {
	s := &Surface{bg: image.NewUniform(bg)}
	s.Resize(float64(width), float64(height))
	s.Clear()
	return s
}

// Size returns the logical size
func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

// Resize reallocates the image; previous pixels are dropped
func (s *Surface) Resize(width, height float64) {
	s.w = math.Max(width, 0)
	s.h = math.Max(height, 0)
	iw, ih := int(math.Ceil(s.w)), int(math.Ceil(s.h))
	s.img = image.NewRGBA(image.Rect(0, 0, iw, ih))
	s.z = vector.NewRasterizer(iw, ih)
}

// Clear paints the background
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), s.bg, image.Point{}, draw.Src)
}

// FillCircle draws a filled polygonal circle
func (s *Surface) FillCircle(x, y, radius float64, c color.Color) {
	if radius <= 0 || s.empty() || !s.overlaps(x-radius, y-radius, x+radius, y+radius) {
		return
	}

	n := int(radius * 4)
	if n < minSegments {
		n = minSegments
	} else if n > maxSegments {
		n = maxSegments
	}

	s.z.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.z.MoveTo(float32(x+radius), float32(y))
	for i := 1; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		s.z.LineTo(float32(x+radius*math.Cos(a)), float32(y+radius*math.Sin(a)))
	}
	s.z.ClosePath()
	s.paint(c)
}

// StrokeLine draws a segment as a quad of the given width
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if width <= 0 || s.empty() {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := width / 2
	if !s.overlaps(math.Min(x0, x1)-half, math.Min(y0, y1)-half, math.Max(x0, x1)+half, math.Max(y0, y1)+half) {
		return
	}

	nx, ny := -dy/length*half, dx/length*half
	s.z.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.z.MoveTo(float32(x0+nx), float32(y0+ny))
	s.z.LineTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.LineTo(float32(x0-nx), float32(y0-ny))
	s.z.ClosePath()
	s.paint(c)
}

func (s *Surface) paint(c color.Color) {
	s.z.DrawOp = draw.Over
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (s *Surface) empty() bool {
	return s.img.Bounds().Empty()
}

func (s *Surface) overlaps(x0, y0, x1, y1 float64) bool {
	return x1 >= 0 && y1 >= 0 && x0 <= s.w && y0 <= s.h
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the current frame
func (s *Surface) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, s.img), "encode png")
}

// SavePNG writes the current frame to path
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
