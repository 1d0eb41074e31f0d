// Package window hosts the background in an ebiten window
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto the screen image of the frame in progress
type Surface struct {
	target *ebiten.Image
	w, h   float64
	bg     color.Color
}

// NewSurface creates a surface of the given logical size
func NewSurface(width, height int, bg color.Color) *Surface {
	s := &Surface{bg: bg}
	s.Resize(float64(width), float64(height))
	return s
}

// Bind points the surface at the screen handed to Draw
func (s *Surface) Bind(screen *ebiten.Image) {
	s.target = screen
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

// Resize records the size; the screen itself follows Layout
func (s *Surface) Resize(width, height float64) {
	s.w = math.Max(width, 0)
	s.h = math.Max(height, 0)
}

func (s *Surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.bg)
}

func (s *Surface) FillCircle(x, y, radius float64, c color.Color) {
	if s.target == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.target == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
