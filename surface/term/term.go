// Package term draws a field onto a terminal, one cell per CellW x CellH block of
// drawing units
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Default cell metrics, roughly the pixel size of a monospace cell
const (
	DefaultCellW = 8.0
	DefaultCellH = 16.0
)

// Glyphs
const (
	runeDot   = '•'
	runeBig   = '●'
	runeLine  = '·'
	runeBlank = ' '
)

// minLineAlpha keeps faint connection lines visible on a terminal palette
const minLineAlpha = 0.35

// Surface renders onto a tcell screen
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	w, h         float64
	bg           colorful.Color
	bgStyle      tcell.Style
}

// New creates a surface covering the whole screen
func New(screen tcell.Screen, cellW, cellH float64, bg color.Color) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	if bg == nil {
		bg = color.Black
	}
	c, _ := colorful.MakeColor(bg)
	s := &Surface{
		screen:  screen,
		cellW:   cellW,
		cellH:   cellH,
		bg:      c,
		bgStyle: tcell.StyleDefault.Background(toTcell(c)),
	}
	cols, rows := screen.Size()
	s.Resize(float64(cols)*cellW, float64(rows)*cellH)
	return s
}

// FitScreen returns the drawing size matching the current terminal size
func (s *Surface) FitScreen() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// Size returns the logical size in drawing units
func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

// Resize sets the logical size; the terminal itself is never resized
func (s *Surface) Resize(width, height float64) {
	s.w = math.Max(width, 0)
	s.h = math.Max(height, 0)
}

// Clear blanks every cell to the background
func (s *Surface) Clear() {
	s.screen.Fill(runeBlank, s.bgStyle)
}

// FillCircle marks the cell under the centre
func (s *Surface) FillCircle(x, y, radius float64, c color.Color) {
	cx, cy, ok := s.cell(x, y)
	if !ok {
		return
	}
	r := runeDot
	if radius >= 1.5 {
		r = runeBig
	}
	s.screen.SetContent(cx, cy, r, nil, s.bgStyle.Foreground(s.blend(c, 0)))
}

// StrokeLine marks empty cells along the segment
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c color.Color) {
	style := s.bgStyle.Foreground(s.blend(c, minLineAlpha))

	ax, ay := int(math.Floor(x0/s.cellW)), int(math.Floor(y0/s.cellH))
	bx, by := int(math.Floor(x1/s.cellW)), int(math.Floor(y1/s.cellH))
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		s.plotLine(ax, ay, style)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (s *Surface) plotLine(x, y int, style tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	if r, _, _, _ := s.screen.GetContent(x, y); r != runeBlank && r != 0 {
		return
	}
	s.screen.SetContent(x, y, runeLine, nil, style)
}

// Show flushes the frame to the terminal
func (s *Surface) Show() {
	s.screen.Show()
}

func (s *Surface) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	cx, cy := int(x/s.cellW), int(y/s.cellH)
	cols, rows := s.screen.Size()
	if cx >= cols || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// blend composes c over the background using its alpha, raised to at least floor
func (s *Surface) blend(c color.Color, floor float64) tcell.Color {
	_, _, _, a := c.RGBA()
	alpha := float64(a) / 0xffff
	if alpha == 0 {
		return toTcell(s.bg)
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := colorful.Color{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}
	return toTcell(s.bg.BlendRgb(fg, math.Max(alpha, floor)))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
