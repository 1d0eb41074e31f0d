package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/particle-field-go/field"
)

var cyan = color.NRGBA{R: 0, G: 242, B: 255, A: 255}

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSizeFollowsCells(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen, 0, 0, color.Black)

	w, h := s.Size()
	assert.Equal(t, 160.0, w)
	assert.Equal(t, 160.0, h)

	s.Resize(-1, 50)
	w, h = s.Size()
	assert.Zero(t, w)
	assert.Equal(t, 50.0, h)

	w, h = s.FitScreen()
	assert.Equal(t, 160.0, w)
	assert.Equal(t, 160.0, h)
}

func TestFillCircleMarksCell(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen, 8, 16, color.Black)
	s.Clear()

	s.FillCircle(3*8+1, 2*16+1, 2, cyan)
	s.FillCircle(5*8+1, 2*16+1, 0.5, cyan)

	r, _, style, _ := screen.GetContent(3, 2)
	assert.Equal(t, runeBig, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 242, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	r, _, _, _ = screen.GetContent(5, 2)
	assert.Equal(t, runeDot, r)
}

func TestTranslucentColoursBlendWithBackground(t *testing.T) {
	screen := newScreen(t, 4, 4)
	s := New(screen, 8, 16, color.Black)
	s.Clear()

	s.FillCircle(1, 1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)

	s.FillCircle(9, 1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	_, _, style, _ = screen.GetContent(1, 0)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
}

func TestStrokeLineKeepsDots(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen, 8, 16, color.Black)
	s.Clear()

	s.FillCircle(2*8+1, 1, 1, cyan)
	s.StrokeLine(1, 1, 6*8+1, 1, 0.5, color.NRGBA{R: 100, G: 116, B: 139, A: 26})

	for x := 0; x <= 6; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		if x == 2 {
			assert.Equal(t, runeDot, r)
			continue
		}
		assert.Equal(t, runeLine, r, "cell %d", x)
	}
	r, _, _, _ := screen.GetContent(7, 0)
	assert.Equal(t, runeBlank, r)
}

func TestDiagonalLine(t *testing.T) {
	screen := newScreen(t, 10, 10)
	s := New(screen, 1, 1, color.Black)
	s.Clear()

	s.StrokeLine(0, 0, 4, 4, 1, color.White)
	for i := 0; i <= 4; i++ {
		r, _, _, _ := screen.GetContent(i, i)
		assert.Equal(t, runeLine, r)
	}
}

func TestOffscreenIsIgnored(t *testing.T) {
	screen := newScreen(t, 5, 5)
	s := New(screen, 8, 8, color.Black)
	s.Clear()

	assert.NotPanics(t, func() {
		s.FillCircle(-5, 3, 1, cyan)
		s.FillCircle(1000, 3, 1, cyan)
		s.StrokeLine(-100, -100, 1000, 1000, 1, cyan)
	})
	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, runeLine, r)
}

func TestFieldOnTerminal(t *testing.T) {
	screen := newScreen(t, 80, 24)
	s := New(screen, 8, 16, color.Black)
	d := &stepDriver{}
	f := field.New(field.DefaultConfig(), field.WithSeed(2))
	require.True(t, f.Start(s, d))
	d.step()
	s.Show()

	marked := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r != runeBlank {
				marked++
			}
		}
	}
	assert.Positive(t, marked)
}

type stepDriver struct{ next func() }

func (d *stepDriver) RequestFrame(fn func()) { d.next = fn }
func (d *stepDriver) CancelFrame()           { d.next = nil }
func (d *stepDriver) step() {
	fn := d.next
	d.next = nil
	if fn != nil {
		fn()
	}
}
