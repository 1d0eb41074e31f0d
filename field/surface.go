package field

import "image/color"

// Surface is a 2D raster target addressed in pixel coordinates
type Surface interface {
	Size() (width, height float64)
	// Resize changes the logical drawing dimensions
	Resize(width, height float64)
	Clear()
	FillCircle(x, y, radius float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// FrameDriver schedules callbacks in step with the display refresh.
// At most one callback is pending at a time; requesting again replaces it.
type FrameDriver interface {
	RequestFrame(fn func())
	CancelFrame()
}

// Layer is drawn after the surface is cleared and before the field's own particles
type Layer interface {
	Tick(s Surface)
}
