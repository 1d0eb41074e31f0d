package record

import "image/color"

type nullSurface struct{ w, h float64 }

func (s *nullSurface) Size() (float64, float64)                        { return s.w, s.h }
func (s *nullSurface) Resize(w, h float64)                             { s.w, s.h = w, h }
func (s *nullSurface) Clear()                                          {}
func (s *nullSurface) FillCircle(_, _, _ float64, _ color.Color)       {}
func (s *nullSurface) StrokeLine(_, _, _, _, _ float64, _ color.Color) {}

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
