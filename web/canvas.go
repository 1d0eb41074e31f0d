//go:build js && wasm

package web

import (
	"fmt"
	"image/color"
	"math"
	"syscall/js"
)

// Canvas draws through a 2d context
type Canvas struct {
	el   js.Value
	ctx  js.Value
	w, h float64
}

// FindCanvas looks the canvas up by id
func FindCanvas(id string) (*Canvas, bool) {
	el := js.Global().Get("document").Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, false
	}
	return &Canvas{
		el:  el,
		ctx: ctx,
		w:   el.Get("width").Float(),
		h:   el.Get("height").Float(),
	}, true
}

func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Resize sets the backing store size, which also clears the canvas
func (c *Canvas) Resize(width, height float64) {
	c.w = math.Max(width, 0)
	c.h = math.Max(height, 0)
	c.el.Set("width", int(c.w))
	c.el.Set("height", int(c.h))
}

// Clear leaves the canvas transparent so page content shows through
func (c *Canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
}

func (c *Canvas) FillCircle(x, y, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", rgba(col))
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Set("strokeStyle", rgba(col))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

// Dataset returns the data-* attributes of the canvas
func (c *Canvas) Dataset() js.Value {
	return c.el.Get("dataset")
}

func rgba(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}
