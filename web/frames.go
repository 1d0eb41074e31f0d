//go:build js && wasm

package web

import "syscall/js"

// AnimationFrames drives a field with requestAnimationFrame
type AnimationFrames struct {
	win js.Value
	cb  js.Func
	fn  func()
	id  js.Value
}

// NewAnimationFrames registers the shared callback; Release frees it
func NewAnimationFrames() *AnimationFrames {
	a := &AnimationFrames{win: js.Global(), id: js.Undefined()}
	a.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := a.fn
		a.fn = nil
		a.id = js.Undefined()
		if fn != nil {
			fn()
		}
		return nil
	})
	return a
}

func (a *AnimationFrames) RequestFrame(fn func()) {
	a.fn = fn
	if a.id.Truthy() {
		return
	}
	a.id = a.win.Call("requestAnimationFrame", a.cb)
}

func (a *AnimationFrames) CancelFrame() {
	if a.id.Truthy() {
		a.win.Call("cancelAnimationFrame", a.id)
	}
	a.id = js.Undefined()
	a.fn = nil
}

func (a *AnimationFrames) Release() {
	a.CancelFrame()
	a.cb.Release()
}
