//go:build js && wasm

package web

import (
	"log"
	"strconv"
	"syscall/js"

	"github.com/olivierh59500/particle-field-go/config"
	"github.com/olivierh59500/particle-field-go/scene"
)

// CanvasID is the element the background is drawn on
const CanvasID = "particles-bg"

// Page binds a scene to the canvas and the browser events that drive it
type Page struct {
	canvas    *Canvas
	frames    *AnimationFrames
	scene     *scene.Scene
	listeners []listener
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Mount starts the background on the page. ok is false, and nothing runs, when the
// page has no canvas.
func Mount(s config.Settings) (p *Page, ok bool, err error) {
	c, found := FindCanvas(CanvasID)
	if !found {
		return nil, false, nil
	}
	applyDataset(&s, c.Dataset())

	sc, err := scene.Build(s)
	if err != nil {
		return nil, false, err
	}

	win := js.Global()
	doc := win.Get("document")
	c.Resize(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())

	p = &Page{canvas: c, frames: NewAnimationFrames(), scene: sc}
	p.listen(win, "resize", func(js.Value) {
		sc.Resize(win.Get("innerWidth").Float(), win.Get("innerHeight").Float())
	})
	p.listen(doc, "mousemove", func(e js.Value) {
		sc.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	p.listen(doc, "visibilitychange", func(js.Value) {
		if doc.Get("hidden").Bool() {
			sc.Field.Suspend()
		} else {
			sc.Field.Resume()
		}
	})

	sc.Start(c, p.frames)
	return p, true, nil
}

func (p *Page) listen(target js.Value, event string, handle func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		handle(e)
		return nil
	})
	target.Call("addEventListener", event, fn)
	p.listeners = append(p.listeners, listener{target: target, event: event, fn: fn})
}

// Unmount stops the animation and removes every listener
func (p *Page) Unmount() {
	p.scene.Field.Suspend()
	for _, l := range p.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	p.listeners = nil
	p.frames.Release()
	p.canvas.Clear()
}

// applyDataset reads data-count, data-distance and data-seed from the canvas
func applyDataset(s *config.Settings, ds js.Value) {
	if !ds.Truthy() {
		return
	}
	if v := ds.Get("count"); v.Truthy() {
		if n, err := strconv.Atoi(v.String()); err == nil {
			s.Field.Count = n
		} else {
			log.Printf("data-count: %v", err)
		}
	}
	if v := ds.Get("distance"); v.Truthy() {
		if d, err := strconv.ParseFloat(v.String(), 64); err == nil {
			s.Field.ConnectionDistance = d
		} else {
			log.Printf("data-distance: %v", err)
		}
	}
	if v := ds.Get("seed"); v.Truthy() {
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			s.Seed = n
		} else {
			log.Printf("data-seed: %v", err)
		}
	}
}
