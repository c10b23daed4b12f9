//go:build js && wasm
// +build js,wasm

// Package browser implements the dom interfaces over syscall/js.
package browser

import (
	"syscall/js"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/scheduler"
)

// Document wraps the global document object
type Document struct {
	document js.Value
	window   js.Value

	frames     *scheduler.Frames
	rafPending bool
	rafFunc    js.Func

	// handlers bound by Replace, per container, released on the next Replace
	owned []ownedHandlers
}

type ownedHandlers struct {
	container js.Value
	release   []func()
}

// NewDocument wraps the page's document
func NewDocument() (*Document, error) {
	d := &Document{
		document: js.Global().Get("document"),
		window:   js.Global().Get("window"),
		frames:   scheduler.NewFrames(),
	}
	d.rafFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		d.rafPending = false
		d.frames.Run()
		if d.frames.Pending() > 0 {
			d.schedule()
		}
		return nil
	})
	return d, nil
}

func (d *Document) wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, doc: d}
}

func (d *Document) wrapAll(list js.Value) []dom.Element {
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i), doc: d})
	}
	return out
}

// Root implements dom.Document
func (d *Document) Root() dom.Element {
	return d.wrap(d.document.Get("documentElement"))
}

// Body implements dom.Document
func (d *Document) Body() dom.Element {
	return d.wrap(d.document.Get("body"))
}

// ActiveElement implements dom.Document
func (d *Document) ActiveElement() dom.Element {
	return d.wrap(d.document.Get("activeElement"))
}

// QueryAll implements dom.Document
func (d *Document) QueryAll(selector string) []dom.Element {
	return d.wrapAll(d.document.Call("querySelectorAll", selector))
}

// CurrentScript implements dom.Document. Under WebAssembly the bootstrap
// script has usually finished by the time Go runs, so this is often nil.
func (d *Document) CurrentScript() dom.Element {
	return d.wrap(d.document.Get("currentScript"))
}

// AddListener implements dom.Document
func (d *Document) AddListener(event string, fn dom.Listener) func() {
	return d.listen(d.document, event, fn)
}

// RequestAnimationFrame implements dom.Document. Callbacks are batched into
// a single browser animation frame.
func (d *Document) RequestAnimationFrame(fn func()) {
	d.frames.Request(fn)
	d.schedule()
}

func (d *Document) schedule() {
	if d.rafPending {
		return
	}
	d.rafPending = true
	d.window.Call("requestAnimationFrame", d.rafFunc)
}

// Preload implements dom.Document with a detached Image
func (d *Document) Preload(src string) {
	img := js.Global().Get("Image").New()
	img.Set("src", src)
}

// Frames exposes the frame queue so callers can install a panic handler
func (d *Document) Frames() *scheduler.Frames {
	return d.frames
}

func (d *Document) listen(target js.Value, event string, fn dom.Listener) func() {
	jsFunc := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			fn(d.toEvent(args[0]))
		} else {
			fn(dom.Event{Type: event})
		}
		return nil
	})
	target.Call("addEventListener", event, jsFunc)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, jsFunc)
		jsFunc.Release()
	}
}

func (d *Document) toEvent(ev js.Value) dom.Event {
	e := dom.Event{Type: ev.Get("type").String()}
	if key := ev.Get("key"); key.Type() == js.TypeString {
		e.Key = key.String()
	}

	list := ev.Get("touches")
	if e.Type == "touchend" || e.Type == "touchcancel" {
		list = ev.Get("changedTouches")
	}
	if list.Truthy() {
		n := list.Get("length").Int()
		for i := 0; i < n; i++ {
			t := list.Index(i)
			e.Touches = append(e.Touches, dom.Point{
				X: t.Get("screenX").Float(),
				Y: t.Get("screenY").Float(),
			})
		}
	}

	e.Target = d.wrap(ev.Get("target"))
	return e
}

// takeOwned removes and returns the handlers previously bound under container
func (d *Document) takeOwned(container js.Value) []func() {
	for i, o := range d.owned {
		if o.container.Equal(container) {
			d.owned = append(d.owned[:i], d.owned[i+1:]...)
			return o.release
		}
	}
	return nil
}
