//go:build js && wasm
// +build js,wasm

package browser

import (
	"syscall/js"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/vdom"
)

// Element wraps a DOM element
type Element struct {
	v   js.Value
	doc *Document
}

// Value returns the underlying js.Value
func (e *Element) Value() js.Value {
	return e.v
}

// Query implements dom.Element
func (e *Element) Query(selector string) dom.Element {
	return e.doc.wrap(e.v.Call("querySelector", selector))
}

// QueryAll implements dom.Element
func (e *Element) QueryAll(selector string) []dom.Element {
	return e.doc.wrapAll(e.v.Call("querySelectorAll", selector))
}

// Closest implements dom.Element
func (e *Element) Closest(selector string) dom.Element {
	return e.doc.wrap(e.v.Call("closest", selector))
}

// Attr implements dom.Element
func (e *Element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// SetAttr implements dom.Element
func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// TextContent implements dom.Element
func (e *Element) TextContent() string {
	return e.v.Get("textContent").String()
}

// SetText implements dom.Element
func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// SetHTML implements dom.Element
func (e *Element) SetHTML(markup string) {
	e.v.Set("innerHTML", markup)
}

// SetClass implements dom.Element
func (e *Element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

// SetStyle implements dom.Element
func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

// Replace implements dom.Element. Handlers bound by the previous Replace on
// this element are released first.
func (e *Element) Replace(children ...*vdom.VNode) {
	for _, release := range e.doc.takeOwned(e.v) {
		release()
	}

	var releases []func()
	frag := e.doc.document.Call("createDocumentFragment")
	for _, c := range children {
		if c == nil {
			continue
		}
		for _, n := range e.doc.createTree(c, &releases) {
			frag.Call("appendChild", n)
		}
	}
	e.v.Set("textContent", "")
	e.v.Call("appendChild", frag)

	if len(releases) > 0 {
		e.doc.owned = append(e.doc.owned, ownedHandlers{container: e.v, release: releases})
	}
}

// AddListener implements dom.Element
func (e *Element) AddListener(event string, fn dom.Listener) func() {
	return e.doc.listen(e.v, event, fn)
}

// Focus implements dom.Element
func (e *Element) Focus() bool {
	e.v.Call("focus")
	return e.doc.document.Get("activeElement").Equal(e.v)
}

// IsConnected implements dom.Element
func (e *Element) IsConnected() bool {
	return e.v.Get("isConnected").Bool()
}

// Complete reports whether an image has already finished loading its
// current source, in which case the browser fires no further load event
func (e *Element) Complete() bool {
	if e.v.Get("tagName").String() != "IMG" {
		return false
	}
	return e.v.Get("complete").Bool() && e.v.Get("naturalWidth").Int() > 0
}

// createTree builds DOM nodes from a vnode, collecting handler releases
func (d *Document) createTree(v *vdom.VNode, releases *[]func()) []js.Value {
	switch v.Kind {
	case vdom.KindText:
		return []js.Value{d.document.Call("createTextNode", v.Text)}

	case vdom.KindFragment:
		var out []js.Value
		for i := range v.Kids {
			out = append(out, d.createTree(&v.Kids[i], releases)...)
		}
		return out
	}

	elem := d.document.Call("createElement", v.Tag)
	for key, value := range v.Attrs() {
		elem.Call("setAttribute", key, value)
	}
	for event, fn := range v.Handlers() {
		handler := fn
		*releases = append(*releases, d.listen(elem, event, func(dom.Event) { handler() }))
	}
	for i := range v.Kids {
		for _, child := range d.createTree(&v.Kids[i], releases) {
			elem.Call("appendChild", child)
		}
	}
	return []js.Value{elem}
}
