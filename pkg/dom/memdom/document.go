// Package memdom is an in-memory implementation of the dom interfaces.
// Animation frames, image loads and preloads are driven explicitly by the
// caller, which makes asynchronous rendering deterministic in tests and in
// the terminal preview.
package memdom

import (
	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/scheduler"
	"github.com/recera/carousel/pkg/vdom"
)

// Document is an in-memory page with an html root and a body
type Document struct {
	root      *Node
	head      *Node
	body      *Node
	active    *Node
	script    *Node
	frames    *scheduler.Frames
	listeners map[string][]*listener
	preloaded []string
}

// New creates an empty document
func New() *Document {
	d := &Document{
		frames:    scheduler.NewFrames(),
		listeners: make(map[string][]*listener),
	}
	d.root = newElement(d, "html")
	d.head = newElement(d, "head")
	d.body = newElement(d, "body")
	d.root.appendChild(d.head, d.body)
	return d
}

// Mount appends the vnode tree to the body and returns its first node
func (d *Document) Mount(v *vdom.VNode) *Node {
	if v == nil {
		return nil
	}
	nodes := d.build(v)
	d.body.appendChild(nodes...)
	for _, n := range nodes {
		if !n.isText() {
			return n
		}
	}
	return nil
}

// SetCurrentScript marks a node as the executing script
func (d *Document) SetCurrentScript(n *Node) {
	d.script = n
}

// Root implements dom.Document
func (d *Document) Root() dom.Element {
	return d.root
}

// Body implements dom.Document
func (d *Document) Body() dom.Element {
	return d.body
}

// RootNode returns the html element as a *Node
func (d *Document) RootNode() *Node {
	return d.root
}

// BodyNode returns the body element as a *Node
func (d *Document) BodyNode() *Node {
	return d.body
}

// ActiveElement implements dom.Document. With nothing focused it is the body.
func (d *Document) ActiveElement() dom.Element {
	if d.active == nil || !d.active.IsConnected() {
		return d.body
	}
	return d.active
}

// Find returns the first matching element in the document
func (d *Document) Find(selector string) *Node {
	if parseSelector(selector).matches(d.root) {
		return d.root
	}
	return d.root.Find(selector)
}

// FindAll returns every matching element in the document
func (d *Document) FindAll(selector string) []*Node {
	return d.root.FindAll(selector)
}

// QueryAll implements dom.Document
func (d *Document) QueryAll(selector string) []dom.Element {
	return toElements(d.FindAll(selector))
}

// CurrentScript implements dom.Document
func (d *Document) CurrentScript() dom.Element {
	if d.script == nil {
		return nil
	}
	return d.script
}

// AddListener implements dom.Document
func (d *Document) AddListener(event string, fn dom.Listener) func() {
	return addListener(d.listeners, event, fn)
}

// ListenerCount returns the number of live document listeners for an event
func (d *Document) ListenerCount(event string) int {
	return len(d.listeners[event])
}

// Dispatch delivers an event to document listeners
func (d *Document) Dispatch(e dom.Event) {
	dispatch(d.listeners, e)
}

// KeyDown dispatches a document keydown event
func (d *Document) KeyDown(key string) {
	d.Dispatch(dom.Event{Type: "keydown", Key: key, Target: d.ActiveElement()})
}

// RequestAnimationFrame implements dom.Document
func (d *Document) RequestAnimationFrame(fn func()) {
	d.frames.Request(fn)
}

// RunFrame runs the callbacks queued for the next animation frame
func (d *Document) RunFrame() int {
	return d.frames.Run()
}

// PendingFrames returns the number of queued frame callbacks
func (d *Document) PendingFrames() int {
	return d.frames.Pending()
}

// Preload implements dom.Document by recording the source
func (d *Document) Preload(src string) {
	d.preloaded = append(d.preloaded, src)
}

// Preloaded returns every source passed to Preload, in order
func (d *Document) Preloaded() []string {
	return append([]string(nil), d.preloaded...)
}

// LoadImages fires load on every connected img with a pending load and
// returns how many completed
func (d *Document) LoadImages() int {
	var pending []*Node
	d.root.walk(func(n *Node) bool {
		if n.tag == "img" && n.loadPending {
			pending = append(pending, n)
		}
		return true
	})
	for _, n := range pending {
		n.FireLoad()
	}
	return len(pending)
}
