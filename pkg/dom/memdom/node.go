package memdom

import (
	"regexp"
	"sort"
	"strings"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/vdom"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Node is an in-memory element or text node
type Node struct {
	doc    *Document
	parent *Node
	tag    string // empty for text nodes
	text   string
	markup string

	attrs     map[string]string
	style     map[string]string
	kids      []*Node
	listeners map[string][]*listener

	loadPending bool
}

type listener struct {
	fn      dom.Listener
	removed bool
}

func newElement(doc *Document, tag string) *Node {
	return &Node{
		doc:   doc,
		tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

func newText(doc *Document, text string) *Node {
	return &Node{doc: doc, text: text}
}

// build converts a vnode tree into detached nodes, binding on* handlers
func (d *Document) build(v *vdom.VNode) []*Node {
	switch v.Kind {
	case vdom.KindText:
		return []*Node{newText(d, v.Text)}
	case vdom.KindFragment:
		var out []*Node
		for i := range v.Kids {
			out = append(out, d.build(&v.Kids[i])...)
		}
		return out
	}

	n := newElement(d, v.Tag)
	for k, val := range v.Attrs() {
		n.attrs[k] = val
	}
	for event, fn := range v.Handlers() {
		handler := fn
		n.AddListener(event, func(dom.Event) { handler() })
	}
	for i := range v.Kids {
		n.appendChild(d.build(&v.Kids[i])...)
	}
	return []*Node{n}
}

func (n *Node) appendChild(kids ...*Node) {
	for _, k := range kids {
		k.parent = n
		n.kids = append(n.kids, k)
	}
}

func (n *Node) clearChildren() {
	for _, k := range n.kids {
		k.parent = nil
	}
	n.kids = nil
	n.markup = ""
}

func (n *Node) isText() bool {
	return n.tag == ""
}

// Tag returns the lower-case tag name, or "" for text nodes
func (n *Node) Tag() string {
	return n.tag
}

// Children returns the element children
func (n *Node) Children() []*Node {
	var out []*Node
	for _, k := range n.kids {
		if !k.isText() {
			out = append(out, k)
		}
	}
	return out
}

// Parent returns the parent node, or nil when detached
func (n *Node) Parent() *Node {
	return n.parent
}

// walk visits descendants in document order; returning false stops the walk
func (n *Node) walk(visit func(*Node) bool) bool {
	for _, k := range n.kids {
		if k.isText() {
			continue
		}
		if !visit(k) || !k.walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the first matching descendant as a *Node
func (n *Node) Find(selector string) *Node {
	sel := parseSelector(selector)
	var found *Node
	n.walk(func(k *Node) bool {
		if sel.matches(k) {
			found = k
			return false
		}
		return true
	})
	return found
}

// FindAll returns every matching descendant as *Node values
func (n *Node) FindAll(selector string) []*Node {
	sel := parseSelector(selector)
	var found []*Node
	n.walk(func(k *Node) bool {
		if sel.matches(k) {
			found = append(found, k)
		}
		return true
	})
	return found
}

// Query implements dom.Element
func (n *Node) Query(selector string) dom.Element {
	if found := n.Find(selector); found != nil {
		return found
	}
	return nil
}

// QueryAll implements dom.Element
func (n *Node) QueryAll(selector string) []dom.Element {
	return toElements(n.FindAll(selector))
}

// Closest implements dom.Element
func (n *Node) Closest(selector string) dom.Element {
	sel := parseSelector(selector)
	for cur := n; cur != nil; cur = cur.parent {
		if sel.matches(cur) {
			return cur
		}
	}
	return nil
}

// Attr implements dom.Element
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr implements dom.Element. Changing an img src marks a load as pending.
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
	if n.tag == "img" && name == "src" {
		n.loadPending = true
	}
}

// RemoveAttr deletes an attribute
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// TextContent implements dom.Element. Markup set through SetHTML is
// returned with its tags stripped.
func (n *Node) TextContent() string {
	if n.isText() {
		return n.text
	}
	if n.markup != "" {
		return tagPattern.ReplaceAllString(n.markup, "")
	}
	var sb strings.Builder
	for _, k := range n.kids {
		sb.WriteString(k.TextContent())
	}
	return sb.String()
}

// SetText implements dom.Element
func (n *Node) SetText(text string) {
	n.clearChildren()
	if text != "" {
		n.appendChild(newText(n.doc, text))
	}
}

// SetHTML implements dom.Element. The markup is kept verbatim.
func (n *Node) SetHTML(markup string) {
	n.clearChildren()
	n.markup = markup
}

// Markup returns the markup most recently set through SetHTML
func (n *Node) Markup() string {
	return n.markup
}

// IsMarkup reports whether the content was set as interpreted markup
func (n *Node) IsMarkup() bool {
	return n.markup != ""
}

// SetClass implements dom.Element
func (n *Node) SetClass(name string, on bool) {
	classes := strings.Fields(n.attrs["class"])
	out := classes[:0]
	for _, c := range classes {
		if c != name {
			out = append(out, c)
		}
	}
	if on {
		out = append(out, name)
	}
	if len(out) == 0 {
		delete(n.attrs, "class")
		return
	}
	n.attrs["class"] = strings.Join(out, " ")
}

// HasClass reports whether the class list contains name
func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.attrs["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

// SetStyle implements dom.Element. An empty value removes the property.
func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		delete(n.style, prop)
		return
	}
	n.style[prop] = value
}

// Style returns an inline style property
func (n *Node) Style(prop string) string {
	return n.style[prop]
}

// StyleText renders the inline style as a declaration list
func (n *Node) StyleText() string {
	keys := make([]string, 0, len(n.style))
	for k := range n.style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+n.style[k])
	}
	return strings.Join(parts, "; ")
}

// Replace implements dom.Element
func (n *Node) Replace(children ...*vdom.VNode) {
	n.clearChildren()
	for _, c := range children {
		if c != nil {
			n.appendChild(n.doc.build(c)...)
		}
	}
}

// AddListener implements dom.Element
func (n *Node) AddListener(event string, fn dom.Listener) func() {
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	return addListener(n.listeners, event, fn)
}

// ListenerCount returns the number of live listeners for an event
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Focus implements dom.Element
func (n *Node) Focus() bool {
	if !n.IsConnected() {
		return false
	}
	if _, disabled := n.attrs["disabled"]; disabled {
		return false
	}
	n.doc.active = n
	return true
}

// IsConnected implements dom.Element
func (n *Node) IsConnected() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == n.doc.root {
			return true
		}
	}
	return false
}

// Remove detaches the node from its parent. Focus inside the removed
// subtree falls back to the body.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	if a := n.doc.active; a != nil {
		for cur := a; cur != nil; cur = cur.parent {
			if cur == n {
				n.doc.active = nil
				break
			}
		}
	}
	p := n.parent
	for i, k := range p.kids {
		if k == n {
			p.kids = append(p.kids[:i], p.kids[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Dispatch delivers an event to this node's listeners. Events do not bubble.
func (n *Node) Dispatch(e dom.Event) {
	if e.Target == nil {
		e.Target = n
	}
	dispatch(n.listeners, e)
}

// Click dispatches a click event
func (n *Node) Click() {
	n.Dispatch(dom.Event{Type: "click"})
}

// TouchStart dispatches a touchstart with a single contact
func (n *Node) TouchStart(x, y float64) {
	n.Dispatch(dom.Event{Type: "touchstart", Touches: []dom.Point{{X: x, Y: y}}})
}

// TouchEnd dispatches a touchend whose changed touch ends at (x, y)
func (n *Node) TouchEnd(x, y float64) {
	n.Dispatch(dom.Event{Type: "touchend", Touches: []dom.Point{{X: x, Y: y}}})
}

// LoadPending reports whether an image source change has not loaded yet
func (n *Node) LoadPending() bool {
	return n.loadPending
}

// FireLoad completes a pending image load and dispatches the load event
func (n *Node) FireLoad() {
	n.loadPending = false
	n.Dispatch(dom.Event{Type: "load"})
}

func addListener(set map[string][]*listener, event string, fn dom.Listener) func() {
	l := &listener{fn: fn}
	set[event] = append(set[event], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		list := set[event]
		for i, cur := range list {
			if cur == l {
				set[event] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

func dispatch(set map[string][]*listener, e dom.Event) {
	list := append([]*listener(nil), set[e.Type]...)
	for _, l := range list {
		if !l.removed {
			l.fn(e)
		}
	}
}

func toElements(nodes []*Node) []dom.Element {
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}
