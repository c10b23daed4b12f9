// Package dom defines the slice of the browser document model the carousel
// controller depends on. The browser package implements it over syscall/js
// and memdom implements it in memory.
package dom

import "github.com/recera/carousel/pkg/vdom"

// Attribute names of the host markup contract
const (
	RootAttr  = "data-carousel-root"
	RoleAttr  = "data-carousel-role"
	IndexAttr = "data-index"
)

// RootSelector matches carousel root containers
const RootSelector = "[" + RootAttr + "]"

// RoleSelector returns the selector for an element carrying the given role label
func RoleSelector(role string) string {
	return "[" + RoleAttr + `="` + role + `"]`
}

// Point is a touch contact position in CSS pixels
type Point struct {
	X, Y float64
}

// Event is the subset of a DOM event the controller reads.
// For touchend and touchcancel, Touches holds the changed touches.
type Event struct {
	Type    string
	Key     string
	Touches []Point
	Target  Element
}

// Listener handles a dispatched event
type Listener func(Event)

// Element is a node in the host document
type Element interface {
	// Query returns the first descendant matching selector, or nil
	Query(selector string) Element
	QueryAll(selector string) []Element
	// Closest returns the element itself or its nearest matching ancestor
	Closest(selector string) Element

	Attr(name string) (string, bool)
	SetAttr(name, value string)

	TextContent() string
	// SetText replaces the children with non-interpreted text
	SetText(text string)
	// SetHTML replaces the children with interpreted markup
	SetHTML(markup string)
	SetClass(name string, on bool)
	SetStyle(prop, value string)
	// Replace swaps all children for nodes built from vnodes, binding any
	// on* handlers they carry
	Replace(children ...*vdom.VNode)

	AddListener(event string, fn Listener) (release func())
	Focus() bool
	IsConnected() bool
}

// Document is the page hosting one or more carousel roots
type Document interface {
	Root() Element
	Body() Element
	ActiveElement() Element
	QueryAll(selector string) []Element
	// CurrentScript returns the executing script element, or nil
	CurrentScript() Element
	AddListener(event string, fn Listener) (release func())
	RequestAnimationFrame(fn func())
	// Preload begins fetching an image; failures are ignored
	Preload(src string)
}
