// Package builder provides a fluent API for constructing vdom trees.
package builder

import (
	"strings"

	"github.com/recera/carousel/pkg/vdom"
)

// ElementBuilder accumulates props and children for a single element
type ElementBuilder struct {
	tag      string
	props    vdom.Props
	classes  []string
	children []*vdom.VNode
}

// El starts a builder for an arbitrary tag
func El(tag string) *ElementBuilder {
	return &ElementBuilder{tag: tag, props: vdom.Props{}}
}

// === Elements ===

// Div creates a div builder
func Div() *ElementBuilder { return El("div") }

// Section creates a section builder
func Section() *ElementBuilder { return El("section") }

// Span creates a span builder
func Span() *ElementBuilder { return El("span") }

// Button creates a button builder with type="button"
func Button() *ElementBuilder { return El("button").Type("button") }

// Img creates an img builder
func Img() *ElementBuilder { return El("img") }

// H1 creates an h1 builder
func H1() *ElementBuilder { return El("h1") }

// H2 creates an h2 builder
func H2() *ElementBuilder { return El("h2") }

// Figure creates a figure builder
func Figure() *ElementBuilder { return El("figure") }

// Figcaption creates a figcaption builder
func Figcaption() *ElementBuilder { return El("figcaption") }

// Ul creates a ul builder
func Ul() *ElementBuilder { return El("ul") }

// Li creates an li builder
func Li() *ElementBuilder { return El("li") }

// Script creates a script builder
func Script() *ElementBuilder { return El("script") }

// Style creates a style builder
func Style() *ElementBuilder { return El("style") }

// === Core ===

// Class appends one or more class names
func (b *ElementBuilder) Class(names ...string) *ElementBuilder {
	for _, n := range names {
		if n != "" {
			b.classes = append(b.classes, n)
		}
	}
	return b
}

// ID sets the id attribute
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Text appends a text child
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.children = append(b.children, vdom.NewText(text))
	return b
}

// Children appends child nodes; nil children are skipped
func (b *ElementBuilder) Children(children ...*vdom.VNode) *ElementBuilder {
	b.children = append(b.children, children...)
	return b
}

// Build produces the VNode
func (b *ElementBuilder) Build() *vdom.VNode {
	props := make(vdom.Props, len(b.props)+1)
	for k, v := range b.props {
		props[k] = v
	}
	if len(b.classes) > 0 {
		props["class"] = strings.Join(b.classes, " ")
	}
	return vdom.NewElement(b.tag, props, b.children...)
}
