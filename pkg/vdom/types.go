package vdom

import (
	"fmt"
	"strings"
)

// VKind represents the type of virtual node
type VKind uint8

const (
	// KindElement represents a DOM element node
	KindElement VKind = iota
	// KindText represents a text node
	KindText
	// KindFragment represents a list of siblings without a parent element
	KindFragment
)

// Props represents the properties/attributes of a VNode.
// Keys starting with "on" hold event handlers of type func().
type Props map[string]any

// VNode represents a virtual DOM node
type VNode struct {
	Kind  VKind
	Tag   string
	Props Props
	Kids  []VNode
	Text  string
}

// NewElement creates a new element VNode
func NewElement(tag string, props Props, children ...*VNode) *VNode {
	return &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  collect(children),
	}
}

// NewText creates a new text VNode
func NewText(text string) *VNode {
	return &VNode{Kind: KindText, Text: text}
}

// NewFragment creates a new fragment VNode
func NewFragment(children ...*VNode) *VNode {
	return &VNode{Kind: KindFragment, Kids: collect(children)}
}

func collect(children []*VNode) []VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}
	return kids
}

// IsElement returns true if this is an element node
func (v VNode) IsElement() bool {
	return v.Kind == KindElement
}

// IsText returns true if this is a text node
func (v VNode) IsText() bool {
	return v.Kind == KindText
}

// IsEventProp reports whether a prop key names an event handler ("onclick").
func IsEventProp(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// EventName strips the "on" prefix from an event prop key.
func EventName(key string) string {
	return strings.ToLower(key[2:])
}

// Handlers returns the event handlers attached to this node keyed by event name.
func (v VNode) Handlers() map[string]func() {
	var out map[string]func()
	for k, val := range v.Props {
		if !IsEventProp(k) {
			continue
		}
		fn, ok := val.(func())
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]func())
		}
		out[EventName(k)] = fn
	}
	return out
}

// Attrs returns the non-event props of this node as attribute strings.
// Boolean true props render as empty attributes; false props are omitted.
func (v VNode) Attrs() map[string]string {
	out := make(map[string]string, len(v.Props))
	for k, val := range v.Props {
		if k == "key" || IsEventProp(k) {
			continue
		}
		switch x := val.(type) {
		case bool:
			if x {
				out[k] = ""
			}
		case string:
			out[k] = x
		case nil:
		default:
			out[k] = fmt.Sprintf("%v", x)
		}
	}
	return out
}
