//go:build !js || !wasm
// +build !js !wasm

package browser

import (
	"errors"

	"github.com/recera/carousel/pkg/dom"
)

// ErrUnsupported is returned outside WebAssembly builds
var ErrUnsupported = errors.New("browser document is only available in WASM builds")

// Document is unavailable outside the browser (stub)
type Document struct{}

// NewDocument returns ErrUnsupported (stub)
func NewDocument() (*Document, error) {
	return nil, ErrUnsupported
}

var _ dom.Document = (*Document)(nil)

// Root implements dom.Document (stub)
func (d *Document) Root() dom.Element { return nil }

// Body implements dom.Document (stub)
func (d *Document) Body() dom.Element { return nil }

// ActiveElement implements dom.Document (stub)
func (d *Document) ActiveElement() dom.Element { return nil }

// QueryAll implements dom.Document (stub)
func (d *Document) QueryAll(string) []dom.Element { return nil }

// CurrentScript implements dom.Document (stub)
func (d *Document) CurrentScript() dom.Element { return nil }

// AddListener implements dom.Document (stub)
func (d *Document) AddListener(string, dom.Listener) func() { return func() {} }

// RequestAnimationFrame implements dom.Document (stub)
func (d *Document) RequestAnimationFrame(func()) {}

// Preload implements dom.Document (stub)
func (d *Document) Preload(string) {}
