package carousel

import (
	"errors"

	"github.com/recera/carousel/pkg/dom"
)

// Page owns the per-document state shared by every instance on it: the
// document itself, the options, and a reference-counted scroll lock.
type Page struct {
	doc       dom.Document
	opts      Options
	scrollRef int
	instances []*Carousel
}

// NewPage creates a page over doc
func NewPage(doc dom.Document, opts *Options) *Page {
	return &Page{doc: doc, opts: opts.withDefaults()}
}

// Document returns the hosting document
func (p *Page) Document() dom.Document {
	return p.doc
}

// Instances returns the mounted instances in mount order
func (p *Page) Instances() []*Carousel {
	return append([]*Carousel(nil), p.instances...)
}

// MountAll mounts an instance on every carousel root in the document.
// Roots that fail to bind or load are skipped.
func (p *Page) MountAll() []*Carousel {
	var mounted []*Carousel
	for _, root := range p.doc.QueryAll(dom.RootSelector) {
		if c := p.tryMount(root); c != nil {
			mounted = append(mounted, c)
		}
	}
	return mounted
}

// MountAuto mounts like a directly executing script would: when the
// document reports a current script, only its nearest carousel root (or the
// whole document if it has none) is mounted; otherwise every root is.
func (p *Page) MountAuto() []*Carousel {
	script := p.doc.CurrentScript()
	if script == nil {
		return p.MountAll()
	}

	root := script.Closest(dom.RootSelector)
	if root == nil {
		root = p.doc.Root()
	}
	if c := p.tryMount(root); c != nil {
		return []*Carousel{c}
	}
	return nil
}

func (p *Page) tryMount(root dom.Element) *Carousel {
	c, err := p.Mount(root)
	switch {
	case err == nil:
		return c
	case errors.Is(err, ErrMalformedPayload):
		logf("skipping root with unreadable payload: %v", err)
	default:
		logf("skipping root: %v", err)
	}
	return nil
}

// Mount creates an instance scoped to root. Nothing is bound unless both
// the markup and the payload are valid.
func (p *Page) Mount(root dom.Element) (*Carousel, error) {
	el, err := Bind(root)
	if err != nil {
		return nil, err
	}

	projects, err := LoadProjects(el.Data.TextContent())
	if err != nil {
		return nil, err
	}

	c := &Carousel{
		page:     p,
		opts:     p.opts,
		el:       el,
		projects: projects,
	}
	c.bindInput()
	p.instances = append(p.instances, c)
	return c, nil
}

// lockScroll disables background scrolling on the first open modal
func (p *Page) lockScroll() {
	p.scrollRef++
	if p.scrollRef == 1 {
		setOverflow(p.doc, "hidden")
	}
}

// unlockScroll restores background scrolling when the last modal closes
func (p *Page) unlockScroll() {
	if p.scrollRef == 0 {
		return
	}
	p.scrollRef--
	if p.scrollRef == 0 {
		setOverflow(p.doc, "")
	}
}

// ScrollLocked reports whether any instance holds the scroll lock
func (p *Page) ScrollLocked() bool {
	return p.scrollRef > 0
}

func setOverflow(doc dom.Document, value string) {
	if root := doc.Root(); root != nil {
		root.SetStyle("overflow", value)
	}
	if body := doc.Body(); body != nil {
		body.SetStyle("overflow", value)
	}
}
