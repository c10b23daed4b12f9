package carousel

import "github.com/recera/carousel/pkg/dom"

// Carousel is one controller instance bound to a single root.
// All methods must be called from the event loop goroutine.
type Carousel struct {
	page *Page
	opts Options
	el   *Elements

	projects       []Project
	currentProject int
	slides         []Slide
	currentSlide   int
	open           bool
	lastFocused    dom.Element

	// generation increments on every slide display so that frame and load
	// callbacks from a superseded display can tell they are stale
	generation uint64
	phase      Phase

	touching   bool
	touchStart dom.Point

	releases []func()
}

// OpenProject opens the modal on project i, wrapping out-of-range indexes.
// With no projects it does nothing.
func (c *Carousel) OpenProject(i int) {
	if len(c.projects) == 0 {
		logf("open ignored: no projects loaded")
		return
	}
	i = Wrap(i, len(c.projects))

	c.currentProject = i
	c.slides = BuildSlides(c.projects[i])
	c.currentSlide = 0

	// Switching projects while open keeps the focus target from the first open
	if !c.open {
		c.lastFocused = c.page.doc.ActiveElement()
		c.el.Modal.SetClass(c.opts.HiddenClass, false)
		c.el.Modal.SetAttr("aria-hidden", "false")
		c.open = true
		c.page.lockScroll()
	}
	c.el.Close.Focus()

	c.ShowSlide(0)
}

// ShowSlide displays slide i of the open project, wrapping in both
// directions. It is a no-op while the modal is closed.
func (c *Carousel) ShowSlide(i int) {
	if !c.open {
		return
	}
	n := len(c.slides)
	c.currentSlide = Wrap(i, n)
	if n == 0 {
		return
	}

	c.render()
	c.preload()
}

// Next shows the following slide
func (c *Carousel) Next() {
	c.ShowSlide(c.currentSlide + 1)
}

// Prev shows the preceding slide
func (c *Carousel) Prev() {
	c.ShowSlide(c.currentSlide - 1)
}

// Close hides the modal and restores focus to whatever held it before
// the modal opened, if that element is still in the document.
func (c *Carousel) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.generation++

	c.el.Modal.SetClass(c.opts.HiddenClass, true)
	c.el.Modal.SetAttr("aria-hidden", "true")
	c.page.unlockScroll()

	last := c.lastFocused
	c.lastFocused = nil
	if last != nil && last.IsConnected() {
		last.Focus()
	}
}

// Destroy closes the modal and releases every listener the instance bound
func (c *Carousel) Destroy() {
	c.Close()
	for _, release := range c.releases {
		release()
	}
	c.releases = nil
}

// IsOpen reports whether the modal is visible
func (c *Carousel) IsOpen() bool { return c.open }

// CurrentProject returns the index of the last opened project
func (c *Carousel) CurrentProject() int { return c.currentProject }

// CurrentSlide returns the index of the displayed slide
func (c *Carousel) CurrentSlide() int { return c.currentSlide }

// Phase returns the crossfade phase of the displayed slide
func (c *Carousel) Phase() Phase { return c.phase }

// Slides returns a copy of the current slide sequence
func (c *Carousel) Slides() []Slide {
	return append([]Slide(nil), c.slides...)
}

// Projects returns a copy of the loaded project list
func (c *Carousel) Projects() []Project {
	return append([]Project(nil), c.projects...)
}

// Elements returns the bound role elements
func (c *Carousel) Elements() *Elements { return c.el }
