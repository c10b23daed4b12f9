package carousel

import (
	"fmt"
	"strconv"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/vdom"
	"github.com/recera/carousel/pkg/vex/builder"
)

// completer is implemented by image elements that can report an already
// finished load, in which case no load event follows a same-source swap
type completer interface {
	Complete() bool
}

// render paints the current slide. The image fades out immediately and is
// swapped on the next animation frame; the fade-in waits for its load event.
// Thumbnails and progress update synchronously.
func (c *Carousel) render() {
	c.generation++
	gen := c.generation
	slide := c.slides[c.currentSlide]
	index := c.currentSlide

	img := c.el.Image
	img.SetStyle("opacity", "0")
	c.phase = PhasePending

	c.page.doc.RequestAnimationFrame(func() {
		if gen != c.generation {
			return
		}

		var release func()
		onLoad := func(dom.Event) {
			release()
			if gen != c.generation {
				return
			}
			img.SetStyle("transition", c.opts.FadeTransition)
			img.SetStyle("opacity", "1")
			c.phase = PhaseLoaded
		}
		release = img.AddListener("load", onLoad)

		img.SetAttr("src", slide.Src)
		img.SetAttr("alt", slide.Alt)
		c.el.Title.SetText(c.title(slide, index))
		c.renderDetail(slide.Detail)

		if cp, ok := img.(completer); ok && cp.Complete() {
			onLoad(dom.Event{Type: "load", Target: img})
		}
	})

	c.renderThumbs()
	c.renderProgress()
}

// title prefers the project's alt text, then the slide's, then a label
func (c *Carousel) title(slide Slide, index int) string {
	if alt := c.projects[c.currentProject].Alt; alt != "" {
		return alt
	}
	if slide.Alt != "" {
		return slide.Alt
	}
	return fmt.Sprintf("Image %d", index+1)
}

func (c *Carousel) renderDetail(detail string) {
	if detail != "" && c.opts.MarkupDetector(detail) {
		c.el.Content.SetHTML(detail)
		return
	}
	c.el.Content.SetText(detail)
}

func (c *Carousel) renderThumbs() {
	thumbs := make([]*vdom.VNode, 0, len(c.slides))
	for i, s := range c.slides {
		idx := i
		b := builder.Button().
			Class("carousel-thumb").
			Data("index", strconv.Itoa(i)).
			Aria("label", fmt.Sprintf("Show image %d", i+1)).
			OnClick(func() { c.ShowSlide(idx) }).
			Children(builder.Img().Src(s.Src).Alt(s.Alt).Loading("lazy").Build())
		if i == c.currentSlide {
			b.Class("is-active").Aria("current", "true")
		}
		thumbs = append(thumbs, b.Build())
	}
	c.el.Thumbs.Replace(thumbs...)
}

func (c *Carousel) renderProgress() {
	if c.el.Progress == nil {
		return
	}
	if n := len(c.slides); n > 1 {
		c.el.Progress.SetText(fmt.Sprintf("%d / %d", c.currentSlide+1, n))
		return
	}
	c.el.Progress.SetText("")
}

// preload warms the wrap-around neighbours of the current slide
func (c *Carousel) preload() {
	n := len(c.slides)
	for _, i := range []int{c.currentSlide - 1, c.currentSlide + 1} {
		if src := c.slides[Wrap(i, n)].Src; src != "" {
			c.page.doc.Preload(src)
		}
	}
}
