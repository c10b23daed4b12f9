package carousel

import (
	"math"
	"strconv"
	"strings"

	"github.com/recera/carousel/pkg/dom"
)

// Swipe is the outcome of a touch gesture
type Swipe int8

const (
	// SwipeNone is a tap, a scroll, or a gesture below the threshold
	SwipeNone Swipe = iota
	// SwipeLeft is a leftward drag, which advances
	SwipeLeft
	// SwipeRight is a rightward drag, which goes back
	SwipeRight
)

// DetectSwipe classifies a gesture. Horizontal travel must exceed threshold
// and strictly dominate vertical travel.
func DetectSwipe(start, end dom.Point, threshold float64) Swipe {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if math.Abs(dx) <= threshold || math.Abs(dx) <= math.Abs(dy) {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

// TriggerIndex reads the project index of an open trigger. A missing or
// unparseable attribute falls back to 0 and is logged.
func TriggerIndex(trigger dom.Element) int {
	raw, ok := trigger.Attr(dom.IndexAttr)
	if !ok {
		logf("trigger has no %s attribute, opening project 0", dom.IndexAttr)
		return 0
	}
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logf("trigger %s=%q is not a number, opening project 0", dom.IndexAttr, raw)
		return 0
	}
	return i
}

// bindInput wires clicks, the document keyboard listener and touch swipes
func (c *Carousel) bindInput() {
	for _, t := range c.el.Triggers {
		trigger := t
		c.listen(trigger, "click", func(dom.Event) {
			c.OpenProject(TriggerIndex(trigger))
		})
	}

	c.listen(c.el.Overlay, "click", func(dom.Event) { c.Close() })
	c.listen(c.el.Close, "click", func(dom.Event) { c.Close() })
	c.listen(c.el.Next, "click", func(dom.Event) { c.Next() })
	c.listen(c.el.Prev, "click", func(dom.Event) { c.Prev() })
	c.listen(c.el.Image, "click", func(dom.Event) { c.Next() })

	c.releases = append(c.releases, c.page.doc.AddListener("keydown", c.handleKey))

	c.listen(c.el.Image, "touchstart", c.handleTouchStart)
	c.listen(c.el.Image, "touchend", c.handleTouchEnd)
}

func (c *Carousel) listen(el dom.Element, event string, fn dom.Listener) {
	c.releases = append(c.releases, el.AddListener(event, fn))
}

// handleKey acts only while this instance's modal is open
func (c *Carousel) handleKey(e dom.Event) {
	if !c.open {
		return
	}
	switch e.Key {
	case "Escape":
		c.Close()
	case "ArrowRight":
		c.Next()
	case "ArrowLeft":
		c.Prev()
	}
}

func (c *Carousel) handleTouchStart(e dom.Event) {
	if len(e.Touches) == 0 {
		return
	}
	c.touchStart = e.Touches[0]
	c.touching = true
}

func (c *Carousel) handleTouchEnd(e dom.Event) {
	if !c.touching {
		return
	}
	c.touching = false
	if len(e.Touches) == 0 {
		return
	}

	switch DetectSwipe(c.touchStart, e.Touches[0], c.opts.SwipeThreshold) {
	case SwipeLeft:
		c.Next()
	case SwipeRight:
		c.Prev()
	}
}
