// Package page renders the host document the controller mounts on.
package page

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/recera/carousel/pkg/carousel"
	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/renderer/html"
	"github.com/recera/carousel/pkg/vdom"
	"github.com/recera/carousel/pkg/vex/builder"
)

// Body attributes read by the WASM entry point
const (
	LiveAttr      = "data-carousel-live"
	DebugAttr     = "data-carousel-debug"
	ThresholdAttr = "data-carousel-swipe-threshold"
	HiddenAttr    = "data-carousel-hidden-class"
	FadeAttr      = "data-carousel-fade"
)

// Options describes one rendered page
type Options struct {
	Title    string
	Projects []carousel.Project
	// Payload is the JSON embedded in the data script
	Payload string

	WasmURL string
	ExecURL string
	// LiveURL enables the live-reload client when non-empty
	LiveURL string

	HiddenClass    string
	SwipeThreshold float64
	FadeTransition string
	Debug          bool
}

func (o Options) withDefaults() Options {
	if o.WasmURL == "" {
		o.WasmURL = "carousel.wasm"
	}
	if o.ExecURL == "" {
		o.ExecURL = "wasm_exec.js"
	}
	if o.HiddenClass == "" {
		o.HiddenClass = "hidden"
	}
	if o.Payload == "" {
		o.Payload = "[]"
	}
	return o
}

// Gallery builds the carousel root: the data script, one open trigger per
// project and the initially hidden modal
func Gallery(o Options) *vdom.VNode {
	o = o.withDefaults()

	cards := make([]*vdom.VNode, 0, len(o.Projects))
	for i, p := range o.Projects {
		label := p.Alt
		if label == "" {
			label = fmt.Sprintf("Project %d", i+1)
		}
		cards = append(cards, builder.Li().Class("carousel-card").Children(
			builder.Button().
				Class("carousel-open").
				Role(carousel.RoleOpen).
				Data("index", strconv.Itoa(i)).
				Aria("label", "Open "+label).
				Children(
					builder.Img().Src(p.Src).Alt(p.Alt).Loading("lazy").Build(),
				).Build(),
		).Build())
	}

	return builder.Section().Class("carousel").Attr(dom.RootAttr, true).Children(
		builder.Script().Type("application/json").Role(carousel.RoleData).Text(o.Payload).Build(),
		builder.Ul().Class("carousel-grid").Children(cards...).Build(),
		modal(o.HiddenClass),
	).Build()
}

func modal(hidden string) *vdom.VNode {
	return builder.Div().
		Class("carousel-modal", hidden).
		Role(carousel.RoleModal).
		Attr("role", "dialog").
		Aria("modal", "true").
		Aria("hidden", "true").
		Children(
			builder.Div().Class("carousel-overlay").Role(carousel.RoleOverlay).Build(),
			builder.Figure().Class("carousel-frame").Children(
				builder.Button().Class("carousel-close").Role(carousel.RoleClose).Aria("label", "Close").Text("×").Build(),
				builder.Button().Class("carousel-prev").Role(carousel.RolePrev).Aria("label", "Previous image").Text("‹").Build(),
				builder.Img().Class("carousel-image").Role(carousel.RoleImage).Alt("").Build(),
				builder.Button().Class("carousel-next").Role(carousel.RoleNext).Aria("label", "Next image").Text("›").Build(),
				builder.Figcaption().Class("carousel-caption").Children(
					builder.H2().Class("carousel-title").Role(carousel.RoleTitle).Build(),
					builder.Div().Class("carousel-content").Role(carousel.RoleContent).Build(),
					builder.Span().Class("carousel-progress").Role(carousel.RoleProgress).Aria("live", "polite").Build(),
				).Build(),
				builder.Div().Class("carousel-thumbs").Role(carousel.RoleThumbs).Build(),
			).Build(),
		).Build()
}

// Document builds the full HTML page
func Document(o Options) *vdom.VNode {
	o = o.withDefaults()

	title := o.Title
	if title == "" {
		title = "Gallery"
	}

	body := builder.El("body")
	if o.LiveURL != "" {
		body.Attr(LiveAttr, o.LiveURL)
	}
	if o.Debug {
		body.Attr(DebugAttr, true)
	}
	if o.SwipeThreshold > 0 {
		body.Attr(ThresholdAttr, strconv.FormatFloat(o.SwipeThreshold, 'f', -1, 64))
	}
	if o.FadeTransition != "" {
		body.Attr(FadeAttr, o.FadeTransition)
	}
	body.Attr(HiddenAttr, o.HiddenClass)

	return builder.El("html").Attr("lang", "en").Children(
		builder.El("head").Children(
			builder.El("meta").Attr("charset", "utf-8").Build(),
			builder.El("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1").Build(),
			builder.El("title").Text(title).Build(),
			builder.Style().Text(stylesheet(o.HiddenClass)).Build(),
		).Build(),
		body.Children(
			builder.H1().Class("carousel-heading").Text(title).Build(),
			Gallery(o),
			builder.Script().Attr("src", o.ExecURL).Build(),
			builder.Script().Text(bootstrap(o.WasmURL)).Build(),
		).Build(),
	).Build()
}

// Render writes the full document to w
func Render(w io.Writer, o Options) error {
	return html.RenderDocument(w, Document(o))
}

func bootstrap(wasmURL string) string {
	quoted, _ := json.Marshal(wasmURL)
	return fmt.Sprintf(`const go = new Go();
WebAssembly.instantiateStreaming(fetch(%s), go.importObject)
  .then((r) => go.run(r.instance))
  .catch((err) => console.error("[Carousel] failed to start:", err));`, quoted)
}

func stylesheet(hidden string) string {
	return fmt.Sprintf(`body { margin: 0; font-family: system-ui, sans-serif; background: #111; color: #eee; }
.carousel-heading { padding: 1.5rem 2rem 0; font-weight: 600; }
.carousel-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1rem; list-style: none; padding: 2rem; margin: 0; }
.carousel-open { border: 0; padding: 0; background: none; cursor: zoom-in; width: 100%%; }
.carousel-open img { width: 100%%; aspect-ratio: 4 / 3; object-fit: cover; display: block; }
.carousel-modal { position: fixed; inset: 0; z-index: 100; display: flex; align-items: center; justify-content: center; }
.carousel-modal.%[1]s, .%[1]s { display: none !important; }
.carousel-overlay { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.85); }
.carousel-frame { position: relative; margin: 0; max-width: 92vw; max-height: 92vh; display: flex; flex-direction: column; align-items: center; }
.carousel-image { max-width: 92vw; max-height: 70vh; opacity: 0; cursor: pointer; }
.carousel-close, .carousel-prev, .carousel-next { position: absolute; background: none; border: 0; color: #fff; font-size: 2.5rem; cursor: pointer; }
.carousel-close { top: -3rem; right: 0; }
.carousel-prev { left: -3rem; top: 35vh; }
.carousel-next { right: -3rem; top: 35vh; }
.carousel-caption { text-align: center; padding: 0.75rem 0; }
.carousel-title { margin: 0 0 0.25rem; font-size: 1.1rem; }
.carousel-progress { font-size: 0.85rem; opacity: 0.7; }
.carousel-thumbs { display: flex; gap: 0.5rem; overflow-x: auto; max-width: 92vw; }
.carousel-thumb { border: 2px solid transparent; padding: 0; background: none; cursor: pointer; opacity: 0.6; }
.carousel-thumb img { width: 64px; height: 48px; object-fit: cover; display: block; }
.carousel-thumb.is-active { border-color: #fff; opacity: 1; }`, hidden)
}
