//go:build js && wasm
// +build js,wasm

// Command carousel-wasm is the in-page controller. It mounts a lightbox on
// every carousel root in the document and then stays resident to serve
// events.
package main

import (
	"github.com/recera/carousel/internal/page"
	"github.com/recera/carousel/pkg/carousel"
	"github.com/recera/carousel/pkg/debug"
	"github.com/recera/carousel/pkg/live"
	"github.com/recera/carousel/pkg/renderer/browser"
)

func main() {
	doc, err := browser.NewDocument()
	if err != nil {
		debug.Log("[Carousel]", err.Error())
		return
	}

	settings := page.ReadSettings(doc.Body())
	if settings.Debug {
		debug.EnableLogging()
	}

	instances := carousel.NewPage(doc, &settings.Options).MountAuto()
	if settings.Debug {
		debug.Logf("[Carousel] mounted %d instance(s)", len(instances))
	}

	if settings.LiveURL != "" {
		live.Connect(settings.LiveURL)
	}

	// Keep the program alive so event callbacks keep working
	select {}
}
