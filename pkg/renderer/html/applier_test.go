package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/recera/carousel/pkg/vdom"
)

func TestHTMLApplier_TextNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "simple text",
			node:     vdom.NewText("Hello World"),
			expected: "Hello World",
		},
		{
			name:     "text with HTML entities",
			node:     vdom.NewText("<script>alert('xss')</script>"),
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "text with quotes",
			node:     vdom.NewText(`"Hello" & 'World'`),
			expected: "&#34;Hello&#34; &amp; &#39;World&#39;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestHTMLApplier_Elements(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "empty div",
			node:     vdom.NewElement("div", nil),
			expected: "<div></div>",
		},
		{
			name: "div with sorted attributes",
			node: vdom.NewElement("div", vdom.Props{
				"id":    "main",
				"class": "container",
			}),
			expected: `<div class="container" id="main"></div>`,
		},
		{
			name: "void element",
			node: vdom.NewElement("img", vdom.Props{
				"src": "image.jpg",
				"alt": "Test Image",
			}),
			expected: `<img alt="Test Image" src="image.jpg">`,
		},
		{
			name: "boolean attributes",
			node: vdom.NewElement("button", vdom.Props{
				"type":     "button",
				"hidden":   true,
				"disabled": false,
			}),
			expected: `<button hidden type="button"></button>`,
		},
		{
			name: "empty string attribute keeps its value",
			node: vdom.NewElement("img", vdom.Props{"alt": ""}),
			expected: `<img alt="">`,
		},
		{
			name: "event handlers are dropped",
			node: vdom.NewElement("button", vdom.Props{
				"onclick": func() {},
			}, vdom.NewText("Go")),
			expected: `<button>Go</button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestHTMLApplier_RawScriptBody(t *testing.T) {
	node := vdom.NewElement("script", vdom.Props{"type": "application/json"},
		vdom.NewText(`[{"src":"a.jpg","detail":"<b>x</b>"}]`),
	)

	result, err := RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, `[{"src":"a.jpg"`) {
		t.Errorf("script body should not be escaped: %q", result)
	}
}

func TestHTMLApplier_XSSPrevention(t *testing.T) {
	tests := []struct {
		name    string
		node    *vdom.VNode
		notWant string
	}{
		{
			name:    "script in text",
			node:    vdom.NewElement("div", nil, vdom.NewText("<script>alert('xss')</script>")),
			notWant: "<script>",
		},
		{
			name:    "script in attribute",
			node:    vdom.NewElement("div", vdom.Props{"title": `<script>alert('xss')</script>`}),
			notWant: "<script>",
		},
		{
			name:    "javascript URL",
			node:    vdom.NewElement("img", vdom.Props{"src": " JavaScript:alert('xss')"}),
			notWant: "avaScript:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Contains(result, tt.notWant) {
				t.Errorf("Result should not contain %q, got: %q", tt.notWant, result)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	root := vdom.NewElement("html", vdom.Props{"lang": "en"},
		vdom.NewElement("body", nil, vdom.NewText("hi")),
	)
	if err := RenderDocument(&buf, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!DOCTYPE html>\n<html lang=\"en\"><body>hi</body></html>"
	if buf.String() != want {
		t.Errorf("RenderDocument() = %q, want %q", buf.String(), want)
	}
}
