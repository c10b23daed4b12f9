package carousel

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/dom/memdom"
	"github.com/recera/carousel/pkg/vdom"
	"github.com/recera/carousel/pkg/vex/builder"
)

func sampleProjects() []Project {
	return []Project{
		{
			Src:    "a.jpg",
			Alt:    "Alpha",
			Detail: "<b>Bold</b>",
			Gallery: []SubImage{
				{Src: "a2.jpg"},
				{Src: "a3.jpg", Alt: "Alpha three", Detail: "Plain text"},
				{Src: "a4.jpg"},
				{Src: "a5.jpg"},
			},
		},
		{Src: "b.jpg"},
	}
}

// galleryMarkup builds a host root honouring the role contract. Roles named
// in omit are left out.
func galleryMarkup(t testing.TB, projects []Project, omit ...string) *vdom.VNode {
	t.Helper()
	payload, err := json.Marshal(projects)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return galleryMarkupRaw(string(payload), len(projects), omit...)
}

func galleryMarkupRaw(payload string, triggers int, omit ...string) *vdom.VNode {
	skip := make(map[string]bool, len(omit))
	for _, o := range omit {
		skip[o] = true
	}
	role := func(name string, b *builder.ElementBuilder) *vdom.VNode {
		if skip[name] {
			return nil
		}
		return b.Role(name).Build()
	}

	var opens []*vdom.VNode
	for i := 0; i < triggers; i++ {
		opens = append(opens, builder.Button().Role(RoleOpen).Data("index", strconv.Itoa(i)).Text("Open").Build())
	}

	return builder.Section().Attr(dom.RootAttr, true).Children(
		role(RoleData, builder.Script().Type("application/json").Text(payload)),
		builder.Div().Children(opens...).Build(),
		builder.Div().Role(RoleModal).Class("hidden").Aria("hidden", "true").Children(
			role(RoleOverlay, builder.Div()),
			role(RoleClose, builder.Button().Text("×")),
			role(RoleImage, builder.Img()),
			role(RoleTitle, builder.H2()),
			role(RoleContent, builder.Div()),
			role(RoleProgress, builder.Span()),
			role(RolePrev, builder.Button().Text("‹")),
			role(RoleNext, builder.Button().Text("›")),
			role(RoleThumbs, builder.Div()),
		).Build(),
	).Build()
}

type harness struct {
	doc  *memdom.Document
	root *memdom.Node
	page *Page
	c    *Carousel
}

func newHarness(t testing.TB, projects []Project) *harness {
	t.Helper()
	doc := memdom.New()
	root := doc.Mount(galleryMarkup(t, projects))
	page := NewPage(doc, nil)
	c, err := page.Mount(root)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return &harness{doc: doc, root: root, page: page, c: c}
}

func (h *harness) role(name string) *memdom.Node {
	return h.root.Find(dom.RoleSelector(name))
}

func (h *harness) trigger(i int) *memdom.Node {
	return h.root.FindAll(dom.RoleSelector(RoleOpen))[i]
}

// settle runs the pending frame and completes image loads
func (h *harness) settle() {
	h.doc.RunFrame()
	h.doc.LoadImages()
}

// captureLog installs a debug logger for the duration of the test
func captureLog(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	SetDebugLog(func(args ...interface{}) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
	})
	t.Cleanup(func() { SetDebugLog(nil) })
	return &lines
}
