package carousel

import (
	"testing"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/dom/memdom"
	"github.com/recera/carousel/pkg/vex/builder"
)

func TestPage_MountAllSkipsBrokenRoots(t *testing.T) {
	lines := captureLog(t)
	doc := memdom.New()
	good := doc.Mount(galleryMarkup(t, sampleProjects()))
	doc.Mount(galleryMarkup(t, sampleProjects(), RoleThumbs))
	doc.Mount(galleryMarkupRaw("{not json", 1))
	page := NewPage(doc, nil)

	mounted := page.MountAll()
	if len(mounted) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(mounted))
	}
	if mounted[0].Elements().Modal != dom.Element(good.Find(dom.RoleSelector(RoleModal))) {
		t.Error("the valid root should be the one mounted")
	}
	if len(page.Instances()) != 1 {
		t.Errorf("Instances() = %d", len(page.Instances()))
	}
	if len(*lines) != 2 {
		t.Errorf("expected 2 log lines for skipped roots, got %v", *lines)
	}
}

func TestPage_MountAuto(t *testing.T) {
	t.Run("no current script mounts every root", func(t *testing.T) {
		doc := memdom.New()
		doc.Mount(galleryMarkup(t, sampleProjects()))
		doc.Mount(galleryMarkup(t, sampleProjects()))

		if got := len(NewPage(doc, nil).MountAuto()); got != 2 {
			t.Errorf("mounted %d, want 2", got)
		}
	})

	t.Run("script inside a root mounts that root", func(t *testing.T) {
		doc := memdom.New()
		doc.Mount(galleryMarkup(t, sampleProjects()))
		second := doc.Mount(galleryMarkup(t, sampleProjects()[1:]))
		doc.SetCurrentScript(second.Find("script"))

		mounted := NewPage(doc, nil).MountAuto()
		if len(mounted) != 1 {
			t.Fatalf("mounted %d, want 1", len(mounted))
		}
		if len(mounted[0].Projects()) != 1 {
			t.Error("the enclosing root was not the one mounted")
		}
	})

	t.Run("script outside any root scopes to the document", func(t *testing.T) {
		doc := memdom.New()
		doc.Mount(galleryMarkup(t, sampleProjects()))
		script := doc.Mount(builder.Script().Build())
		doc.SetCurrentScript(script)

		if got := len(NewPage(doc, nil).MountAuto()); got != 1 {
			t.Errorf("mounted %d, want 1", got)
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseIdle:    "idle",
		PhasePending: "pending",
		PhaseLoaded:  "loaded",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("%d.String() = %q, want %q", p, p.String(), want)
		}
	}
}
