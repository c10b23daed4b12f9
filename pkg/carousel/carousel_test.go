package carousel

import (
	"testing"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/dom/memdom"
)

func TestOpenProject_ShowsModal(t *testing.T) {
	h := newHarness(t, sampleProjects())
	h.trigger(0).Click()

	if !h.c.IsOpen() {
		t.Fatal("modal should be open")
	}
	modal := h.role(RoleModal)
	if modal.HasClass("hidden") {
		t.Error("modal still carries the hidden class")
	}
	if v, _ := modal.Attr("aria-hidden"); v != "false" {
		t.Errorf("aria-hidden = %q, want false", v)
	}
	if h.doc.ActiveElement() != dom.Element(h.role(RoleClose)) {
		t.Error("close control should receive focus")
	}
	if !h.page.ScrollLocked() {
		t.Error("background scroll should be locked")
	}
	if got := h.doc.BodyNode().Style("overflow"); got != "hidden" {
		t.Errorf("body overflow = %q, want hidden", got)
	}
}

func TestOpenProject_ResetsSlide(t *testing.T) {
	h := newHarness(t, sampleProjects())

	h.c.OpenProject(0)
	h.c.ShowSlide(3)
	if h.c.CurrentSlide() != 3 {
		t.Fatalf("CurrentSlide() = %d, want 3", h.c.CurrentSlide())
	}

	h.c.OpenProject(1)
	if h.c.CurrentProject() != 1 {
		t.Errorf("CurrentProject() = %d, want 1", h.c.CurrentProject())
	}
	if h.c.CurrentSlide() != 0 {
		t.Errorf("CurrentSlide() = %d, want 0", h.c.CurrentSlide())
	}
	if len(h.c.Slides()) != 1 {
		t.Errorf("expected 1 slide, got %d", len(h.c.Slides()))
	}

	h.c.OpenProject(0)
	if h.c.CurrentSlide() != 0 || len(h.c.Slides()) != 5 {
		t.Errorf("reopen: slide %d of %d", h.c.CurrentSlide(), len(h.c.Slides()))
	}
}

func TestOpenProject_WrapsIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 0},
		{7, 1},
		{-1, 1},
	}

	for _, tt := range tests {
		h := newHarness(t, sampleProjects())
		h.c.OpenProject(tt.index)
		if h.c.CurrentProject() != tt.want {
			t.Errorf("OpenProject(%d): CurrentProject() = %d, want %d", tt.index, h.c.CurrentProject(), tt.want)
		}
	}
}

func TestOpenProject_NoProjects(t *testing.T) {
	for _, payload := range []string{"", "[]"} {
		doc := memdom.New()
		root := doc.Mount(galleryMarkupRaw(payload, 1))
		page := NewPage(doc, nil)
		c, err := page.Mount(root)
		if err != nil {
			t.Fatalf("payload %q: Mount() error = %v", payload, err)
		}

		root.Find(dom.RoleSelector(RoleOpen)).Click()
		if c.IsOpen() {
			t.Errorf("payload %q: modal opened with no projects", payload)
		}
		if page.ScrollLocked() {
			t.Errorf("payload %q: scroll locked with no projects", payload)
		}
	}
}

func TestNavigation_RoundTrip(t *testing.T) {
	h := newHarness(t, sampleProjects())
	h.c.OpenProject(0)

	for start := 0; start < 5; start++ {
		h.c.ShowSlide(start)
		h.c.Next()
		h.c.Prev()
		if h.c.CurrentSlide() != start {
			t.Errorf("next/prev from %d landed on %d", start, h.c.CurrentSlide())
		}
		h.c.Prev()
		h.c.Next()
		if h.c.CurrentSlide() != start {
			t.Errorf("prev/next from %d landed on %d", start, h.c.CurrentSlide())
		}
	}
}

func TestNavigation_Wraps(t *testing.T) {
	h := newHarness(t, sampleProjects())
	h.c.OpenProject(0)

	h.c.Prev()
	if h.c.CurrentSlide() != 4 {
		t.Errorf("prev from first = %d, want 4", h.c.CurrentSlide())
	}
	h.c.Next()
	if h.c.CurrentSlide() != 0 {
		t.Errorf("next from last = %d, want 0", h.c.CurrentSlide())
	}
	h.c.ShowSlide(12)
	if h.c.CurrentSlide() != 2 {
		t.Errorf("ShowSlide(12) = %d, want 2", h.c.CurrentSlide())
	}
}

func TestShowSlide_IgnoredWhileClosed(t *testing.T) {
	h := newHarness(t, sampleProjects())

	h.c.ShowSlide(2)
	h.c.Next()
	if h.c.CurrentSlide() != 0 {
		t.Errorf("CurrentSlide() = %d while closed", h.c.CurrentSlide())
	}
	if h.doc.PendingFrames() != 0 {
		t.Error("closed instance requested a frame")
	}
}

func TestClose_RestoresFocus(t *testing.T) {
	h := newHarness(t, sampleProjects())
	trigger := h.trigger(1)

	trigger.Focus()
	trigger.Click()
	// switching project while open must not overwrite the saved focus
	h.c.OpenProject(0)
	h.c.Close()

	if h.c.IsOpen() {
		t.Fatal("modal should be closed")
	}
	if h.doc.ActiveElement() != dom.Element(trigger) {
		t.Error("focus should return to the trigger")
	}
	modal := h.role(RoleModal)
	if !modal.HasClass("hidden") {
		t.Error("modal should carry the hidden class")
	}
	if v, _ := modal.Attr("aria-hidden"); v != "true" {
		t.Errorf("aria-hidden = %q, want true", v)
	}
	if h.page.ScrollLocked() || h.doc.BodyNode().Style("overflow") != "" {
		t.Error("scroll lock should be released")
	}
}

func TestClose_RemovedFocusTarget(t *testing.T) {
	h := newHarness(t, sampleProjects())
	trigger := h.trigger(0)

	trigger.Focus()
	trigger.Click()
	trigger.Remove()
	h.c.Close()

	if h.doc.ActiveElement() == dom.Element(trigger) {
		t.Error("focus moved to a detached trigger")
	}
	if h.c.IsOpen() {
		t.Error("modal should be closed")
	}
}

func TestClose_IsIdempotent(t *testing.T) {
	h := newHarness(t, sampleProjects())
	h.c.OpenProject(0)
	h.c.Close()
	h.c.Close()

	if h.page.ScrollLocked() {
		t.Error("double close left the scroll lock unbalanced")
	}
}

func TestScrollLock_SharedAcrossInstances(t *testing.T) {
	doc := memdom.New()
	doc.Mount(galleryMarkup(t, sampleProjects()))
	doc.Mount(galleryMarkup(t, sampleProjects()))
	page := NewPage(doc, nil)

	mounted := page.MountAll()
	if len(mounted) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(mounted))
	}
	a, b := mounted[0], mounted[1]

	a.OpenProject(0)
	b.OpenProject(1)
	a.Close()
	if got := doc.RootNode().Style("overflow"); got != "hidden" {
		t.Errorf("overflow = %q with one modal still open", got)
	}

	b.Close()
	if got := doc.RootNode().Style("overflow"); got != "" {
		t.Errorf("overflow = %q after every modal closed", got)
	}
}

func TestDestroy_ReleasesListeners(t *testing.T) {
	h := newHarness(t, sampleProjects())
	h.c.OpenProject(0)
	h.c.Destroy()

	if h.c.IsOpen() {
		t.Error("Destroy should close the modal")
	}
	if n := h.doc.ListenerCount("keydown"); n != 0 {
		t.Errorf("document keydown listeners = %d", n)
	}
	for _, role := range []string{RoleOverlay, RoleClose, RoleNext, RolePrev} {
		if n := h.role(role).ListenerCount("click"); n != 0 {
			t.Errorf("%s click listeners = %d", role, n)
		}
	}
	if n := h.role(RoleImage).ListenerCount("touchstart"); n != 0 {
		t.Errorf("image touchstart listeners = %d", n)
	}

	h.trigger(0).Click()
	if h.c.IsOpen() {
		t.Error("destroyed instance reacted to a trigger")
	}
}
