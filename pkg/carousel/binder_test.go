package carousel

import (
	"errors"
	"testing"

	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/dom/memdom"
)

func TestBind_MissingRequiredRole(t *testing.T) {
	required := []string{
		RoleData, RoleOverlay, RoleClose, RoleImage, RoleTitle,
		RoleContent, RolePrev, RoleNext, RoleThumbs,
	}

	for _, role := range required {
		t.Run(role, func(t *testing.T) {
			doc := memdom.New()
			root := doc.Mount(galleryMarkup(t, sampleProjects(), role))
			page := NewPage(doc, nil)

			c, err := page.Mount(root)
			if !errors.Is(err, ErrMissingRole) {
				t.Fatalf("expected ErrMissingRole, got %v", err)
			}
			if c != nil {
				t.Error("no instance should be returned")
			}

			// Fail closed: nothing bound anywhere
			for _, trig := range root.FindAll(dom.RoleSelector(RoleOpen)) {
				if trig.ListenerCount("click") != 0 {
					t.Error("trigger gained a listener on failed mount")
				}
			}
			if doc.ListenerCount("keydown") != 0 {
				t.Error("document gained a keydown listener on failed mount")
			}
		})
	}
}

func TestBind_ProgressIsOptional(t *testing.T) {
	doc := memdom.New()
	root := doc.Mount(galleryMarkup(t, sampleProjects(), RoleProgress))

	el, err := Bind(root)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if el.Progress != nil {
		t.Error("Progress should be nil when absent")
	}
	if len(el.Triggers) != 2 {
		t.Errorf("expected 2 triggers, got %d", len(el.Triggers))
	}
}

func TestBind_NilRoot(t *testing.T) {
	if _, err := Bind(nil); !errors.Is(err, ErrMissingRole) {
		t.Errorf("expected ErrMissingRole, got %v", err)
	}
}

func TestMount_MalformedPayloadBindsNothing(t *testing.T) {
	doc := memdom.New()
	root := doc.Mount(galleryMarkupRaw(`[{"src":`, 1))
	page := NewPage(doc, nil)

	_, err := page.Mount(root)
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
	if doc.ListenerCount("keydown") != 0 {
		t.Error("keydown listener bound despite malformed payload")
	}
	if len(page.Instances()) != 0 {
		t.Error("failed mount registered an instance")
	}
}
