package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/recera/carousel/internal/page"
	"github.com/recera/carousel/pkg/carousel"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	o := page.Options{
		Title: "Preview",
		Projects: []carousel.Project{
			{Src: "a.jpg", Alt: "Alpha", Detail: "First", Gallery: []carousel.SubImage{{Src: "a2.jpg"}, {Src: "a3.jpg"}}},
			{Src: "b.jpg", Alt: "Beta"},
		},
		Payload: `[{"src":"a.jpg","alt":"Alpha","detail":"First","gallery":[{"src":"a2.jpg"},{"src":"a3.jpg"}]},{"src":"b.jpg","alt":"Beta"}]`,
	}
	m, err := NewModel(o, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_GridNavigation(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "▸ Alpha") {
		t.Errorf("cursor should start on the first project:\n%s", view)
	}

	m = send(m, keyMsg(tea.KeyRight))
	if !strings.Contains(m.View(), "▸ Beta") {
		t.Error("cursor should move to Beta")
	}
	m = send(m, keyMsg(tea.KeyRight))
	if !strings.Contains(m.View(), "▸ Alpha") {
		t.Error("cursor should wrap to Alpha")
	}
}

func TestModel_OpenNavigateClose(t *testing.T) {
	m := newTestModel(t)
	frame := frameMsg(time.Now())

	m = send(m, keyMsg(tea.KeyEnter))
	c := m.Carousel()
	if !c.IsOpen() {
		t.Fatal("enter should open the selected project")
	}
	if !strings.Contains(m.View(), "loading") {
		t.Error("image should be loading before the first frame")
	}

	m = send(m, frame)
	view := m.View()
	if c.Phase() != carousel.PhaseLoaded {
		t.Errorf("Phase() = %v after a frame", c.Phase())
	}
	for _, want := range []string{"Alpha", "a.jpg (shown)", "First", "1 / 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = send(m, keyMsg(tea.KeyRight), frame)
	if c.CurrentSlide() != 1 || !strings.Contains(m.View(), "2 / 3") {
		t.Errorf("right arrow: slide %d", c.CurrentSlide())
	}

	m = send(m, runeMsg('L'))
	if c.CurrentSlide() != 2 {
		t.Errorf("swipe left: slide %d", c.CurrentSlide())
	}
	m = send(m, runeMsg('H'))
	if c.CurrentSlide() != 1 {
		t.Errorf("swipe right: slide %d", c.CurrentSlide())
	}

	m = send(m, keyMsg(tea.KeyEsc))
	if c.IsOpen() {
		t.Error("esc should close")
	}
	if !strings.Contains(m.View(), "▸ Alpha") {
		t.Error("grid should be shown after closing")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeMsg('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if got := next.(Model).View(); got != "" {
		t.Errorf("View() after quit = %q", got)
	}
}

func TestNewModel_BadPayload(t *testing.T) {
	_, err := NewModel(page.Options{Payload: "{"}, nil)
	if err == nil {
		t.Error("expected an error for a malformed payload")
	}
}
