// Package ui is a terminal preview of a gallery. It mounts the real
// controller on an in-memory document and renders what a browser would show.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/recera/carousel/internal/page"
	"github.com/recera/carousel/pkg/carousel"
	"github.com/recera/carousel/pkg/dom"
	"github.com/recera/carousel/pkg/dom/memdom"
)

// frameInterval paces animation frames in the preview
const frameInterval = 16 * time.Millisecond

// swipeDistance is the simulated travel of a keyboard swipe
const swipeDistance = 120

// frameMsg drives one animation frame
type frameMsg time.Time

// Model represents the preview state
type Model struct {
	width  int
	height int

	doc  *memdom.Document
	root *memdom.Node
	c    *carousel.Carousel

	title  string
	cursor int

	keys     KeyMap
	help     help.Model
	showHelp bool
	quitting bool
}

// NewModel renders the gallery into a memdom document and mounts a
// controller on it
func NewModel(o page.Options, opts *carousel.Options) (Model, error) {
	if opts != nil && opts.HiddenClass != "" {
		o.HiddenClass = opts.HiddenClass
	}

	doc := memdom.New()
	root := doc.Mount(page.Gallery(o))
	c, err := carousel.NewPage(doc, opts).Mount(root)
	if err != nil {
		return Model{}, err
	}

	return Model{
		doc:   doc,
		root:  root,
		c:     c,
		title: o.Title,
		keys:  DefaultKeyMap,
		help:  help.New(),
	}, nil
}

// Init starts the frame clock
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.doc.RunFrame()
		m.doc.LoadImages()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	if !m.c.IsOpen() {
		m.handleGridKey(msg)
		return m, nil
	}

	// Open: keys are delivered as document events, like a browser would
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.doc.KeyDown("ArrowLeft")
	case key.Matches(msg, m.keys.Next):
		m.doc.KeyDown("ArrowRight")
	case key.Matches(msg, m.keys.Close):
		m.doc.KeyDown("Escape")
	case key.Matches(msg, m.keys.SwipeLeft):
		m.swipe(-swipeDistance)
	case key.Matches(msg, m.keys.SwipeRight):
		m.swipe(swipeDistance)
	}
	return m, nil
}

func (m *Model) handleGridKey(msg tea.KeyMsg) {
	triggers := m.triggers()
	if len(triggers) == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.cursor = carousel.Wrap(m.cursor-1, len(triggers))
	case key.Matches(msg, m.keys.Next):
		m.cursor = carousel.Wrap(m.cursor+1, len(triggers))
	case key.Matches(msg, m.keys.Open):
		t := triggers[m.cursor]
		t.Focus()
		t.Click()
	}
}

func (m *Model) swipe(dx float64) {
	img := m.role(carousel.RoleImage)
	img.TouchStart(200, 100)
	img.TouchEnd(200+dx, 100)
}

func (m Model) triggers() []*memdom.Node {
	return m.root.FindAll(dom.RoleSelector(carousel.RoleOpen))
}

func (m Model) role(name string) *memdom.Node {
	return m.root.Find(dom.RoleSelector(name))
}

// Carousel exposes the mounted controller
func (m Model) Carousel() *carousel.Carousel {
	return m.c
}
