package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recera/carousel/pkg/carousel"
)

var (
	primaryColor = lipgloss.Color("#3b82f6")
	mutedColor   = lipgloss.Color("#94a3b8")
	accentColor  = lipgloss.Color("#f59e0b")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Width(60)

	activeThumbStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// View renders the preview
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.title
	if title == "" {
		title = "Gallery"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.c.IsOpen() {
		b.WriteString(m.renderModal())
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderGrid() string {
	projects := m.c.Projects()
	if len(projects) == 0 {
		return mutedStyle.Render("No projects in this gallery.") + "\n"
	}

	var b strings.Builder
	for i, p := range projects {
		label := p.Alt
		if label == "" {
			label = p.Src
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + label))
		} else {
			b.WriteString("  " + label)
		}
		if n := len(p.Gallery); n > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  +%d", n)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderModal() string {
	img := m.role(carousel.RoleImage)
	src, _ := img.Attr("src")

	state := "loading…"
	if m.c.Phase() == carousel.PhaseLoaded {
		state = "shown"
	}

	var body strings.Builder
	body.WriteString(selectedStyle.Render(m.role(carousel.RoleTitle).TextContent()))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%s (%s)", src, state)))
	body.WriteString("\n\n")

	if detail := m.role(carousel.RoleContent).TextContent(); detail != "" {
		body.WriteString(detail)
		body.WriteString("\n\n")
	}

	body.WriteString(m.renderThumbs())
	if progress := m.role(carousel.RoleProgress).TextContent(); progress != "" {
		body.WriteString("  ")
		body.WriteString(mutedStyle.Render(progress))
	}

	return frameStyle.Render(body.String()) + "\n"
}

func (m Model) renderThumbs() string {
	thumbs := m.role(carousel.RoleThumbs).Children()
	parts := make([]string, 0, len(thumbs))
	for i, t := range thumbs {
		label := fmt.Sprintf("[%d]", i+1)
		if t.HasClass("is-active") {
			parts = append(parts, activeThumbStyle.Render(label))
		} else {
			parts = append(parts, mutedStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
