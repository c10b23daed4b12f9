// Package manifest reads the YAML gallery description and turns it into the
// project payload embedded in the page.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/recera/carousel/pkg/carousel"
)

// ErrInvalid is returned when a manifest fails validation
var ErrInvalid = errors.New("invalid manifest")

// Manifest is the top-level gallery.yaml document
type Manifest struct {
	Title    string  `yaml:"title"`
	Projects []Entry `yaml:"projects"`
}

// Image is a single picture with its caption
type Image struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt,omitempty"`
	Detail string `yaml:"detail,omitempty"`
	// DetailMD is markdown rendered to HTML; it wins over Detail
	DetailMD string `yaml:"detail_md,omitempty"`
}

// Entry is a project: a primary image plus an optional sub-gallery
type Entry struct {
	Image   `yaml:",inline"`
	Gallery []Image `yaml:"gallery,omitempty"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Load reads and validates a manifest file
func Load(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", file, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return m, nil
}

// Parse decodes and validates manifest YAML
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate requires a source on every image
func (m *Manifest) Validate() error {
	for i, p := range m.Projects {
		if strings.TrimSpace(p.Src) == "" {
			return fmt.Errorf("%w: projects[%d].src is required", ErrInvalid, i)
		}
		for j, g := range p.Gallery {
			if strings.TrimSpace(g.Src) == "" {
				return fmt.Errorf("%w: projects[%d].gallery[%d].src is required", ErrInvalid, i, j)
			}
		}
	}
	return nil
}

// ControllerProjects converts the manifest entries into controller projects,
// rendering any markdown details to HTML
func (m *Manifest) ControllerProjects() ([]carousel.Project, error) {
	projects := make([]carousel.Project, 0, len(m.Projects))
	for i, e := range m.Projects {
		detail, err := e.detail()
		if err != nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
		p := carousel.Project{Src: e.Src, Alt: e.Alt, Detail: detail}

		for j, g := range e.Gallery {
			sub, err := g.detail()
			if err != nil {
				return nil, fmt.Errorf("projects[%d].gallery[%d]: %w", i, j, err)
			}
			p.Gallery = append(p.Gallery, carousel.SubImage{Src: g.Src, Alt: g.Alt, Detail: sub})
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (img Image) detail() (string, error) {
	if img.DetailMD == "" {
		return img.Detail, nil
	}
	return RenderMarkdown(img.DetailMD)
}

// RenderMarkdown converts markdown to an HTML fragment
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Payload encodes the projects as the JSON embedded in the data script.
// encoding/json escapes '<' so the payload cannot close its script element.
func (m *Manifest) Payload() (string, error) {
	projects, err := m.ControllerProjects()
	if err != nil {
		return "", err
	}
	if projects == nil {
		projects = []carousel.Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	return string(data), nil
}

// Assets lists the distinct local image paths referenced by the manifest,
// in first-use order. Absolute URLs and data URIs are skipped.
func (m *Manifest) Assets() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(src string) {
		if !isLocal(src) {
			return
		}
		clean := path.Clean(strings.TrimPrefix(src, "/"))
		if !seen[clean] {
			seen[clean] = true
			out = append(out, clean)
		}
	}
	for _, p := range m.Projects {
		add(p.Src)
		for _, g := range p.Gallery {
			add(g.Src)
		}
	}
	return out
}

func isLocal(src string) bool {
	if src == "" || strings.HasPrefix(src, "//") {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Scheme == "" && !strings.Contains(path.Clean(src), "..")
}
