package carousel

// BuildSlides flattens a project into its slide sequence: the project's own
// image first, then each gallery image with alt and detail defaulted from
// the project.
func BuildSlides(p Project) []Slide {
	slides := make([]Slide, 0, 1+len(p.Gallery))
	slides = append(slides, Slide{Src: p.Src, Alt: p.Alt, Detail: p.Detail})
	for _, g := range p.Gallery {
		slides = append(slides, Slide{
			Src:    g.Src,
			Alt:    orDefault(g.Alt, p.Alt),
			Detail: orDefault(g.Detail, p.Detail),
		})
	}
	return slides
}

// Wrap maps any integer onto [0, n) treating the range as circular.
// Wrap(i, 0) is 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
