package carousel

import "regexp"

// Options configures controller behavior. Zero values take defaults.
type Options struct {
	// MarkupDetector decides whether a detail string is inserted as markup
	// (true) or as literal text. Defaults to LooksLikeMarkup.
	MarkupDetector func(detail string) bool

	// SwipeThreshold is the minimum horizontal travel of a swipe. Default 40.
	SwipeThreshold float64

	// FadeTransition is the inline transition applied on fade-in
	FadeTransition string

	// HiddenClass is toggled on the modal while it is closed
	HiddenClass string
}

func (o *Options) withDefaults() Options {
	d := Options{
		MarkupDetector: LooksLikeMarkup,
		SwipeThreshold: 40,
		FadeTransition: "opacity 0.25s ease",
		HiddenClass:    "hidden",
	}
	if o == nil {
		return d
	}
	if o.MarkupDetector != nil {
		d.MarkupDetector = o.MarkupDetector
	}
	if o.SwipeThreshold > 0 {
		d.SwipeThreshold = o.SwipeThreshold
	}
	if o.FadeTransition != "" {
		d.FadeTransition = o.FadeTransition
	}
	if o.HiddenClass != "" {
		d.HiddenClass = o.HiddenClass
	}
	return d
}

var markupPattern = regexp.MustCompile(`(?i)</?[a-z][^<>]*>`)

// LooksLikeMarkup reports whether s contains something shaped like an HTML
// tag. It is a heuristic: "a < b > c" does not match but "x <br> y" does.
func LooksLikeMarkup(s string) bool {
	return markupPattern.MatchString(s)
}
