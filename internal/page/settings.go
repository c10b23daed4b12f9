package page

import (
	"strconv"

	"github.com/recera/carousel/pkg/carousel"
	"github.com/recera/carousel/pkg/dom"
)

// Settings are the controller options Document writes onto the body
type Settings struct {
	Options carousel.Options
	LiveURL string
	Debug   bool
}

// ReadSettings recovers Settings from body attributes. Absent or malformed
// values are left zero so the controller defaults apply.
func ReadSettings(body dom.Element) Settings {
	var s Settings
	if body == nil {
		return s
	}
	s.LiveURL, _ = body.Attr(LiveAttr)
	_, s.Debug = body.Attr(DebugAttr)
	if v, ok := body.Attr(ThresholdAttr); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.Options.SwipeThreshold = f
		}
	}
	s.Options.HiddenClass, _ = body.Attr(HiddenAttr)
	s.Options.FadeTransition, _ = body.Attr(FadeAttr)
	return s
}
