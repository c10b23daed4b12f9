package carousel

import (
	"errors"
	"fmt"

	"github.com/recera/carousel/pkg/dom"
)

// ErrMissingRole is returned when a required role label is absent under a root
var ErrMissingRole = errors.New("carousel: required role missing")

// Elements holds the role-labelled elements of one instance
type Elements struct {
	Data     dom.Element
	Modal    dom.Element
	Overlay  dom.Element
	Close    dom.Element
	Image    dom.Element
	Title    dom.Element
	Content  dom.Element
	Progress dom.Element // optional
	Prev     dom.Element
	Next     dom.Element
	Thumbs   dom.Element
	Triggers []dom.Element
}

// Bind locates every role under root. It fails on the first missing
// required role and never partially binds.
func Bind(root dom.Element) (*Elements, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: root", ErrMissingRole)
	}

	el := &Elements{}
	required := []struct {
		role string
		dst  *dom.Element
	}{
		{RoleData, &el.Data},
		{RoleModal, &el.Modal},
		{RoleOverlay, &el.Overlay},
		{RoleClose, &el.Close},
		{RoleImage, &el.Image},
		{RoleTitle, &el.Title},
		{RoleContent, &el.Content},
		{RolePrev, &el.Prev},
		{RoleNext, &el.Next},
		{RoleThumbs, &el.Thumbs},
	}
	for _, r := range required {
		found := root.Query(dom.RoleSelector(r.role))
		if found == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingRole, r.role)
		}
		*r.dst = found
	}

	el.Progress = root.Query(dom.RoleSelector(RoleProgress))
	el.Triggers = root.QueryAll(dom.RoleSelector(RoleOpen))
	return el, nil
}
