// Package carousel implements a scoped image lightbox controller. Each
// carousel root in a page gets its own instance that binds to role-labelled
// elements under that root, loads an embedded JSON project list, and drives
// a modal viewer with wrap-around slide navigation.
package carousel

// Role labels of the host markup contract
const (
	RoleData     = "data"
	RoleModal    = "modal"
	RoleOverlay  = "overlay"
	RoleClose    = "close"
	RoleImage    = "image"
	RoleTitle    = "title"
	RoleContent  = "content"
	RoleProgress = "progress"
	RolePrev     = "prev"
	RoleNext     = "next"
	RoleThumbs   = "thumbs"
	RoleOpen     = "open"
)

// SubImage is one extra image in a project gallery. Empty Alt and Detail
// fall back to the parent project's values.
type SubImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Project is one gallery entry point: a primary image plus an optional
// ordered sub-gallery
type Project struct {
	Src     string     `json:"src"`
	Alt     string     `json:"alt"`
	Detail  string     `json:"detail"`
	Gallery []SubImage `json:"gallery,omitempty"`
}

// Slide is the flattened unit of navigation
type Slide struct {
	Src    string
	Alt    string
	Detail string
}

// Phase tracks the crossfade of the displayed image
type Phase uint8

const (
	// PhaseIdle means nothing has been displayed yet
	PhaseIdle Phase = iota
	// PhasePending means the image is faded out waiting for its load event
	PhasePending
	// PhaseLoaded means the current image finished loading and faded in
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseLoaded:
		return "loaded"
	default:
		return "idle"
	}
}
