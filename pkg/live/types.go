package live

// MessageType identifies a live-reload message
type MessageType string

const (
	// TypeHello is sent to every client right after it connects
	TypeHello MessageType = "hello"
	// TypeReload asks clients to reload the page
	TypeReload MessageType = "reload"
	// TypeError reports a failed rebuild; clients keep the current page
	TypeError MessageType = "error"
)

// Path is where the hub is mounted by the dev server
const Path = "/carousel/live"

// Message is the JSON frame exchanged over the socket
type Message struct {
	Type    MessageType `json:"type"`
	Target  string      `json:"target,omitempty"`
	Message string      `json:"message,omitempty"`
}
