//go:build js && wasm
// +build js,wasm

package live

import (
	"encoding/json"
	"syscall/js"
)

// Client listens for reload notifications in the browser
type Client struct {
	ws        js.Value
	url       string
	onMessage func(Message)
	funcs     []js.Func
}

// NewClient creates a client for the hub at url
func NewClient(url string) *Client {
	return &Client{url: url}
}

// OnMessage sets the handler for every decoded message
func (c *Client) OnMessage(handler func(Message)) {
	c.onMessage = handler
}

// Connect opens the socket. Reconnection is left to the reload itself.
func (c *Client) Connect() {
	c.ws = js.Global().Get("WebSocket").New(c.url)

	c.on("onmessage", func(args []js.Value) {
		var msg Message
		if err := json.Unmarshal([]byte(args[0].Get("data").String()), &msg); err != nil {
			console("[Live] Bad message:", err.Error())
			return
		}
		if c.onMessage != nil {
			c.onMessage(msg)
		}
	})
	c.on("onclose", func([]js.Value) {
		console("[Live] Disconnected")
	})
}

func (c *Client) on(prop string, fn func(args []js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(args)
		return nil
	})
	c.funcs = append(c.funcs, f)
	c.ws.Set(prop, f)
}

// Close closes the socket and releases the callbacks
func (c *Client) Close() {
	if !c.ws.IsUndefined() && !c.ws.IsNull() {
		c.ws.Call("close")
	}
	for _, f := range c.funcs {
		f.Release()
	}
	c.funcs = nil
}

// Connect opens a client that reloads the page on a reload message
func Connect(url string) *Client {
	c := NewClient(url)
	c.OnMessage(func(msg Message) {
		switch msg.Type {
		case TypeReload:
			console("[Live] Reloading:", msg.Target)
			js.Global().Get("location").Call("reload")
		case TypeError:
			console("[Live] Rebuild failed:", msg.Message)
		}
	})
	c.Connect()
	return c
}

func console(args ...interface{}) {
	js.Global().Get("console").Call("log", args...)
}
