package scheduler

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// PanicHandler receives a recovered panic from a frame callback
type PanicHandler func(id uint64, err interface{})

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

type frameCallback struct {
	id uint64
	fn func()
}

// Frames is an animation-frame callback queue. Callbacks requested while a
// frame is running are deferred to the following frame, matching
// requestAnimationFrame.
type Frames struct {
	mu      sync.Mutex
	queue   []frameCallback
	nextID  uint64
	frame   uint64
	onPanic PanicHandler
}

// NewFrames creates an empty frame queue
func NewFrames() *Frames {
	return &Frames{
		queue:  make([]frameCallback, 0, 16),
		nextID: 1,
	}
}

// SetPanicHandler sets the handler invoked when a callback panics
func (f *Frames) SetPanicHandler(handler PanicHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPanic = handler
}

// Request schedules fn for the next frame and returns its id
func (f *Frames) Request(fn func()) uint64 {
	if fn == nil {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.queue = append(f.queue, frameCallback{id: id, fn: fn})

	if debugLog != nil {
		debugLog("[Frames] Requested callback", id, "for frame", f.frame+1)
	}
	return id
}

// Cancel removes a pending callback. It returns false if the callback
// already ran or was never scheduled.
func (f *Frames) Cancel(id uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, cb := range f.queue {
		if cb.id == id {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Run executes every callback queued before the call and returns how many ran
func (f *Frames) Run() int {
	f.mu.Lock()
	batch := f.queue
	f.queue = make([]frameCallback, 0, cap(batch))
	f.frame++
	frame := f.frame
	f.mu.Unlock()

	if debugLog != nil && len(batch) > 0 {
		debugLog("[Frames] Running frame", frame, "with", len(batch), "callbacks")
	}

	for _, cb := range batch {
		f.invoke(cb)
	}
	return len(batch)
}

// invoke runs a single callback with panic recovery
func (f *Frames) invoke(cb frameCallback) {
	defer func() {
		if r := recover(); r != nil {
			f.mu.Lock()
			handler := f.onPanic
			f.mu.Unlock()

			if handler != nil {
				handler(cb.id, r)
				return
			}
			if debugLog != nil {
				debugLog(fmt.Sprintf("[Frames] callback %d panic: %v\n%s", cb.id, r, debug.Stack()))
			}
		}
	}()
	cb.fn()
}

// Pending returns the number of callbacks waiting for the next frame
func (f *Frames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Frame returns the number of frames run so far
func (f *Frames) Frame() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frame
}
