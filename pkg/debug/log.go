//go:build js && wasm
// +build js,wasm

package debug

import (
	"fmt"
	"syscall/js"

	"github.com/recera/carousel/pkg/carousel"
	"github.com/recera/carousel/pkg/scheduler"
)

// EnableLogging routes carousel and frame-queue diagnostics to the console
func EnableLogging() {
	carousel.SetDebugLog(Log)
	scheduler.SetDebugLog(Log)
}

// Log logs a message to the console
func Log(args ...interface{}) {
	js.Global().Get("console").Call("log", args...)
}

// Logf logs a formatted message to the console
func Logf(format string, args ...interface{}) {
	Log(fmt.Sprintf(format, args...))
}
