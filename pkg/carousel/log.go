package carousel

import "fmt"

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

func logf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog(fmt.Sprintf("[Carousel] "+format, args...))
	}
}
