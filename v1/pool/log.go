package pool

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebugLogging toggles verbose logging for the whole package.
func SetDebugLogging(on bool) {
	debugEnabled.Store(on)
}

func debugf(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}

	log.Printf("[ DEBUG ] "+format, args...)
}
