package logger

import "sync"

var (
	globalMu sync.RWMutex
	global   = NewDefault()
)

// SetGlobal replaces the process-wide default logger. main calls this
// once after loading configuration.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

// Global returns the process-wide default logger.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Component returns the global logger scoped to a component name.
func Component(name string) *Logger {
	return Global().WithComponent(name)
}
