package logging

import "sync/atomic"

var global atomic.Pointer[Logger]

// Global returns the process-wide logger. Before InitGlobal or SetGlobal
// it returns a no-op logger.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	global.CompareAndSwap(nil, NewNoop())
	return global.Load()
}

// SetGlobal replaces the process-wide logger. A nil logger resets it.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// InitGlobal builds a logger from config and installs it with SetGlobal.
// A nil config uses DefaultConfig.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	SetGlobal(l)
	return nil
}

// CloseGlobal closes and clears the process-wide logger.
func CloseGlobal() error {
	if l := global.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}
