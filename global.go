package disco

import (
	"errors"
	"log/slog"
	"sync"
)

// The process-wide logger set by Install.
var global struct {
	mtx    sync.RWMutex
	logger *Logger
}

// Install makes l the process-wide logger: the package-level helpers below
// and slog's default logger write through it. Only the first call succeeds;
// later calls return ErrAlreadyInstalled and leave the installed logger alone.
func Install(l *Logger) error {
	if l == nil {
		return errors.New(_ERROR_MESSAGE_LOGGER_IS_NIL)
	}
	global.mtx.Lock()
	defer global.mtx.Unlock()
	if global.logger != nil {
		return ErrAlreadyInstalled
	}
	global.logger = l
	slog.SetDefault(slog.New(l.Handler()))
	return nil
}

// Installed returns the process-wide logger or nil.
func Installed() *Logger {
	global.mtx.RLock()
	defer global.mtx.RUnlock()
	return global.logger
}

func logGlobal(level LogLevel, target, format string, args ...any) {
	if l := Installed(); l != nil {
		l.Logf(level, target, format, args...)
	}
}

// Trace logs a formatted message at TRACE level with the installed logger.
func Trace(target, format string, args ...any) {
	logGlobal(LVL_TRACE, target, format, args...)
}

// Debug logs a formatted message at DEBUG level with the installed logger.
func Debug(target, format string, args ...any) {
	logGlobal(LVL_DEBUG, target, format, args...)
}

// Info logs a formatted message at INFO level with the installed logger.
func Info(target, format string, args ...any) {
	logGlobal(LVL_INFO, target, format, args...)
}

// Warn logs a formatted message at WARN level with the installed logger.
func Warn(target, format string, args ...any) {
	logGlobal(LVL_WARN, target, format, args...)
}

// Error logs a formatted message at ERROR level with the installed logger.
func Error(target, format string, args ...any) {
	logGlobal(LVL_ERROR, target, format, args...)
}
