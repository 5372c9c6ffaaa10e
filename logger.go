// A console log renderer for Go. Turns log events into timestamped lines,
// colors them along per-level gradients and writes them to stdout/stderr.
package disco

import (
	"fmt"
)

// DefaultConfig returns the configuration used by NewDefault: INFO level,
// simple records, solid colors of the spectral theme and WARN/ERROR on stderr.
func DefaultConfig() Config {
	return Config{
		Level:        DEFAULT_LOG_LEVEL,
		RecordFormat: REC_SIMPLE,
		ColorFormat:  COL_SOLID,
		Theme:        ThemeSpectral{},
		UseStderr:    true,
	}
}

// Creates a logger with DefaultConfig().
//
// Preferred usage example:
//
//	func main() {
//	    if err := disco.Install(disco.NewDefault()); err != nil {
//	        panic(err)
//	    }
//	    disco.Info("main", "started with %d workers", n)
//	    ...
//	}
func NewDefault() *Logger {
	return New(DefaultConfig())
}

// New constructs a logger owning the pipeline described by cfg. The per-level
// line counters of the multi-line gradient start from zero.
//
// With cfg.AutoColor set, coloring is switched off when cfg.Stdout (os.Stdout
// if nil) is not a terminal.
func New(cfg Config) *Logger {
	format := cfg.ColorFormat
	if cfg.AutoColor && !CanColor(cfg.Stdout) {
		format = COL_NONE
	}
	return &Logger{
		sculptor: NewSculptor(cfg.RecordFormat),
		painter:  NewPainter(cfg.Theme, format),
		writer:   NewWriter(cfg.Stdout, cfg.Stderr, cfg.Fallback, cfg.UseStderr),
		level:    normLevel(cfg.Level),
	}
}

// Level returns the minimal level accepted by the logger.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether events of the level would be written. LVL_OFF as
// threshold disables all levels; LVL_OFF or invalid values as event level
// are never enabled.
func (l *Logger) Enabled(level LogLevel) bool {
	return l.level != LVL_OFF && level >= l.level && level < LVL_OFF
}

// Log renders and writes one event. Disabled events are dropped before any
// formatting work is done.
func (l *Logger) Log(ev *Event) {
	if ev == nil || !l.Enabled(ev.Level) {
		return
	}
	line := l.sculptor.Sculpt(ev)
	line = l.painter.Paint(line, ev.Level)
	l.writer.Write(line, ev.Level)
}

// Logf formats the message with fmt.Sprintf only if the level is enabled.
func (l *Logger) Logf(level LogLevel, target, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Log(&Event{Level: level, Target: target, Message: fmt.Sprintf(format, args...)})
}

/////////////////////////////////////////////////////////////////////////////////////////
/*
Convenience level-specific helpers. Like Logf they do not return errors: a
logger never reports write failures to the caller.
*/

// Logs a formatted message at TRACE level. Use this for very verbose
// diagnostic information.
func (l *Logger) Trace(target, format string, args ...any) {
	l.Logf(LVL_TRACE, target, format, args...)
}

// Logs a formatted message at DEBUG level.
func (l *Logger) Debug(target, format string, args ...any) {
	l.Logf(LVL_DEBUG, target, format, args...)
}

// Logs a formatted message at INFO level.
func (l *Logger) Info(target, format string, args ...any) {
	l.Logf(LVL_INFO, target, format, args...)
}

// Logs a formatted message at WARN level. The line is written in bold and
// goes to stderr if the logger was configured with UseStderr.
func (l *Logger) Warn(target, format string, args ...any) {
	l.Logf(LVL_WARN, target, format, args...)
}

// Logs a formatted message at ERROR level, see Warn.
func (l *Logger) Error(target, format string, args ...any) {
	l.Logf(LVL_ERROR, target, format, args...)
}
