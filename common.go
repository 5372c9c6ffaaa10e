package disco

/*
Package-wide constants, enums and helper utilities:
  - default values
  - ANSI/color related constants
  - enums for levels, record and color formats
  - normalization helpers
*/

import (
	"errors"
	"strings"
)

const (
	// Log level values. LVL_OFF is only meaningful as a threshold.
	LVL_TRACE LogLevel = iota
	LVL_DEBUG
	LVL_INFO
	LVL_WARN
	LVL_ERROR
	LVL_OFF
	_LVL_MAX_for_checks_only
)

const (
	// Default values for short init forms
	DEFAULT_LOG_LEVEL = LVL_INFO
	DEFAULT_STEPS     = 20  // gradient steps used by config files without "steps"
	DEFAULT_OUT_BUFF  = 256 // initial buffer size for output lines
)

const (
	// ANSI colored text fragments. A true-color span is
	// ANSI_COL_PRFX + "38;2;R;G;B" + ANSI_COL_SUFX + text + ANSI_FG_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
	ANSI_FG_RESET  = ANSI_COL_PRFX + "39" + ANSI_COL_SUFX // default foreground, keeps bold
	ANSI_BOLD      = ANSI_COL_PRFX + "1" + ANSI_COL_SUFX
	ANSI_FG_TRUE   = "38;2;"
)

const (
	_REC_SIMPLE recordKind = iota
	_REC_JSON
	_REC_CUSTOM
)

const (
	_COL_NONE colorKind = iota
	_COL_SOLID
	_COL_INLINE_GRADIENT
	_COL_MULTI_LINE_GRADIENT
)

const (
	// Error messages (used for testing).
	_ERROR_MESSAGE_ALREADY_INSTALLED = "a logger is already installed"
	_ERROR_MESSAGE_LOGGER_IS_NIL     = "logger is nil"
	_ERROR_UNKNOWN_PANIC_TEXT        = "[no panic description]"
)

// ErrAlreadyInstalled is returned by Install when a global logger is already set.
var ErrAlreadyInstalled = errors.New(_ERROR_MESSAGE_ALREADY_INSTALLED)

var (
	REC_SIMPLE = RecordFormat{kind: _REC_SIMPLE} // "<time> [<target>] <LEVEL> - <message>"
	REC_JSON   = RecordFormat{kind: _REC_JSON}   // {"time":..,"level":..,"target":..,"message":..}

	COL_NONE  = ColorFormat{kind: _COL_NONE}  // no coloring
	COL_SOLID = ColorFormat{kind: _COL_SOLID} // whole line in the theme's solid color
)

// RecCustom wraps a caller supplied formatter. A nil formatter falls back to
// the simple format.
func RecCustom(f CustomFormatter) RecordFormat {
	if f == nil {
		return REC_SIMPLE
	}
	return RecordFormat{kind: _REC_CUSTOM, custom: f}
}

// ColInlineGradient colors every grapheme of a line along the level gradient,
// reversing direction every `steps` graphemes.
func ColInlineGradient(steps uint) ColorFormat {
	return ColorFormat{kind: _COL_INLINE_GRADIENT, steps: steps}
}

// ColMultiLineGradient colors each line in one color and moves along the level
// gradient from one line to the next, separately for every level.
func ColMultiLineGradient(steps uint) ColorFormat {
	return ColorFormat{kind: _COL_MULTI_LINE_GRADIENT, steps: steps}
}

// LevelMap is a fixed-size array with one entry per log level.
type LevelMap [_LVL_MAX_for_checks_only]string

// Predefined log level full names map
var LevelFullNames = &LevelMap{
	"TRACE", //LVL_TRACE
	"DEBUG", //LVL_DEBUG
	"INFO",  //LVL_INFO
	"WARN",  //LVL_WARN
	"ERROR", //LVL_ERROR
	"OFF",   //LVL_OFF
}

var levelFromString = map[string]LogLevel{
	"trace":   LVL_TRACE,
	"debug":   LVL_DEBUG,
	"info":    LVL_INFO,
	"warn":    LVL_WARN,
	"warning": LVL_WARN,
	"error":   LVL_ERROR,
	"off":     LVL_OFF,
	"none":    LVL_OFF,
}

// String returns the upper case level name ("INFO"), "OFF" for invalid values.
func (level LogLevel) String() string {
	return LevelFullNames[normLevel(level)]
}

// LevelFromString parses a level name (case insensitive). The second result
// is false for unknown names.
func LevelFromString(s string) (LogLevel, bool) {
	l, ok := levelFromString[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, LVL_OFF)
}

// Index of a level in per-level tables (invalid and LVL_OFF map to LVL_ERROR).
func levelSlot(level LogLevel) int {
	return int(norm_byte(level, LVL_OFF, LVL_ERROR))
}

// Converts a panic value into a compact readable string
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
