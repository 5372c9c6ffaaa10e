package disco

/*
Defines the core data types used by the renderer:
  - basetype and a small set of typed aliases for clarity
  - Event: a single log record handed over by the caller (or slog)
  - Rgb/RgbRange: colors and gradient bounds used by themes
  - LogSculptor, LogPainter, LogWriter: the three pipeline stages
  - Logger: the object that owns the pipeline and the level threshold
*/

import (
	"bytes"
	"io"
	"sync"
	"time"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type LogLevel basetype // Logger levels (alias for byte)
type recordKind basetype
type colorKind basetype

type OutType io.Writer // Logger outputs (alias for io.Writer)

// Event is one log record. The timestamp is not part of the event: it is
// captured by the sculptor at format time.
type Event struct {
	Level   LogLevel
	Target  string // may be empty
	Message string // may be empty, may contain any unicode
}

// Rgb is a 24-bit color triplet.
type Rgb struct {
	R uint8
	G uint8
	B uint8
}

// RgbRange defines a linear gradient from Start to End.
type RgbRange struct {
	Start Rgb
	End   Rgb
}

// CustomFormatter converts an event into a line of text. It may be called
// from many goroutines at once and must not keep unsynchronized state.
type CustomFormatter func(ev *Event) string

// RecordFormat selects how events are structured into text. The zero value
// is the simple "<time> [<target>] <LEVEL> - <message>" format.
type RecordFormat struct {
	kind   recordKind
	custom CustomFormatter
}

// ColorFormat selects how formatted lines are colored. The zero value disables
// coloring.
type ColorFormat struct {
	kind  colorKind
	steps uint
}

// LogSculptor converts events into plain text lines.
type LogSculptor struct {
	format RecordFormat
	now    func() time.Time // clock used for timestamps (time.Now outside of tests)
}

// LogPainter colors formatted lines according to a theme and a color format.
type LogPainter struct {
	sync struct {
		lineMtx sync.Mutex // guards lines (read-increment per painted message)
	}
	lines  map[LogLevel]uint // per-level line counters for the multi-line gradient
	theme  Theme
	format ColorFormat
}

// LogWriter routes finished lines to stdout/stderr by level.
type LogWriter struct {
	sync struct {
		writeMtx sync.Mutex // prevents stdout/stderr interleaving
	}
	stdout    OutType
	stderr    OutType
	fallbck   OutType       // receives descriptions of failed writes (io.Discard by default)
	msgbuf    *bytes.Buffer // buffer reused while building a line (guarded by writeMtx)
	useStderr bool
}

// Logger composes the sculptor, painter and writer and applies the level
// threshold. It is immutable after New and safe for concurrent use.
type Logger struct {
	sculptor *LogSculptor
	painter  *LogPainter
	writer   *LogWriter
	level    LogLevel // minimal level to log, LVL_OFF disables everything
}

// LogClient is a lightweight handle that logs with a fixed target.
//
// Clients are created by Logger.NewClient().
type LogClient struct {
	logger   *Logger  // owning logger
	target   string   // target written with every event
	curLevel LogLevel // current level used by Write / fmt.Fprintf helpers
}

// Config is the construction-time configuration of a Logger.
type Config struct {
	Level        LogLevel     // events below this level are dropped (LVL_OFF drops all)
	RecordFormat RecordFormat // structural format of lines
	ColorFormat  ColorFormat  // coloring strategy, COL_NONE for plain text
	Theme        Theme        // palette, ThemeSpectral{} if nil
	UseStderr    bool         // write WARN and ERROR to Stderr instead of Stdout
	AutoColor    bool         // disable coloring when Stdout is not a terminal
	Stdout       OutType      // os.Stdout if nil
	Stderr       OutType      // os.Stderr if nil
	Fallback     OutType      // where write failures are reported, dropped if nil
}
