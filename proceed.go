package disco

// never use fmt here, lines are built by hand into msgbuf

import (
	"bytes"
	"io"
	"os"
	"strconv"
)

/*
proceed.go

The last stage of the pipeline: routing finished lines to stdout or stderr.
Responsible for:
  - choosing the output by level (WARN/ERROR may go to stderr)
  - emphasizing WARN/ERROR lines with bold
  - holding one lock over the whole line so stdout and stderr never interleave
  - swallowing write errors and writer panics (logging never fails the caller),
    optionally describing them to the fallback writer
*/

// NewWriter creates a writer. Nil outputs are replaced by os.Stdout/os.Stderr,
// nil fallback by io.Discard.
func NewWriter(stdout, stderr, fallback OutType, useStderr bool) *LogWriter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if fallback == nil {
		fallback = io.Discard
	}
	return &LogWriter{
		stdout:    stdout,
		stderr:    stderr,
		fallbck:   fallback,
		msgbuf:    bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF)),
		useStderr: useStderr,
	}
}

// emphasized reports whether lines of the level are written in bold.
func emphasized(level LogLevel) bool {
	return level == LVL_WARN || level == LVL_ERROR
}

// output returns the writer a line of the level goes to.
func (w *LogWriter) output(level LogLevel) OutType {
	if emphasized(level) && w.useStderr {
		return w.stderr
	}
	return w.stdout
}

// Write writes one line (a newline is appended) for the given level.
// Failures are never returned: they are described to the fallback writer and
// the line is dropped.
func (w *LogWriter) Write(s string, level LogLevel) {
	w.sync.writeMtx.Lock()
	defer w.sync.writeMtx.Unlock()
	output := w.output(level)
	buildTextLine(w.msgbuf, s, level)
	if panicked, err := writeLine(output, w.msgbuf); err != nil {
		if panicked {
			w.handleLogWriteError("panic writing log to output" + err.Error())
		} else {
			w.handleLogWriteError(err.Error())
		}
	}
}

// writeLine writes buf to output and converts a panic into an error.
func writeLine(output OutType, buf *bytes.Buffer) (panicked bool, err error) {
	// only returns of named result values can be changed by defer:
	// https://bytegoblin.io/blog/golang-magic-modify-return-value-using-deferred-function
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			err = &writeError{desc: panicDesc(r)}
		}
	}()
	n, e := buf.WriteTo(output)
	if e != nil {
		err = &writeError{desc: "error writing log to output (" + strconv.FormatInt(n, 10) + " bytes written): " + e.Error()}
	}
	return
}

type writeError struct{ desc string }

func (e *writeError) Error() string { return e.desc }

// handleLogWriteError writes an error description to the fallback writer.
// A broken fallback is ignored as well.
func (w *LogWriter) handleLogWriteError(errormsg string) {
	defer func() { _ = recover() }()
	w.fallbck.Write([]byte(errormsg + "\n"))
}

// buildTextLine puts the final line into outBuffer: bold prefix for
// WARN/ERROR, the text, reset and a terminating newline.
func buildTextLine(outBuffer *bytes.Buffer, s string, level LogLevel) *bytes.Buffer {
	outBuffer.Reset()
	if emphasized(level) {
		outBuffer.WriteString(ANSI_BOLD)
		outBuffer.WriteString(s)
		outBuffer.WriteString(ANSI_COL_RESET)
	} else {
		outBuffer.WriteString(s)
	}
	outBuffer.WriteByte('\n')
	return outBuffer
}
