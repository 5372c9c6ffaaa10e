package disco

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_buildTextLine(t *testing.T) {
	outBuffer := bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	tests := []struct {
		name  string
		s     string
		level LogLevel
		want  string
	}{
		{"trace", testlogstr, LVL_TRACE, testlogstr + "\n"},
		{"info", testlogstr, LVL_INFO, testlogstr + "\n"},
		{"warn", testlogstr, LVL_WARN, ANSI_BOLD + testlogstr + ANSI_COL_RESET + "\n"},
		{"error", "", LVL_ERROR, ANSI_BOLD + ANSI_COL_RESET + "\n"},
		{"empty", "", LVL_DEBUG, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outBuffer.WriteString("garbage")
			assert.Equal(t, tt.want, buildTextLine(outBuffer, tt.s, tt.level).String())
		})
	}
}

func TestLogWriter_Write_routing(t *testing.T) {
	out := &FakeWriter{}
	errOut := &FakeWriter{}
	t.Run("use_stderr", func(t *testing.T) {
		out.Clear()
		errOut.Clear()
		w := NewWriter(out, errOut, nil, true)
		for level := LVL_TRACE; level < LVL_OFF; level++ {
			w.Write(level.String(), level)
		}
		assert.Equal(t, "TRACE\nDEBUG\nINFO\n", out.String())
		assert.Equal(t, ANSI_BOLD+"WARN"+ANSI_COL_RESET+"\n"+ANSI_BOLD+"ERROR"+ANSI_COL_RESET+"\n", errOut.String())
	})
	t.Run("stdout_only", func(t *testing.T) {
		out.Clear()
		errOut.Clear()
		w := NewWriter(out, errOut, nil, false)
		for level := LVL_TRACE; level < LVL_OFF; level++ {
			w.Write(level.String(), level)
		}
		assert.Empty(t, errOut.String())
		assert.Equal(t, 5, strings.Count(out.String(), "\n"))
		assert.Contains(t, out.String(), ANSI_BOLD+"ERROR"+ANSI_COL_RESET+"\n")
	})
}

func TestLogWriter_Write_failures(t *testing.T) {
	tests := []struct {
		name   string
		output OutType
		want   string
	}{
		{"error", &ErrorWriter{}, errorStr},
		{"panic_string", &PanicWriter{}, "`" + panicStr + "`"},
		{"panic_error", &ErrorPanicWriter{}, "(error) `" + panicStr + "`"},
		{"panic_other", &ZeroPanicWriter{}, _ERROR_UNKNOWN_PANIC_TEXT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ferr := &FakeWriter{}
			w := NewWriter(tt.output, tt.output, ferr, true)
			assert.NotPanics(t, func() {
				w.Write(testlogstr, LVL_INFO)
				w.Write(testlogstr, LVL_ERROR)
			})
			assert.Equal(t, 2, strings.Count(ferr.String(), tt.want+"\n"), ferr.String())
		})
	}
	t.Run("broken_fallback", func(t *testing.T) {
		w := NewWriter(&ErrorWriter{}, nil, &PanicWriter{}, false)
		assert.NotPanics(t, func() { w.Write(testlogstr, LVL_INFO) })
	})
	t.Run("recovers", func(t *testing.T) {
		out := &FakeWriter{}
		w := NewWriter(&PanicWriter{}, out, nil, true)
		w.Write("lost", LVL_INFO)
		w.Write("kept", LVL_WARN)
		assert.Equal(t, ANSI_BOLD+"kept"+ANSI_COL_RESET+"\n", out.String())
	})
}
