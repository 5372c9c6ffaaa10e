package disco

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetGlobal(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		global.mtx.Lock()
		global.logger = nil
		global.mtx.Unlock()
		slog.SetDefault(prev)
	})
	global.mtx.Lock()
	global.logger = nil
	global.mtx.Unlock()
}

func TestInstall(t *testing.T) {
	resetGlobal(t)
	out := &FakeWriter{}
	errOut := &FakeWriter{}

	assert.NotPanics(t, func() { Info("x", "not installed yet") })
	assert.Nil(t, Installed())
	assert.EqualError(t, Install(nil), _ERROR_MESSAGE_LOGGER_IS_NIL)

	l := newTestLogger(LVL_TRACE, fixedFormat, COL_NONE, out, errOut)
	assert.NoError(t, Install(l))
	assert.Same(t, l, Installed())

	second := newTestLogger(LVL_TRACE, fixedFormat, COL_NONE, &FakeWriter{}, nil)
	assert.ErrorIs(t, Install(second), ErrAlreadyInstalled)
	assert.Same(t, l, Installed())

	Trace("g", "t%d", 1)
	Debug("g", "d")
	Info("g", "i")
	Warn("g", "w")
	Error("g", "e")
	slog.Info("via slog", TARGET_KEY, "s")
	assert.Equal(t, "g:t1\ng:d\ng:i\ns:via slog\n", out.String())
	assert.Equal(t, ANSI_BOLD+"g:w"+ANSI_COL_RESET+"\n"+ANSI_BOLD+"g:e"+ANSI_COL_RESET+"\n", errOut.String())
}
