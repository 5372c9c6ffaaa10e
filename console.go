package disco

import (
	"os"

	"github.com/mattn/go-isatty"
)

// CanColor reports whether w is a terminal able to show ANSI colors. A nil
// writer means os.Stdout; writers other than *os.File never color.
func CanColor(w OutType) bool {
	if w == nil {
		w = os.Stdout
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) {
		return enableColor(f)
	}
	return isatty.IsCygwinTerminal(fd)
}
