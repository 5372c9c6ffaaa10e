package disco

import (
	"os"

	"golang.org/x/sys/windows"
)

// ENABLE_VIRTUAL_TERMINAL_PROCESSING is the console mode flag which makes the
// console interpret ANSI escape sequences, see
// https://docs.microsoft.com/en-us/windows/console/setconsolemode
const ENABLE_VIRTUAL_TERMINAL_PROCESSING = 0x0004

func enableColor(f *os.File) bool {
	console := windows.Handle(f.Fd())
	mode := uint32(0)
	if err := windows.GetConsoleMode(console, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(console, mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
