package disco

/*
Logger client is an abstraction for a program part, goroutine, module etc.
that logs under its own target name. For a simple single-part program it can
be the only one client.

Clients are lightweight: they only keep the owning logger and the target, so
they can be created freely and used from any goroutine (except the io.Writer
helpers, see writer.go).
*/

// NewClient constructs a client logging with the given target.
func (l *Logger) NewClient(target string) *LogClient {
	return &LogClient{
		logger:   l,
		target:   target,
		curLevel: LVL_INFO, // Used only for io.Writer usage
	}
}

// IsOwnClient validates that the client belongs to this logger.
func (l *Logger) IsOwnClient(lc *LogClient) bool {
	return lc != nil && lc.logger == l
}

// Target returns the target written with the client's events.
func (lc *LogClient) Target() string {
	return lc.target
}

// Log writes s as an event at the provided level. Clients without a logger
// drop everything.
func (lc *LogClient) Log(level LogLevel, s string) {
	if lc == nil || lc.logger == nil {
		return
	}
	lc.logger.Log(&Event{Level: level, Target: lc.target, Message: s})
}

// Logs a textual message at TRACE level.
func (lc *LogClient) LogTrace(s string) {
	lc.Log(LVL_TRACE, s)
}

// Logs a textual message at DEBUG level. Intended for developer-focused
// debugging output.
func (lc *LogClient) LogDebug(s string) {
	lc.Log(LVL_DEBUG, s)
}

// Logs an informational message at INFO level.
func (lc *LogClient) LogInfo(s string) {
	lc.Log(LVL_INFO, s)
}

// LogWarn logs a warning message at WARN level.
func (lc *LogClient) LogWarn(s string) {
	lc.Log(LVL_WARN, s)
}

// LogError logs a textual message at ERROR level. Use
//
//	LogErr(e error)
//
// to log an error value instead of a string.
func (lc *LogClient) LogError(s string) {
	lc.Log(LVL_ERROR, s)
}

// LogErr logs an error value at ERROR level. A nil error is ignored.
func (lc *LogClient) LogErr(e error) {
	if e == nil {
		return
	}
	lc.Log(LVL_ERROR, e.Error())
}
