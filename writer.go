package disco

/*
io.Writer interface implementation

The LogClient implements io.Writer so it can be used with fmt.Fprintf,
log.New and other formatting helpers. The semantics are:
  - Lvl(level) sets the current level used by subsequent Write calls.
  - Write(p) logs p as one event at curLevel (a single trailing newline is
    dropped, the line writer adds its own) and always returns len(p).

This allows patterns like:

	fmt.Fprintf(client.Lvl(LVL_WARN), "disk low: %d%%", percent)

curLevel is not guarded, so share a client between goroutines only if
none of them calls Lvl.
*/

// Lvl sets the client's current level (used by Write/fmt.Fprintf) and returns
// the same client for convenient chaining.
func (lc *LogClient) Lvl(level LogLevel) *LogClient {
	lc.curLevel = normLevel(level)
	return lc
}

// Write implements io.Writer. A nil payload is a zero-length write.
func (lc *LogClient) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	s := string(p)
	if l := len(s); l > 0 && s[l-1] == '\n' {
		s = s[:l-1]
	}
	lc.Log(lc.curLevel, s)
	return len(p), nil
}
