package disco

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// TIME_FORMAT is the timestamp layout of the preset record formats (always UTC).
const TIME_FORMAT = time.RFC3339Nano

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonRecord is the structure of REC_JSON lines. Downstream consumers rely on
// exactly these four keys.
type jsonRecord struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

// NewSculptor creates a sculptor for the given record format.
func NewSculptor(format RecordFormat) *LogSculptor {
	return &LogSculptor{format: format, now: time.Now}
}

// Sculpt converts an event into a plain line of text according to the
// sculptor's record format. Custom formatter output is returned untouched.
func (s *LogSculptor) Sculpt(ev *Event) string {
	if s.format.kind == _REC_CUSTOM {
		return s.format.custom(ev)
	}
	now := s.now().UTC().Format(TIME_FORMAT)
	switch s.format.kind {
	case _REC_JSON:
		b, err := json.Marshal(jsonRecord{
			Time:    now,
			Level:   ev.Level.String(),
			Target:  ev.Target,
			Message: ev.Message,
		})
		if err == nil {
			return string(b)
		}
		// strings only, marshalling can't fail; keep the line anyway
		fallthrough
	default:
		var b strings.Builder
		b.Grow(len(now) + len(ev.Target) + len(ev.Message) + 16)
		b.WriteString(now)
		b.WriteString(" [")
		b.WriteString(ev.Target)
		b.WriteString("] ")
		b.WriteString(ev.Level.String())
		b.WriteString(" - ")
		b.WriteString(ev.Message)
		return b.String()
	}
}
