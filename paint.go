package disco

import (
	"github.com/rivo/uniseg"
)

// NewPainter creates a painter. A nil theme is replaced by ThemeSpectral.
func NewPainter(theme Theme, format ColorFormat) *LogPainter {
	if theme == nil {
		theme = ThemeSpectral{}
	}
	return &LogPainter{
		lines:  map[LogLevel]uint{},
		theme:  theme,
		format: format,
	}
}

// Paint colors a formatted line for the given level. With COL_NONE the line
// is returned unchanged.
func (p *LogPainter) Paint(s string, level LogLevel) string {
	switch p.format.kind {
	case _COL_SOLID:
		return p.paintSolid(s, level)
	case _COL_INLINE_GRADIENT:
		return p.paintInlineGradient(s, level, p.format.steps)
	case _COL_MULTI_LINE_GRADIENT:
		return p.paintMultiLineGradient(s, level, p.format.steps)
	default:
		return s
	}
}

func (p *LogPainter) paintSolid(s string, level LogLevel) string {
	return p.theme.Solid(level).Colorize(s)
}

// paintInlineGradient colors each grapheme cluster separately so multi-byte
// scripts are never split inside a character.
func (p *LogPainter) paintInlineGradient(s string, level LogLevel, steps uint) string {
	if len(s) == 0 {
		return s
	}
	r := p.theme.Range(level)
	buf := make([]byte, 0, len(s)*24)
	g := uniseg.NewGraphemes(s)
	for i := uint(0); g.Next(); i++ {
		buf = appendColored(buf, g.Str(), linearGradient(r, oscillateDist(i, steps)))
	}
	return string(buf)
}

// paintMultiLineGradient colors the whole line with the color at the level's
// current line position, then advances that position. The first line of a
// level always gets the start color.
func (p *LogPainter) paintMultiLineGradient(s string, level LogLevel, steps uint) string {
	p.sync.lineMtx.Lock()
	n := p.lines[level]
	p.lines[level] = n + 1 // wraps on overflow
	p.sync.lineMtx.Unlock()
	return linearGradient(p.theme.Range(level), oscillateDist(n, steps)).Colorize(s)
}

// LinesPainted returns how many lines were painted at the level with the
// multi-line gradient (modulo counter overflow).
func (p *LogPainter) LinesPainted(level LogLevel) uint {
	p.sync.lineMtx.Lock()
	defer p.sync.lineMtx.Unlock()
	return p.lines[level]
}
