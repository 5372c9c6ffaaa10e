package disco

import (
	"strconv"
)

// Predefined colors. Using them is not necessary when creating a theme, they
// are aliases for raw Rgb triplets.
var (
	COLOR_DARK_MAGENTA = Rgb{139, 0, 139}
	COLOR_MAGENTA      = Rgb{255, 0, 255}
	COLOR_DARK_PINK    = Rgb{149, 119, 149}
	COLOR_PINK         = Rgb{227, 184, 227}
	COLOR_DARK_CYAN    = Rgb{10, 144, 144}
	COLOR_CYAN         = Rgb{20, 210, 210}
	COLOR_DARK_BLUE    = Rgb{70, 75, 185}
	COLOR_BLUE         = Rgb{90, 100, 240}
	COLOR_DARK_GREEN   = Rgb{70, 140, 10}
	COLOR_GREEN        = Rgb{110, 220, 10}
	COLOR_DARK_YELLOW  = Rgb{170, 128, 0}
	COLOR_YELLOW       = Rgb{255, 185, 0}
	COLOR_DARK_ORANGE  = Rgb{255, 128, 0}
	COLOR_ORANGE       = Rgb{250, 180, 110}
	COLOR_DARK_RED     = Rgb{200, 0, 10}
	COLOR_RED          = Rgb{255, 60, 10}
)

// linearGradient returns the color at dist (clamped to [0, 1]) between
// r.Start and r.End. Channels are truncated, not rounded.
func linearGradient(r RgbRange, dist float64) Rgb {
	if dist < 0 || dist != dist { // NaN behaves as 0
		dist = 0
	} else if dist > 1 {
		dist = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + dist*(float64(b)-float64(a)))
	}
	return Rgb{
		R: lerp(r.Start.R, r.End.R),
		G: lerp(r.Start.G, r.End.G),
		B: lerp(r.Start.B, r.End.B),
	}
}

// oscillateDist maps an ever growing counter x onto a triangle wave in [0, 1]
// with half-period n: 0 at x=0, 1 at x=n, 0 again at x=2n and so on.
// Arithmetic wraps like any unsigned Go integer; n=0 is treated as 1.
func oscillateDist(x, n uint) float64 {
	if n == 0 {
		n = 1
	}
	v := x + n
	if m := n * 2; m != 0 { // 2n wraps to 0 only for n = 1<<(bits-1)
		v %= m
	}
	var diff uint
	if v > n {
		diff = v - n
	} else {
		diff = n - v
	}
	return float64(diff) / float64(n)
}

// appendFgColor appends the true-color foreground escape for c.
func appendFgColor(buf []byte, c Rgb) []byte {
	buf = append(buf, ANSI_COL_PRFX...)
	buf = append(buf, ANSI_FG_TRUE...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	return append(buf, ANSI_COL_SUFX...)
}

// appendColored appends s wrapped into the c foreground color.
func appendColored(buf []byte, s string, c Rgb) []byte {
	buf = appendFgColor(buf, c)
	buf = append(buf, s...)
	return append(buf, ANSI_FG_RESET...)
}

// Colorize returns s wrapped into a true-color escape sequence. An empty
// string stays empty.
func (c Rgb) Colorize(s string) string {
	if len(s) == 0 {
		return s
	}
	return string(appendColored(make([]byte, 0, len(s)+24), s, c))
}
