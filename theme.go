package disco

// Theme maps log levels to colors. Implementations are read-only and may be
// shared between goroutines without locking.
type Theme interface {
	// Solid returns the color used by the COL_SOLID format.
	Solid(level LogLevel) Rgb
	// Range returns the gradient bounds used by the gradient formats.
	Range(level LogLevel) RgbRange
}

// ThemeSimple uses a darker and a lighter shade of one color per level. The
// solid color is the darker one.
type ThemeSimple struct{}

var simpleRanges = [LVL_OFF]RgbRange{
	{COLOR_DARK_PINK, COLOR_PINK},     //LVL_TRACE
	{COLOR_DARK_CYAN, COLOR_CYAN},     //LVL_DEBUG
	{COLOR_DARK_GREEN, COLOR_GREEN},   //LVL_INFO
	{COLOR_DARK_ORANGE, COLOR_ORANGE}, //LVL_WARN
	{COLOR_DARK_RED, COLOR_RED},       //LVL_ERROR
}

func (ThemeSimple) Solid(level LogLevel) Rgb {
	return simpleRanges[levelSlot(level)].Start
}

func (ThemeSimple) Range(level LogLevel) RgbRange {
	return simpleRanges[levelSlot(level)]
}

// ThemeSpectral walks the spectrum from magenta (TRACE) to red (ERROR), each
// level fading into the hue of the next one.
type ThemeSpectral struct{}

var spectralRanges = [LVL_OFF]RgbRange{
	{COLOR_MAGENTA, COLOR_BLUE},       //LVL_TRACE
	{COLOR_BLUE, COLOR_CYAN},          //LVL_DEBUG
	{COLOR_CYAN, COLOR_GREEN},         //LVL_INFO
	{COLOR_YELLOW, COLOR_DARK_ORANGE}, //LVL_WARN
	{COLOR_RED, COLOR_DARK_MAGENTA},   //LVL_ERROR
}

var spectralSolids = [LVL_OFF]Rgb{
	COLOR_MAGENTA, //LVL_TRACE
	COLOR_BLUE,    //LVL_DEBUG
	COLOR_GREEN,   //LVL_INFO
	COLOR_YELLOW,  //LVL_WARN
	COLOR_RED,     //LVL_ERROR
}

func (ThemeSpectral) Solid(level LogLevel) Rgb {
	return spectralSolids[levelSlot(level)]
}

func (ThemeSpectral) Range(level LogLevel) RgbRange {
	return spectralRanges[levelSlot(level)]
}

// LevelTheme is a table driven theme, usually built from a config file.
// Levels without a solid color use the start of their range.
type LevelTheme struct {
	Ranges [LVL_OFF]RgbRange
	Solids [LVL_OFF]*Rgb
}

// NewLevelTheme copies another theme into a table that can then be changed
// level by level.
func NewLevelTheme(base Theme) *LevelTheme {
	t := &LevelTheme{}
	for level := LVL_TRACE; level < LVL_OFF; level++ {
		t.Ranges[level] = base.Range(level)
		solid := base.Solid(level)
		t.Solids[level] = &solid
	}
	return t
}

func (t *LevelTheme) Solid(level LogLevel) Rgb {
	if s := t.Solids[levelSlot(level)]; s != nil {
		return *s
	}
	return t.Ranges[levelSlot(level)].Start
}

func (t *LevelTheme) Range(level LogLevel) RgbRange {
	return t.Ranges[levelSlot(level)]
}
