package disco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemes_distinct(t *testing.T) {
	for name, theme := range map[string]Theme{
		"simple":   ThemeSimple{},
		"spectral": ThemeSpectral{},
		"table":    NewLevelTheme(ThemeSimple{}),
	} {
		t.Run(name, func(t *testing.T) {
			seen := map[Rgb]LogLevel{}
			for level := LVL_TRACE; level < LVL_OFF; level++ {
				c := theme.Solid(level)
				prev, dup := seen[c]
				assert.False(t, dup, "levels %d and %d share a solid color", prev, level)
				seen[c] = level
			}
		})
	}
}

func TestThemes_invalidLevel(t *testing.T) {
	for _, theme := range []Theme{ThemeSimple{}, ThemeSpectral{}, NewLevelTheme(ThemeSpectral{})} {
		assert.NotPanics(t, func() {
			assert.Equal(t, theme.Solid(LVL_ERROR), theme.Solid(LVL_OFF))
			assert.Equal(t, theme.Range(LVL_ERROR), theme.Range(LogLevel(255)))
		})
	}
}

func TestThemeSimple_solidIsStart(t *testing.T) {
	for level := LVL_TRACE; level < LVL_OFF; level++ {
		assert.Equal(t, ThemeSimple{}.Range(level).Start, ThemeSimple{}.Solid(level))
	}
}

func TestNewLevelTheme(t *testing.T) {
	theme := NewLevelTheme(ThemeSpectral{})
	for level := LVL_TRACE; level < LVL_OFF; level++ {
		assert.Equal(t, ThemeSpectral{}.Range(level), theme.Range(level))
		assert.Equal(t, ThemeSpectral{}.Solid(level), theme.Solid(level))
	}
	theme.Solids[LVL_INFO] = nil
	theme.Ranges[LVL_INFO] = RgbRange{COLOR_DARK_RED, COLOR_RED}
	assert.Equal(t, COLOR_DARK_RED, theme.Solid(LVL_INFO))
	assert.Equal(t, ThemeSpectral{}.Solid(LVL_WARN), theme.Solid(LVL_WARN))
}
