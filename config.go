package disco

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"
)

/*
Loading a Config from a TOML file. Example:

	level = "debug"
	record_format = "simple"    # simple | json
	color_format = "multiline"  # none | solid | inline | multiline
	steps = 20
	theme = "custom"            # simple | spectral | custom
	use_stderr = true
	auto_color = true

	# overrides on top of the chosen theme ("custom" starts from spectral)
	[colors.info]
	start = "#6edc0a"
	end = "#d1eba5"
	solid = "#6edc0a"           # optional, defaults to start
*/

type rawColors struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
	Solid string `toml:"solid"`
}

type rawConfig struct {
	Level        string               `toml:"level"`
	RecordFormat string               `toml:"record_format"`
	ColorFormat  string               `toml:"color_format"`
	Steps        *uint                `toml:"steps"`
	Theme        string               `toml:"theme"`
	UseStderr    *bool                `toml:"use_stderr"`
	AutoColor    bool                 `toml:"auto_color"`
	Colors       map[string]rawColors `toml:"colors"`
}

// LoadConfig reads a TOML config file on top of DefaultConfig(). A missing
// file is not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML config data on top of DefaultConfig().
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if s := strings.TrimSpace(raw.Level); s != "" {
		level, ok := LevelFromString(s)
		if !ok {
			return Config{}, fmt.Errorf("unknown level %q", s)
		}
		cfg.Level = level
	}

	switch strings.ToLower(strings.TrimSpace(raw.RecordFormat)) {
	case "", "simple":
		cfg.RecordFormat = REC_SIMPLE
	case "json":
		cfg.RecordFormat = REC_JSON
	default:
		return Config{}, fmt.Errorf("unknown record format %q", raw.RecordFormat)
	}

	steps := uint(DEFAULT_STEPS)
	if raw.Steps != nil {
		steps = *raw.Steps
	}
	switch strings.ToLower(strings.TrimSpace(raw.ColorFormat)) {
	case "", "solid":
		cfg.ColorFormat = COL_SOLID
	case "none":
		cfg.ColorFormat = COL_NONE
	case "inline", "inline_gradient":
		cfg.ColorFormat = ColInlineGradient(steps)
	case "multiline", "multi_line_gradient":
		cfg.ColorFormat = ColMultiLineGradient(steps)
	default:
		return Config{}, fmt.Errorf("unknown color format %q", raw.ColorFormat)
	}

	switch strings.ToLower(strings.TrimSpace(raw.Theme)) {
	case "", "spectral", "custom":
		cfg.Theme = ThemeSpectral{}
	case "simple":
		cfg.Theme = ThemeSimple{}
	default:
		return Config{}, fmt.Errorf("unknown theme %q", raw.Theme)
	}
	if len(raw.Colors) > 0 {
		theme, err := parseThemeColors(cfg.Theme, raw.Colors)
		if err != nil {
			return Config{}, err
		}
		cfg.Theme = theme
	}

	if raw.UseStderr != nil {
		cfg.UseStderr = *raw.UseStderr
	}
	cfg.AutoColor = raw.AutoColor
	return cfg, nil
}

// parseThemeColors builds a LevelTheme from [colors.<level>] tables over the
// base theme.
func parseThemeColors(base Theme, colors map[string]rawColors) (*LevelTheme, error) {
	theme := NewLevelTheme(base)
	for name, c := range colors {
		level, ok := LevelFromString(name)
		if !ok || level == LVL_OFF {
			return nil, fmt.Errorf("colors: unknown level %q", name)
		}
		r := theme.Ranges[level]
		var err error
		if r.Start, err = parseHexColor(c.Start, r.Start); err != nil {
			return nil, fmt.Errorf("colors.%s.start: %w", name, err)
		}
		if r.End, err = parseHexColor(c.End, r.End); err != nil {
			return nil, fmt.Errorf("colors.%s.end: %w", name, err)
		}
		theme.Ranges[level] = r
		if strings.TrimSpace(c.Solid) == "" {
			theme.Solids[level] = nil
			continue
		}
		solid, err := parseHexColor(c.Solid, r.Start)
		if err != nil {
			return nil, fmt.Errorf("colors.%s.solid: %w", name, err)
		}
		theme.Solids[level] = &solid
	}
	return theme, nil
}

// parseHexColor parses "#rrggbb" (or "#rgb"); an empty string gives def.
func parseHexColor(s string, def Rgb) (Rgb, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def, err
	}
	r, g, b := c.RGB255()
	return Rgb{r, g, b}, nil
}
