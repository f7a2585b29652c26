package bramble

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the shared metrics and colors used by windows, dialogs, and
// interaction feedback. Zero values fall back to built-in defaults at the
// point of use, so a partial TOML file only overrides what it names.
type Theme struct {
	// DragThreshold is the pointer travel, in pixels, before a press becomes
	// a drag. Zero means the built-in default.
	DragThreshold float64 `toml:"drag_threshold"`

	// SnapBackSeconds is the duration of the cancelled-drag return animation.
	// Zero restores the position instantly.
	SnapBackSeconds float64 `toml:"snap_back_seconds"`

	TitleBarHeight float64 `toml:"title_bar_height"`
	WindowPadding  float64 `toml:"window_padding"`
	WindowSpacing  float64 `toml:"window_spacing"`

	WindowBackground Color `toml:"window_background"`
	TitleBarColor    Color `toml:"title_bar_color"`
	CloseButtonColor Color `toml:"close_button_color"`
	SelectionFill    Color `toml:"selection_fill"`
	DialogScrim      Color `toml:"dialog_scrim"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		DragThreshold:    defaultDragThreshold,
		SnapBackSeconds:  0.2,
		TitleBarHeight:   24,
		WindowPadding:    8,
		WindowSpacing:    6,
		WindowBackground: Color{0.16, 0.16, 0.18, 1},
		TitleBarColor:    Color{0.10, 0.10, 0.12, 1},
		CloseButtonColor: Color{0.70, 0.20, 0.20, 1},
		SelectionFill:    Color{0.25, 0.45, 0.85, 0.3},
		DialogScrim:      Color{0, 0, 0, 0.5},
	}
}

// LoadTheme parses TOML theme data. Fields absent from the data keep the
// default theme's values.
func LoadTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadThemeFile reads and parses a TOML theme file.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	t, err := LoadTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t Theme) validate() error {
	if t.DragThreshold < 0 {
		return fmt.Errorf("theme: drag_threshold must not be negative (got %g)", t.DragThreshold)
	}
	if t.SnapBackSeconds < 0 {
		return fmt.Errorf("theme: snap_back_seconds must not be negative (got %g)", t.SnapBackSeconds)
	}
	if t.TitleBarHeight < 0 {
		return fmt.Errorf("theme: title_bar_height must not be negative (got %g)", t.TitleBarHeight)
	}
	if t.WindowPadding < 0 {
		return fmt.Errorf("theme: window_padding must not be negative (got %g)", t.WindowPadding)
	}
	if t.WindowSpacing < 0 {
		return fmt.Errorf("theme: window_spacing must not be negative (got %g)", t.WindowSpacing)
	}
	return nil
}

// UnmarshalText parses a hex color of the form #RRGGBB or #RRGGBBAA, so
// themes can write colors the way CSS does. Omitting the alpha byte means
// fully opaque.
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	bytes := make([]uint8, 0, 4)
	for i := 0; i < len(hex); i += 2 {
		hi, ok1 := hexNibble(hex[i])
		lo, ok2 := hexNibble(hex[i+1])
		if !ok1 || !ok2 {
			return fmt.Errorf("color %q: invalid hex digit", s)
		}
		bytes = append(bytes, hi<<4|lo)
	}
	c.R = float64(bytes[0]) / 255
	c.G = float64(bytes[1]) / 255
	c.B = float64(bytes[2]) / 255
	c.A = 1
	if len(bytes) == 4 {
		c.A = float64(bytes[3]) / 255
	}
	return nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
