package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of semantic colors every style is derived from.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is used when the configuration names no theme.
const DefaultTheme = "tokyo-night"

// palette builds a Palette from hex strings in field order.
func palette(primary, secondary, fg, muted, bg, surface, success, warning, errc string) Palette {
	c := lipgloss.Color
	return Palette{
		Primary: c(primary), Secondary: c(secondary),
		Foreground: c(fg), Muted: c(muted),
		Background: c(bg), Surface: c(surface),
		Success: c(success), Warning: c(warning), Error: c(errc),
	}
}

var themes = map[string]Palette{
	"tokyo-night": palette("#7aa2f7", "#7dcfff", "#c0caf5", "#565f89", "#1a1b26", "#3b4261", "#9ece6a", "#e0af68", "#f7768e"),
	"gruvbox":     palette("#83a598", "#8ec07c", "#ebdbb2", "#665c54", "#282828", "#3c3836", "#b8bb26", "#fabd2f", "#fb4934"),
	"catppuccin":  palette("#89b4fa", "#94e2d5", "#cdd6f4", "#6c7086", "#1e1e2e", "#313244", "#a6e3a1", "#f9e2af", "#f38ba8"),
	"nord":        palette("#88c0d0", "#81a1c1", "#d8dee9", "#4c566a", "#2e3440", "#3b4252", "#a3be8c", "#ebcb8b", "#bf616a"),
}

// ThemeNames lists the built-in themes alphabetically.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette looks up a built-in theme.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Hex returns c as "#rrggbb", or "" for nil or unconvertible colors.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cc.Hex()
}

func hexPtr(c color.Color) *string {
	if h := Hex(c); h != "" {
		return &h
	}
	return nil
}
