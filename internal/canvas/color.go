package canvas

// Color is the foreground color of a cell. Values map to ANSI colors when
// the screen is rendered to a terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// shapePalette is cycled through when shapes are drawn without an explicit
// color. Red is kept out so it stays free for highlighting collisions.
var shapePalette = []Color{
	ColorCyan,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorOrange,
	ColorBrightCyan,
	ColorBrightGreen,
}

// PaletteColor returns the i-th shape color, wrapping around the palette.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return shapePalette[i%len(shapePalette)]
}

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"grey":           ColorGray,
}

// ParseColor looks up a color by name, e.g. "cyan" or "bright-red".
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
