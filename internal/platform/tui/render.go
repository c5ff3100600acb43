package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shapekit/internal/canvas"
	"github.com/vovakirdan/shapekit/internal/scene"
)

// colorStyles maps canvas.Color to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:       lipgloss.NewStyle(),
	canvas.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	canvas.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	canvas.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	canvas.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	canvas.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	canvas.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	canvas.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	canvas.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *canvas.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Runes used to draw shapes.
const (
	circleRune       = '.'
	lineRune         = '*'
	intersectionRune = 'x'
)

// DrawOptions controls how DrawScene highlights shapes.
type DrawOptions struct {
	// Selected is drawn in bright white; shapes that collide with it are
	// drawn in red and its circle intersections are marked.
	Selected *scene.Shape

	// Labels writes each shape's name at the top-left of its bounds.
	Labels bool
}

// DrawScene clears s and draws every shape of sc in file order.
func DrawScene(s *canvas.Screen, sc *scene.Scene, opts DrawOptions) {
	s.Clear()

	hits := make(map[*scene.Shape]bool)
	if opts.Selected != nil {
		for _, o := range sc.Colliding(opts.Selected) {
			hits[o] = true
		}
	}

	for i, sh := range sc.Shapes {
		col := shapeColor(sh, i)
		switch {
		case sh == opts.Selected:
			col = canvas.ColorBrightWhite
		case hits[sh]:
			col = canvas.ColorRed
		}
		drawShape(s, sh, col)
	}

	if sel := opts.Selected; sel != nil && sel.Kind == scene.KindCircle {
		for _, o := range sc.OfKind(scene.KindCircle) {
			for _, p := range sel.Circle.Intersect(o.Circle) {
				s.DrawPoint(p, intersectionRune, canvas.ColorBrightYellow)
			}
		}
	}

	if opts.Labels {
		for _, sh := range sc.Shapes {
			b := sh.Bounds()
			s.DrawText(int(b.X), int(b.Y)-1, sh.Name, canvas.ColorGray)
		}
	}
}

func drawShape(s *canvas.Screen, sh *scene.Shape, col canvas.Color) {
	switch sh.Kind {
	case scene.KindCircle:
		s.DrawCircle(sh.Circle, circleRune, col)
	case scene.KindRect:
		s.DrawBox(sh.Rect, col)
	case scene.KindFRect:
		s.DrawFRect(sh.FRect, col)
	case scene.KindLine:
		s.DrawLine(sh.Line, lineRune, col)
	}
}

func shapeColor(sh *scene.Shape, i int) canvas.Color {
	if c, ok := canvas.ParseColor(sh.Color); ok {
		return c
	}
	return canvas.PaletteColor(i)
}
