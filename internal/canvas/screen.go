// Package canvas is a character raster that kernel shapes are drawn onto.
// Coordinates are cell coordinates: x grows to the right and y grows down,
// matching the kernel's screen-space convention.
package canvas

import (
	"strings"

	"github.com/vovakirdan/shapekit/internal/geom"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a 2D buffer of colored cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rect at the origin.
func (s *Screen) Bounds() geom.IRect {
	return geom.NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, keeping the overlapping content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	keep := s.Bounds().Clip(geom.NewRect(0, 0, width, height))

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < keep.H; y++ {
		copy(s.cells[y][:keep.W], old[y][:keep.W])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	s.Fill(blank)
}

// Fill sets every cell to c.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a rune with the default color. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.Bounds().CollidePoint(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().CollidePoint(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text horizontally starting at (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string, col Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: col})
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, col Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, col)
}

// String returns the runes of the screen, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
