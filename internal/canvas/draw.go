package canvas

import (
	"math"

	"github.com/vovakirdan/shapekit/internal/geom"
)

// FillRect fills r, clipped to the screen. Unnormalized rects are drawn as
// their normalized equivalent.
func (s *Screen) FillRect(r geom.IRect, ch rune, col Color) {
	area := r.Normalize().Clip(s.Bounds())
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			s.cells[y][x] = Cell{Rune: ch, Color: col}
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r geom.IRect, col Color) {
	r = r.Normalize()
	if r.Empty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.SetCell(x, r.Y, Cell{Rune: '─', Color: col})
		s.SetCell(x, bottom, Cell{Rune: '─', Color: col})
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetCell(r.X, y, Cell{Rune: '│', Color: col})
		s.SetCell(right, y, Cell{Rune: '│', Color: col})
	}

	s.SetCell(r.X, r.Y, Cell{Rune: '┌', Color: col})
	s.SetCell(right, r.Y, Cell{Rune: '┐', Color: col})
	s.SetCell(r.X, bottom, Cell{Rune: '└', Color: col})
	s.SetCell(right, bottom, Cell{Rune: '┘', Color: col})
}

// DrawFRect outlines a floating rect on the cell grid. Edges snap to the
// nearest cell.
func (s *Screen) DrawFRect(r geom.FRect, col Color) {
	n := r.Normalize()
	x0, y0 := round(n.Left()), round(n.Top())
	x1, y1 := round(n.Right()), round(n.Bottom())
	s.DrawBox(geom.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1)), col)
}

// DrawCircle fills every cell whose center lies inside c. The cell holding
// the circle's center is always drawn so tiny circles stay visible.
func (s *Screen) DrawCircle(c geom.Circle, ch rune, col Color) {
	box := c.AsRect().Inflate(2, 2).Clip(s.Bounds())
	for y := box.Top(); y < box.Bottom(); y++ {
		for x := box.Left(); x < box.Right(); x++ {
			if c.CollidePoint(float64(x)+0.5, float64(y)+0.5) {
				s.cells[y][x] = Cell{Rune: ch, Color: col}
			}
		}
	}
	s.SetCell(int(math.Floor(c.X())), int(math.Floor(c.Y())), Cell{Rune: ch, Color: col})
}

// DrawLine draws l clipped to the screen, stepping one cell at a time along
// the major axis.
func (s *Screen) DrawLine(l geom.Line, ch rune, col Color) {
	seg, ok := s.Bounds().ClipLine(round(l.AX), round(l.AY), round(l.BX), round(l.BY))
	if !ok {
		return
	}

	dx := float64(seg.B.X - seg.A.X)
	dy := float64(seg.B.Y - seg.A.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		s.SetCell(seg.A.X, seg.A.Y, Cell{Rune: ch, Color: col})
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := round(float64(seg.A.X) + dx*t)
		y := round(float64(seg.A.Y) + dy*t)
		s.SetCell(x, y, Cell{Rune: ch, Color: col})
	}
}

// DrawPoint marks a single cell at p.
func (s *Screen) DrawPoint(p geom.Vec2, ch rune, col Color) {
	s.SetCell(int(math.Floor(p.X)), int(math.Floor(p.Y)), Cell{Rune: ch, Color: col})
}

func round(v float64) int {
	return int(math.Round(v))
}
