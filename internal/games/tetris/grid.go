package tetris

import (
	"github.com/mzoryn/blockfall/internal/core"
)

// Grid owns the settled-cell matrix: a filled flag plus color per cell.
// A cell's color is meaningful only while its filled flag is set.
// All coordinate reads and writes are bounds-safe.
type Grid struct {
	width  int
	height int
	filled [][]bool
	colors [][]core.Color
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
	}
	g.filled = make([][]bool, height)
	g.colors = make([][]core.Color, height)
	for y := 0; y < height; y++ {
		g.filled[y] = make([]bool, width)
		g.colors[y] = make([]core.Color, width)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// IsFilled reports whether the cell at (x, y) holds a settled block.
// Out-of-range coordinates read as unfilled.
func (g *Grid) IsFilled(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.filled[y][x]
}

// ColorAt returns the color of the settled block at (x, y).
// Out-of-range or unfilled cells read as ColorDefault.
func (g *Grid) ColorAt(x, y int) core.Color {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return core.ColorDefault
	}
	return g.colors[y][x]
}

// SetCell marks the cell at (x, y) as filled with the given color.
// Out-of-range writes are silently ignored.
func (g *Grid) SetCell(x, y int, c core.Color) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.filled[y][x] = true
	g.colors[y][x] = c
}

// CheckCollision reports whether the piece, at its current shape and
// position, violates the grid: any occupied cell outside the horizontal
// bounds, at or below the floor, or overlapping a settled block. Cells with
// a negative row are above the visible grid and are exempt from the
// settled-block check, so pieces may rotate while partially off the top.
func (g *Grid) CheckCollision(p *Piece) bool {
	shape := p.Shape()
	px, py := p.X(), p.Y()

	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] != 1 {
				continue
			}

			gridX := px + x
			gridY := py + y

			// Wall and floor bounds
			if gridX < 0 || gridX >= g.width || gridY >= g.height {
				return true
			}

			// Overlap with settled blocks
			if gridY >= 0 && g.filled[gridY][gridX] {
				return true
			}
		}
	}

	return false
}

// LockPiece permanently writes the piece's occupied cells into the grid.
func (g *Grid) LockPiece(p *Piece) {
	shape := p.Shape()
	px, py := p.X(), p.Y()
	color := p.Color()

	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] == 1 {
				g.SetCell(px+x, py+y, color)
			}
		}
	}
}

// ClearLines removes every fully filled row and returns how many were
// removed. Rows are scanned bottom-up; after removing a row the same index
// is examined again, since the row shifted into its place may itself be
// full. The order matters when multiple non-adjacent rows are full.
func (g *Grid) ClearLines() int {
	cleared := 0

	for y := g.height - 1; y >= 0; y-- {
		if g.isLineFull(y) {
			g.removeLine(y)
			cleared++
			y++ // Recheck the same row after the shift
		}
	}

	return cleared
}

// isLineFull reports whether every cell in row y is filled.
func (g *Grid) isLineFull(y int) bool {
	for x := 0; x < g.width; x++ {
		if !g.filled[y][x] {
			return false
		}
	}
	return true
}

// removeLine deletes row lineY, shifting all rows above it down by one and
// clearing the vacated top row.
func (g *Grid) removeLine(lineY int) {
	for y := lineY; y > 0; y-- {
		for x := 0; x < g.width; x++ {
			g.filled[y][x] = g.filled[y-1][x]
			g.colors[y][x] = g.colors[y-1][x]
		}
	}

	for x := 0; x < g.width; x++ {
		g.filled[0][x] = false
		g.colors[0][x] = core.ColorDefault
	}
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.filled[y][x] = false
			g.colors[y][x] = core.ColorDefault
		}
	}
}
