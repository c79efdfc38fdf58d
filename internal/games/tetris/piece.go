package tetris

import (
	"math/rand"

	"github.com/mzoryn/blockfall/internal/core"
)

// PieceType identifies one of the 7 standard tetromino shapes.
type PieceType int

const (
	TypeI PieceType = iota
	TypeO
	TypeT
	TypeS
	TypeZ
	TypeJ
	TypeL

	pieceTypeCount = 7
)

// String returns the conventional single-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeO:
		return "O"
	case TypeT:
		return "T"
	case TypeS:
		return "S"
	case TypeZ:
		return "Z"
	case TypeJ:
		return "J"
	case TypeL:
		return "L"
	default:
		return "?"
	}
}

// shapeTemplates holds the spawn orientation of each piece type as a binary
// matrix. Rows may have differing dimensions across types; every matrix has
// at least one set cell.
var shapeTemplates = [pieceTypeCount][][]int{
	TypeI: {{1, 1, 1, 1}},
	TypeO: {{1, 1}, {1, 1}},
	TypeT: {{0, 1, 0}, {1, 1, 1}},
	TypeS: {{0, 1, 1}, {1, 1, 0}},
	TypeZ: {{1, 1, 0}, {0, 1, 1}},
	TypeJ: {{1, 0, 0}, {1, 1, 1}},
	TypeL: {{0, 0, 1}, {1, 1, 1}},
}

// pieceColors maps each piece type to its fixed display color.
var pieceColors = [pieceTypeCount]core.Color{
	TypeI: core.ColorCyan,
	TypeO: core.ColorYellow,
	TypeT: core.ColorMagenta,
	TypeS: core.ColorGreen,
	TypeZ: core.ColorRed,
	TypeJ: core.ColorBlue,
	TypeL: core.ColorOrange,
}

// Spawn anchor in grid coordinates for the reference 10-wide board.
const (
	spawnX = 3
	spawnY = 0
)

// Piece is a falling tetromino: an immutable type/color plus a mutable
// shape matrix and position. All mutations are unconditional; validity is
// delegated to Grid.CheckCollision by the caller.
type Piece struct {
	typ   PieceType
	shape [][]int
	x, y  int
	color core.Color
}

// NewPiece creates a piece of a type drawn uniformly from the 7 standard
// types using the supplied RNG.
func NewPiece(rng *rand.Rand) *Piece {
	return NewPieceOfType(PieceType(rng.Intn(pieceTypeCount)))
}

// NewPieceOfType creates a piece of the given type at the spawn anchor.
// The shape is a fresh copy, so rotating never mutates the shared template.
func NewPieceOfType(t PieceType) *Piece {
	return &Piece{
		typ:   t,
		shape: copyShape(shapeTemplates[t]),
		x:     spawnX,
		y:     spawnY,
		color: pieceColors[t],
	}
}

// copyShape deep-copies a shape matrix.
func copyShape(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = make([]int, len(row))
		copy(dst[i], row)
	}
	return dst
}

// Rotate turns the piece 90 degrees clockwise, replacing the R×C shape with
// a C×R matrix where new[x][R-1-y] = old[y][x].
func (p *Piece) Rotate() {
	rows := len(p.shape)
	cols := len(p.shape[0])

	rotated := make([][]int, cols)
	for i := range rotated {
		rotated[i] = make([]int, rows)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rotated[x][rows-1-y] = p.shape[y][x]
		}
	}

	p.shape = rotated
}

// UndoRotate reverts one clockwise rotation by rotating three more times.
// Four clockwise rotations are the identity.
func (p *Piece) UndoRotate() {
	for i := 0; i < 3; i++ {
		p.Rotate()
	}
}

// MoveDown shifts the piece down by one cell.
func (p *Piece) MoveDown() { p.y++ }

// MoveLeft shifts the piece left by one cell.
func (p *Piece) MoveLeft() { p.x-- }

// MoveRight shifts the piece right by one cell.
func (p *Piece) MoveRight() { p.x++ }

// UndoMoveDown reverts one MoveDown.
func (p *Piece) UndoMoveDown() { p.y-- }

// UndoMoveLeft reverts one MoveLeft.
func (p *Piece) UndoMoveLeft() { p.x++ }

// UndoMoveRight reverts one MoveRight.
func (p *Piece) UndoMoveRight() { p.x-- }

// Type returns the piece type.
func (p *Piece) Type() PieceType { return p.typ }

// Shape returns the piece's current rotation as a binary matrix.
func (p *Piece) Shape() [][]int { return p.shape }

// Color returns the piece's fixed display color.
func (p *Piece) Color() core.Color { return p.color }

// X returns the x-coordinate of the shape's top-left anchor.
func (p *Piece) X() int { return p.x }

// Y returns the y-coordinate of the shape's top-left anchor.
func (p *Piece) Y() int { return p.y }
