package tetris

import (
	"math/rand"
	"time"
)

// Params collects the tunable rules of a session. Board dimensions, timing
// and scoring come from the YAML config; DefaultParams matches the classic
// rules.
type Params struct {
	Width  int // Grid width in cells
	Height int // Grid height in cells

	BaseDropInterval time.Duration // Automatic drop interval at level 1
	MinDropInterval  time.Duration // Floor for the drop interval
	LevelSpeedup     time.Duration // Interval reduction per level gained

	LinesPerLevel  int    // Cumulative cleared lines per level-up
	LinePoints     [5]int // Base points indexed by lines cleared in one lock (1-4)
	SoftDropPoints int    // Points per successful soft-drop step
}

// DefaultParams returns the classic 10×20 rules.
func DefaultParams() Params {
	return Params{
		Width:            10,
		Height:           20,
		BaseDropInterval: time.Second,
		MinDropInterval:  100 * time.Millisecond,
		LevelSpeedup:     100 * time.Millisecond,
		LinesPerLevel:    10,
		LinePoints:       [5]int{0, 100, 300, 500, 800},
		SoftDropPoints:   1,
	}
}

// Engine owns one Grid, the current and next piece, and the session state:
// score, level, cleared-line count, game-over flag and the drop-timing
// policy. It is single-threaded; the external frame driver advances time
// via Advance and player input arrives through the action methods.
type Engine struct {
	params Params
	rng    *rand.Rand

	grid    *Grid
	current *Piece
	next    *Piece

	score        int
	level        int
	linesCleared int
	gameOver     bool
	dropInterval time.Duration
	sinceDrop    time.Duration
}

// NewEngine creates a fresh session. The RNG drives piece selection and is
// injectable so tests can supply deterministic sequences; a nil rng falls
// back to a time-based seed.
func NewEngine(params Params, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		params:       params,
		rng:          rng,
		grid:         NewGrid(params.Width, params.Height),
		level:        1,
		dropInterval: params.BaseDropInterval,
	}
	e.current = NewPiece(rng)
	e.next = NewPiece(rng)
	return e
}

// Update performs one logical drop step: the current piece moves down one
// cell; if that collides it is returned to its resting position, locked
// into the grid, full lines are cleared and scored, and the next piece is
// promoted. A no-op after game over.
func (e *Engine) Update() {
	if e.gameOver {
		return
	}

	e.current.MoveDown()

	if e.grid.CheckCollision(e.current) {
		e.current.UndoMoveDown()
		e.grid.LockPiece(e.current)

		lines := e.grid.ClearLines()
		if lines > 0 {
			e.scoreLines(lines)
			e.linesCleared += lines
			e.updateLevel()
		}

		e.spawnNext()
	}
}

// Advance feeds elapsed wall-clock time from the frame driver into the
// drop-timing policy, firing Update for each crossed dropInterval
// threshold. Returns the number of drop steps performed. The engine itself
// holds no clock.
func (e *Engine) Advance(elapsed time.Duration) int {
	if e.gameOver {
		return 0
	}

	e.sinceDrop += elapsed
	steps := 0
	for !e.gameOver && e.sinceDrop >= e.dropInterval {
		e.sinceDrop -= e.dropInterval
		e.Update()
		steps++
	}
	return steps
}

// spawnNext promotes the next piece to current and draws a fresh next.
// The session ends if the promoted piece immediately collides.
func (e *Engine) spawnNext() {
	e.current = e.next
	e.next = NewPiece(e.rng)

	if e.grid.CheckCollision(e.current) {
		e.gameOver = true
	}
}

// MoveLeft shifts the current piece left if the target position is valid.
func (e *Engine) MoveLeft() {
	if e.gameOver {
		return
	}

	e.current.MoveLeft()
	if e.grid.CheckCollision(e.current) {
		e.current.UndoMoveLeft()
	}
}

// MoveRight shifts the current piece right if the target position is valid.
func (e *Engine) MoveRight() {
	if e.gameOver {
		return
	}

	e.current.MoveRight()
	if e.grid.CheckCollision(e.current) {
		e.current.UndoMoveRight()
	}
}

// SoftDrop advances the current piece one step down ahead of the automatic
// drop, awarding a point when it succeeds. Dropping onto a resting position
// does not lock the piece; locking happens on the next Update.
func (e *Engine) SoftDrop() {
	if e.gameOver {
		return
	}

	e.current.MoveDown()
	if e.grid.CheckCollision(e.current) {
		e.current.UndoMoveDown()
	} else {
		e.score += e.params.SoftDropPoints
	}
}

// Rotate turns the current piece clockwise, reverting when the rotated
// shape collides.
func (e *Engine) Rotate() {
	if e.gameOver {
		return
	}

	e.current.Rotate()
	if e.grid.CheckCollision(e.current) {
		e.current.UndoRotate()
	}
}

// scoreLines awards base points for the lines cleared by one lock,
// multiplied by the current level. Counts outside 1-4 award nothing; they
// are unreachable with standard pieces but guarded anyway.
func (e *Engine) scoreLines(lines int) {
	if lines >= 1 && lines < len(e.params.LinePoints) {
		e.score += e.params.LinePoints[lines] * e.level
	}
}

// updateLevel recomputes the level from the cumulative cleared lines and
// speeds up the drop interval on a level gain, floored at MinDropInterval.
func (e *Engine) updateLevel() {
	newLevel := e.linesCleared/e.params.LinesPerLevel + 1
	if newLevel > e.level {
		e.level = newLevel
		interval := e.params.BaseDropInterval - time.Duration(e.level-1)*e.params.LevelSpeedup
		if interval < e.params.MinDropInterval {
			interval = e.params.MinDropInterval
		}
		e.dropInterval = interval
	}
}

// Reset returns the session to its initial state: empty grid, zero score,
// level 1, base drop interval, fresh pieces. A freshly spawned piece cannot
// collide with an empty grid, so no game-over re-check is needed.
func (e *Engine) Reset() {
	e.grid.Reset()
	e.score = 0
	e.level = 1
	e.linesCleared = 0
	e.gameOver = false
	e.dropInterval = e.params.BaseDropInterval
	e.sinceDrop = 0
	e.current = NewPiece(e.rng)
	e.next = NewPiece(e.rng)
}

// Grid returns the settled-cell grid for the presentation layer.
func (e *Engine) Grid() *Grid { return e.grid }

// Current returns the falling piece.
func (e *Engine) Current() *Piece { return e.current }

// Next returns the upcoming piece shown in the preview.
func (e *Engine) Next() *Piece { return e.next }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// LinesCleared returns the cumulative number of cleared lines.
func (e *Engine) LinesCleared() int { return e.linesCleared }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// DropInterval returns the current automatic drop interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }
