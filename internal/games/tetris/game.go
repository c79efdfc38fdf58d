package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mzoryn/blockfall/internal/config"
	"github.com/mzoryn/blockfall/internal/core"
	"github.com/mzoryn/blockfall/internal/registry"
)

// Side panel width: next-piece preview plus score/level/lines readouts.
const panelWidth = 14

// Game adapts the pure Engine to the platform Game interface: it maps input
// actions to engine calls, feeds the per-tick elapsed time into the drop
// policy, and draws the engine state into the screen buffer.
type Game struct {
	engine *Engine
	params Params
	tick   uint64

	tickInterval time.Duration

	// Screen dimensions and board placement
	screenW int
	screenH int
	boardX  int
	boardY  int

	// Platform-level flags; the engine itself knows nothing about these
	paused   bool
	tooSmall bool
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the YAML config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tcfg, err := config.LoadTetris(configPath)
	if err != nil {
		tcfg = config.DefaultTetrisConfig()
	}
	g.params = paramsFromConfig(tcfg)

	g.engine = NewEngine(g.params, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.paused = false

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickInterval = time.Second / time.Duration(tickRate)

	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// paramsFromConfig translates the YAML configuration into engine rules.
func paramsFromConfig(cfg config.TetrisConfig) Params {
	p := DefaultParams()

	if cfg.Board.Width > 0 {
		p.Width = cfg.Board.Width
	}
	if cfg.Board.Height > 0 {
		p.Height = cfg.Board.Height
	}
	if cfg.Timing.BaseDropMs > 0 {
		p.BaseDropInterval = time.Duration(cfg.Timing.BaseDropMs) * time.Millisecond
	}
	if cfg.Timing.MinDropMs > 0 {
		p.MinDropInterval = time.Duration(cfg.Timing.MinDropMs) * time.Millisecond
	}
	if cfg.Timing.LevelSpeedupMs > 0 {
		p.LevelSpeedup = time.Duration(cfg.Timing.LevelSpeedupMs) * time.Millisecond
	}
	if cfg.Scoring.LinesPerLevel > 0 {
		p.LinesPerLevel = cfg.Scoring.LinesPerLevel
	}
	if cfg.Scoring.Single > 0 {
		p.LinePoints = [5]int{0, cfg.Scoring.Single, cfg.Scoring.Double, cfg.Scoring.Triple, cfg.Scoring.Tetris}
	}
	if cfg.Scoring.SoftDrop > 0 {
		p.SoftDropPoints = cfg.Scoring.SoftDrop
	}

	return p
}

// layout centers the board frame plus side panel on the screen.
func (g *Game) layout(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH

	// One HUD row so the framed 10x20 board fits a 24-row terminal
	// alongside the platform help line.
	hudHeight := 1
	frameW := g.params.Width + 2
	frameH := g.params.Height + 2

	requiredW := frameW + panelWidth
	requiredH := frameH + hudHeight
	g.tooSmall = screenW < requiredW || screenH < requiredH
	if g.tooSmall {
		return
	}

	g.boardX = (screenW - requiredW) / 2
	g.boardY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is wired straight to the engine's reset
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.engine.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Player actions apply immediately; the engine no-ops them after game over
	if in.Has(core.ActionLeft) {
		g.engine.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.engine.MoveRight()
	}
	if in.Has(core.ActionDown) {
		g.engine.SoftDrop()
	}
	if in.Has(core.ActionRotate) {
		g.engine.Rotate()
	}

	g.engine.Advance(g.tickInterval)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderCurrentPiece(dst)
	g.renderPanel(dst)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris   Score: %d  Level: %d  Lines: %d",
		g.engine.Score(), g.engine.Level(), g.engine.LinesCleared())
	dst.DrawText(0, 0, hud)
}

// renderBoard draws the playfield frame and the settled cells.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.engine.Grid()

	frame := core.NewRect(g.boardX, g.boardY, grid.Width()+2, grid.Height()+2)
	dst.DrawBox(frame)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.IsFilled(x, y) {
				dst.SetColored(g.boardX+1+x, g.boardY+1+y, '█', grid.ColorAt(x, y))
			}
		}
	}
}

// renderCurrentPiece draws the falling piece. Rows above the visible grid
// are clipped.
func (g *Game) renderCurrentPiece(dst *core.Screen) {
	p := g.engine.Current()
	shape := p.Shape()

	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] != 1 {
				continue
			}
			gridY := p.Y() + y
			if gridY < 0 {
				continue
			}
			dst.SetColored(g.boardX+1+p.X()+x, g.boardY+1+gridY, '█', p.Color())
		}
	}
}

// renderPanel draws the next-piece preview and the score readouts to the
// right of the board.
func (g *Game) renderPanel(dst *core.Screen) {
	grid := g.engine.Grid()
	panelX := g.boardX + grid.Width() + 2 + 2
	panelY := g.boardY

	dst.DrawText(panelX, panelY, "Next:")

	next := g.engine.Next()
	shape := next.Shape()
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] == 1 {
				dst.SetColored(panelX+x, panelY+2+y, '█', next.Color())
			}
		}
	}

	dst.DrawText(panelX, panelY+7, fmt.Sprintf("Score %d", g.engine.Score()))
	dst.DrawText(panelX, panelY+8, fmt.Sprintf("Level %d", g.engine.Level()))
	dst.DrawText(panelX, panelY+9, fmt.Sprintf("Lines %d", g.engine.LinesCleared()))
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
