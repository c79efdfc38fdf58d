package tetris

import (
	"strings"
	"testing"

	"github.com/mzoryn/blockfall/internal/core"
	"github.com/mzoryn/blockfall/internal/registry"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("tetris") {
		t.Fatal("tetris should be registered with the platform")
	}

	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	if g.ID() != "tetris" || g.Title() != "Tetris" {
		t.Errorf("ID/Title = %q/%q, want tetris/Tetris", g.ID(), g.Title())
	}
}

func TestStepMapsActions(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	g.Step(frame(core.ActionLeft))
	if got := g.Snapshot().CurrentX; got != spawnX-1 {
		t.Errorf("after ActionLeft, x = %d, want %d", got, spawnX-1)
	}

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	if got := g.Snapshot().CurrentX; got != spawnX+1 {
		t.Errorf("after two ActionRight, x = %d, want %d", got, spawnX+1)
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionDown))
	after := g.Snapshot()
	if after.CurrentY != before.CurrentY+1 {
		t.Errorf("ActionDown should soft drop, y = %d, want %d", after.CurrentY, before.CurrentY+1)
	}
	if after.Score != before.Score+1 {
		t.Errorf("soft drop should score a point, score = %d, want %d", after.Score, before.Score+1)
	}
}

func TestAutomaticDropOverTicks(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))
	startY := g.Snapshot().CurrentY

	// 61 ticks at 60 fps crosses the 1s drop interval once
	empty := core.NewInputFrame()
	for i := 0; i < 61; i++ {
		g.Step(empty)
	}

	if got := g.Snapshot().CurrentY; got != startY+1 {
		t.Errorf("piece should drop once after ~1s of ticks, y = %d, want %d", got, startY+1)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("ActionPause should pause the game")
	}

	before := g.Snapshot()
	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(empty)
	}
	g.Step(frame(core.ActionLeft))
	after := g.Snapshot()

	if after.CurrentX != before.CurrentX || after.CurrentY != before.CurrentY {
		t.Error("paused game must ignore time and input")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second ActionPause should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))
	g.engine.score = 450
	g.engine.gameOver = true

	// Without restart, actions are no-ops
	g.Step(frame(core.ActionLeft, core.ActionDown))
	if g.Snapshot().Score != 450 {
		t.Error("actions after game over must not change the score")
	}
	if !g.State().GameOver {
		t.Error("State should report game over")
	}

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Level != 1 || snap.LinesCleared != 0 {
		t.Errorf("restart should reset the session, got %+v", snap)
	}
	if g.State().GameOver {
		t.Error("restart should clear the game-over flag")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))
	g.Step(frame(core.ActionDown)) // score 1

	g.Step(frame(core.ActionRestart))

	if g.Snapshot().Score != 1 {
		t.Error("ActionRestart must be ignored while the game is running")
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 7})

	if !g.State().Paused {
		t.Error("too-small window should report the game as held")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %q, want %q", g.Snapshot().State, StatePausedSmall)
	}

	before := g.Snapshot().CurrentY
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().CurrentY != before {
		t.Error("simulation must not advance while the window is too small")
	}
}

func TestGameDeterminism(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig(12345))
	b.Reset(testRuntimeConfig(12345))

	// Identical input streams must produce identical snapshots
	script := func(i int) core.InputFrame {
		switch {
		case i%97 == 0:
			return frame(core.ActionRotate)
		case i%13 == 0:
			return frame(core.ActionLeft)
		case i%17 == 0:
			return frame(core.ActionRight)
		case i%7 == 0:
			return frame(core.ActionDown)
		default:
			return core.NewInputFrame()
		}
	}

	for i := 0; i < 2000; i++ {
		a.Step(script(i))
		b.Step(script(i))

		if i%250 == 0 {
			sa, sb := a.Snapshot(), b.Snapshot()
			if sa != sb {
				t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, sa, sb)
			}
		}
	}

	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("final snapshots diverged:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestRenderFrame(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Tetris") {
		t.Errorf("HUD should name the game, row 0 = %q", screen.Row(0))
	}
	if screen.Get(g.boardX, g.boardY) != '┌' {
		t.Error("board frame should be drawn at the layout origin")
	}
	if !strings.Contains(screen.String(), "Next:") {
		t.Error("side panel should show the next-piece preview label")
	}

	// The falling piece is drawn inside the frame in its own color
	p := g.engine.Current()
	shape := p.Shape()
	drawn := false
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] != 1 {
				continue
			}
			cell := screen.GetCell(g.boardX+1+p.X()+x, g.boardY+1+p.Y()+y)
			if cell.Rune == '█' && cell.Color == p.Color() {
				drawn = true
			}
		}
	}
	if !drawn {
		t.Error("current piece should be rendered inside the board frame")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))
	g.engine.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game-over overlay should be rendered")
	}
}
