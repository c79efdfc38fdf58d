package tetris

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Score        int
	Level        int
	LinesCleared int
	DropInterval time.Duration
	CurrentType  PieceType
	CurrentX     int
	CurrentY     int
	NextType     PieceType
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        g.engine.Score(),
		Level:        g.engine.Level(),
		LinesCleared: g.engine.LinesCleared(),
		DropInterval: g.engine.DropInterval(),
		CurrentType:  g.engine.Current().Type(),
		CurrentX:     g.engine.Current().X(),
		CurrentY:     g.engine.Current().Y(),
		NextType:     g.engine.Next().Type(),
		State:        state,
	}
}
