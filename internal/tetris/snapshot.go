package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a read-only view of a tetrimino.
type Piece struct {
	Type   Type
	Blocks Blocks
}

// Colour returns the piece's display colour.
func (p Piece) Colour() core.Color {
	return p.Type.Colour()
}

// Snapshot is the state exposed to renderers, recorders and controllers.
// It is a value copy taken on a tick boundary; mutating it has no effect on
// the engine.
type Snapshot struct {
	Tick   uint64
	Grid   Grid
	Active Piece
	Next   Piece // placed at the preview anchor
	Score  int
	Rows   int
	Level  int
	Resets int    // game-over transitions so far
	Input  Sample // sample applied on the last tick
}

// Snapshot captures the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:   e.ticks,
		Grid:   e.grid,
		Active: Piece{Type: e.active.Type(), Blocks: e.active.Blocks()},
		Next:   Piece{Type: e.next.Type(), Blocks: BlocksAt(e.next.Type(), e.rules.Preview)},
		Score:  e.score,
		Rows:   e.rows,
		Level:  e.level,
		Resets: e.resets,
		Input:  e.history.Current(),
	}
}
