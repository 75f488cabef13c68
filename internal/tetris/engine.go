package tetris

import "math/rand"

// TickResult describes what happened during one logical tick.
type TickResult struct {
	Merged      bool // the active piece landed and was merged into the grid
	RowsCleared int
	GameOver    bool // a new piece spawned into a collision and the game was reset
	FinalScore  int  // score before the reset; only set with GameOver
	FinalRows   int
}

// Engine owns the grid, the active and next pieces, the input history and
// the score counters. It is not safe for concurrent use; the loop goroutine
// owns it and hands out Snapshots.
type Engine struct {
	rules   Rules
	rng     *rand.Rand
	history *InputHistory

	grid   Grid
	active Tetrimino
	next   Tetrimino

	score     int
	rows      int
	level     int
	sinceDrop int
	ticks     uint64
	resets    int
}

// NewEngine starts a game with the given rules. The seed feeds piece selection.
func NewEngine(rules Rules, seed int64) *Engine {
	e := &Engine{
		rules:   rules,
		rng:     rand.New(rand.NewSource(seed)),
		history: NewInputHistory(rules.Repeat),
	}
	e.active = e.drawPiece()
	e.next = e.drawPiece()
	e.level = rules.LevelFor(0)
	return e
}

// drawPiece picks a shape uniformly at random and places it at the spawn anchor.
func (e *Engine) drawPiece() Tetrimino {
	return NewTetrimino(Types[e.rng.Intn(int(TypeCount))], e.rules.Spawn)
}

// Tick runs one logical tick with the raw button sample s.
func (e *Engine) Tick(s Sample) TickResult {
	var res TickResult

	e.ticks++
	e.history.Update(s)

	merge, sinceDrop := e.active.Update(&e.grid, e.history, e.rules, e.level, e.sinceDrop)
	e.sinceDrop = sinceDrop

	if merge {
		res.Merged = true
		e.grid.Merge(&e.active)
		e.active = e.next
		if e.active.Collides(&e.grid) {
			res.GameOver = true
			res.FinalScore = e.score
			res.FinalRows = e.rows
			e.resetCounters()
		}
		e.next = e.drawPiece()
	}

	cleared := e.grid.RemoveCompletedRows()
	res.RowsCleared = cleared
	e.rows += cleared
	e.score += cleared * e.rules.RowScore * e.level
	e.level = e.rules.LevelFor(e.rows)

	e.sinceDrop++
	return res
}

// resetCounters is the game-over transition: the grid is emptied and play
// continues with the piece that failed to spawn.
func (e *Engine) resetCounters() {
	e.score = 0
	e.rows = 0
	e.sinceDrop = 0
	e.grid.Clear()
	e.resets++
}

// Grid returns a copy of the well.
func (e *Engine) Grid() Grid { return e.grid }

// Active returns a copy of the falling piece.
func (e *Engine) Active() Tetrimino { return e.active }

// Next returns a copy of the upcoming piece at its spawn position.
func (e *Engine) Next() Tetrimino { return e.next }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Rows returns the total rows cleared since the last reset.
func (e *Engine) Rows() int { return e.rows }

// Level returns the current difficulty level.
func (e *Engine) Level() int { return e.level }

// Ticks returns the number of logical ticks run.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules { return e.rules }
