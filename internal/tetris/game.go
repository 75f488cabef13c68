package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// InputSource supplies the button sample for a frame in place of the
// keyboard. The neural controller implements it.
type InputSource interface {
	Sample(s Snapshot) Sample
}

// TickObserver is notified after every logical tick with the state the tick
// started from, the sample it ran with and its outcome.
type TickObserver interface {
	ObserveTick(before Snapshot, in Sample, res TickResult)
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values fall back
// to the config file.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the engine to the platform: it owns the fixed-timestep loop,
// maps platform actions to buttons, and layers pause and game-over screens
// on top of the engine.
type Game struct {
	id    string
	title string

	cfg    config.TetrisConfig
	rules  Rules
	clock  Clock
	loop   *Loop
	engine *Engine
	rng    *rand.Rand

	controller InputSource
	observer   TickObserver

	// holdOnGameOver stops play on the engine's reset and shows the final
	// score until Restart. The AI variant plays on instead.
	holdOnGameOver bool

	paused     bool
	gameOver   bool
	finalScore int
	finalRows  int
	bestScore  int
	lastSample Sample
	finished   []core.GameResult

	screenW int
	screenH int
}

// New creates a player-controlled game.
func New() *Game {
	return &Game{
		id:             "tetris",
		title:          "Tetris",
		holdOnGameOver: true,
	}
}

// NewControlled creates a game driven by src instead of the keyboard.
// It keeps playing through game-over resets.
func NewControlled(id, title string, src InputSource) *Game {
	return &Game{
		id:         id,
		title:      title,
		controller: src,
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// SetController replaces keyboard input with src. nil restores the keyboard.
func (g *Game) SetController(src InputSource) { g.controller = src }

// SetObserver installs a per-tick observer. nil removes it.
func (g *Game) SetObserver(obs TickObserver) { g.observer = obs }

// SetClock replaces the system clock. Must be called before Reset.
func (g *Game) SetClock(c Clock) { g.clock = c }

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.TetrisConfig { return g.cfg }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	// Load game config
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}

	// Apply difficulty preset if set
	config.ApplyTetrisPreset(&cfg, difficultyPreset)

	if cfg.Validate() != nil || RulesFromConfig(cfg).Validate() != nil {
		cfg = config.DefaultTetrisConfig()
	}

	g.cfg = cfg
	g.rules = RulesFromConfig(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.engine = NewEngine(g.rules, runtime.Seed)

	if g.clock == nil {
		g.clock = NewSystemClock()
	}
	g.loop = NewLoop(g.clock,
		time.Second/time.Duration(cfg.Timing.TickHz),
		time.Duration(cfg.Timing.MaxFrameMs)*time.Millisecond)

	g.paused = false
	g.gameOver = false
	g.finalScore = 0
	g.finalRows = 0
	g.lastSample = Sample{}
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
}

// RulesFromConfig converts the YAML configuration into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		BaseDropTicks: cfg.Rules.BaseDropTicks,
		DropStepTicks: cfg.Rules.DropStepTicks,
		MinDropTicks:  cfg.Rules.MinDropTicks,
		RowsPerLevel:  cfg.Rules.RowsPerLevel,
		RowScore:      cfg.Rules.RowScore,
		StartLevel:    cfg.Difficulty.StartLevel,
		Progression:   cfg.Difficulty.Enabled,
		Repeat: RepeatPolicy{
			Delay:    cfg.Input.RepeatDelay,
			Interval: cfg.Input.RepeatInterval,
		},
		Spawn:   Coordinates{X: cfg.Layout.SpawnX, Y: cfg.Layout.SpawnY},
		Preview: Coordinates{X: cfg.Layout.PreviewX, Y: cfg.Layout.PreviewY},
	}
}

// SampleFromFrame maps platform actions onto the five engine buttons.
func SampleFromFrame(in core.InputFrame) Sample {
	var s Sample
	s[ButtonDown] = in.Has(core.ActionDown)
	s[ButtonLeft] = in.Has(core.ActionLeft)
	s[ButtonRight] = in.Has(core.ActionRight)
	s[ButtonRotateClockwise] = in.Has(core.ActionRotateClockwise)
	s[ButtonRotateAntiClockwise] = in.Has(core.ActionRotateAntiClockwise)
	return s
}

// Step is called once per platform frame. It samples input once, then runs
// however many logical ticks the clock says have elapsed, reusing that
// sample for each of them.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.gameOver || g.paused) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		if !g.paused {
			g.loop.Resync()
		}
	}

	if g.paused || g.gameOver {
		// Time spent here must not be replayed on resume
		g.loop.Resync()
		return core.StepResult{State: g.State()}
	}

	sample := SampleFromFrame(in)
	if g.controller != nil {
		sample = g.controller.Sample(g.engine.Snapshot())
	}
	g.lastSample = sample
	g.finished = nil

	ticks := g.loop.Advance(func() {
		if g.gameOver {
			return
		}
		g.tick(sample)
	})

	return core.StepResult{State: g.State(), Ticks: ticks, Finished: g.finished}
}

// tick runs one engine tick and handles the game-over transition.
func (g *Game) tick(sample Sample) {
	var before Snapshot
	if g.observer != nil {
		before = g.engine.Snapshot()
	}

	res := g.engine.Tick(sample)

	if g.observer != nil {
		g.observer.ObserveTick(before, sample, res)
	}

	if res.GameOver {
		g.bestScore = max(g.bestScore, res.FinalScore)
		g.finished = append(g.finished, core.GameResult{Score: res.FinalScore, Lines: res.FinalRows})
		if g.holdOnGameOver {
			g.gameOver = true
			g.finalScore = res.FinalScore
			g.finalRows = res.FinalRows
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	score := g.engine.Score()
	if g.gameOver {
		score = g.finalScore
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lines returns the rows cleared in the current game, or in the finished one
// while the game-over screen is shown.
func (g *Game) Lines() int {
	if g.gameOver {
		return g.finalRows
	}
	return g.engine.Rows()
}

// KeyRelease returns how long a key counts as held after its last press
// event.
func (g *Game) KeyRelease() time.Duration {
	return time.Duration(g.cfg.Input.ReleaseAfterMs) * time.Millisecond
}

// Snapshot returns the engine state after the last drained frame.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// BestScore returns the highest final score seen since the game was created.
func (g *Game) BestScore() int {
	return max(g.bestScore, g.engine.Score())
}
