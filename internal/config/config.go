// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Rules      TetrisRules      `yaml:"rules"`
	Input      TetrisInput      `yaml:"input"`
	Timing     TetrisTiming     `yaml:"timing"`
	Layout     TetrisLayout     `yaml:"layout"`
	AI         TetrisAI         `yaml:"ai"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisRules defines drop cadence and scoring.
type TetrisRules struct {
	BaseDropTicks int `yaml:"base_drop_ticks"` // Ticks between drops at level 1
	DropStepTicks int `yaml:"drop_step_ticks"` // Ticks removed per level
	MinDropTicks  int `yaml:"min_drop_ticks"`  // Fastest drop interval
	RowsPerLevel  int `yaml:"rows_per_level"`
	RowScore      int `yaml:"row_score"` // Points per row, multiplied by level
}

// TetrisInput defines key repeat behaviour.
type TetrisInput struct {
	RepeatDelay    int `yaml:"repeat_delay"`     // Held ticks before the first repeat
	RepeatInterval int `yaml:"repeat_interval"`  // Ticks between repeats
	ReleaseAfterMs int `yaml:"release_after_ms"` // Terminal key counts as released after this much silence
}

// TetrisTiming defines the fixed-timestep loop.
type TetrisTiming struct {
	TickHz     int `yaml:"tick_hz"`      // Logical ticks per second
	MaxFrameMs int `yaml:"max_frame_ms"` // Cap on time fed to the accumulator per frame
}

// TetrisLayout defines the spawn and preview anchors in well coordinates.
type TetrisLayout struct {
	SpawnX   int `yaml:"spawn_x"`
	SpawnY   int `yaml:"spawn_y"`
	PreviewX int `yaml:"preview_x"`
	PreviewY int `yaml:"preview_y"`
}

// TetrisAI defines the neural controller and its training defaults.
type TetrisAI struct {
	Network      string  `yaml:"network"`   // Stored network name
	Threshold    float64 `yaml:"threshold"` // Output activation that counts as a press
	Hidden       int     `yaml:"hidden"`
	LearningRate float64 `yaml:"learning_rate"`
	Epochs       int     `yaml:"epochs"`
	BatchSize    int     `yaml:"batch_size"`
	FlushEvery   int     `yaml:"flush_every"` // Recorded frames buffered before a write
}

// DifficultyConfig defines level progression.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // false keeps the level at start_level
	StartLevel int  `yaml:"start_level"` // 1 = slowest
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. An empty string means
// "use the config file as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Timing.TickHz <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_hz must be positive, got %d", c.Timing.TickHz))
	}
	if c.Rules.BaseDropTicks <= 0 || c.Rules.MinDropTicks <= 0 {
		errs = append(errs, errors.New("rules: drop ticks must be positive"))
	}
	if c.Rules.DropStepTicks < 0 {
		errs = append(errs, fmt.Errorf("rules.drop_step_ticks must not be negative, got %d", c.Rules.DropStepTicks))
	}
	if c.Input.RepeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_interval must be positive, got %d", c.Input.RepeatInterval))
	}
	if c.Input.RepeatDelay < 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay must not be negative, got %d", c.Input.RepeatDelay))
	}
	if c.Difficulty.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("difficulty.start_level must be at least 1, got %d", c.Difficulty.StartLevel))
	}
	if c.Layout.SpawnX < 0 || c.Layout.SpawnY < 0 || c.Layout.PreviewX < 0 || c.Layout.PreviewY < 0 {
		errs = append(errs, fmt.Errorf("layout anchors must not be negative, got spawn (%d, %d) preview (%d, %d)",
			c.Layout.SpawnX, c.Layout.SpawnY, c.Layout.PreviewX, c.Layout.PreviewY))
	}
	if c.AI.Threshold <= 0 || c.AI.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("ai.threshold must be in (0, 1), got %g", c.AI.Threshold))
	}
	return errors.Join(errs...)
}
