package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Rules: TetrisRules{
			BaseDropTicks: 120,
			DropStepTicks: 5,
			MinDropTicks:  10,
			RowsPerLevel:  10,
			RowScore:      100,
		},
		Input: TetrisInput{
			RepeatDelay:    30,
			RepeatInterval: 3,
			ReleaseAfterMs: 120,
		},
		Timing: TetrisTiming{
			TickHz:     60,
			MaxFrameMs: 250,
		},
		Layout: TetrisLayout{
			SpawnX:   4,
			SpawnY:   0,
			PreviewX: 15,
			PreviewY: 13,
		},
		AI: TetrisAI{
			Network:      "default",
			Threshold:    0.75,
			Hidden:       64,
			LearningRate: 0.5,
			Epochs:       30,
			BatchSize:    32,
			FlushEvery:   600,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartLevel: 1,
		},
	}
}
