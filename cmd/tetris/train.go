package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagEpochs int
	flagRate   float64
	flagBatch  int
	flagLimit  int
	flagFresh  bool
	flagClear  bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the network on recorded play",
	Long: `Train the neural network on frames recorded with 'tetris play --record'.

Training continues from the stored network of the same name unless --fresh
is given. Zero-valued flags fall back to the ai section of the config.
Ctrl+C stops training without saving. --clear deletes the recorded frames
instead of training.

Examples:
  tetris train
  tetris train --epochs 100 --rate 0.25
  tetris train --network cautious --fresh --limit 20000`,
	Args: cobra.NoArgs,
	Run:  runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.StringVar(&flagNetwork, "network", "", "Stored network name (default from config)")
	f.IntVar(&flagEpochs, "epochs", 0, "Passes over the training data")
	f.Float64Var(&flagRate, "rate", 0, "Learning rate")
	f.IntVar(&flagBatch, "batch", 0, "Mini-batch size")
	f.IntVar(&flagLimit, "limit", 0, "Train on the most recent N frames (0 = all)")
	f.BoolVar(&flagFresh, "fresh", false, "Start from a new random network")
	f.BoolVar(&flagClear, "clear", false, "Delete all recorded frames and exit")
}

func runTrain(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	fail := func(msg string, err error) {
		logger.Error(msg, "error", err)
		closeLog()
		os.Exit(1)
	}

	cfg := loadConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open database", err)
	}
	defer store.Close()

	if flagClear {
		n, _ := store.CountRecords()
		if err := store.ClearRecords(); err != nil {
			store.Close()
			fail("could not clear recorded frames", err)
		}
		logger.Info("recorded frames deleted", "count", n)
		return
	}

	raw, err := store.LoadRecords(flagLimit)
	if err != nil {
		store.Close()
		fail("could not load recorded frames", err)
	}
	examples, skipped := ai.Examples(raw)
	if skipped > 0 {
		logger.Warn("skipped unreadable frames", "count", skipped)
	}
	if len(examples) == 0 {
		store.Close()
		fail("nothing to train on, record some games with 'tetris play --record'", ai.ErrNoExamples)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	name := networkName(cfg)
	var net *ai.Network
	if !flagFresh {
		net, err = ai.LoadNetwork(store, name)
		if err != nil && !errors.Is(err, storage.ErrNetworkNotFound) {
			logger.Warn("stored network unusable, starting fresh", "network", name, "error", err)
		}
	}
	if net == nil {
		net, err = ai.NewRandomNetwork(seed, ai.InputSize, cfg.AI.Hidden, ai.OutputSize)
		if err != nil {
			store.Close()
			fail("could not create network", err)
		}
	}

	tc := ai.TrainConfig{
		Epochs:       orInt(flagEpochs, cfg.AI.Epochs),
		LearningRate: orFloat(flagRate, cfg.AI.LearningRate),
		BatchSize:    orInt(flagBatch, cfg.AI.BatchSize),
		Seed:         seed,
	}
	logger.Info("training",
		"network", name,
		"sizes", fmt.Sprint(net.Sizes()),
		"frames", len(examples),
		"epochs", tc.Epochs,
		"rate", tc.LearningRate,
		"batch", tc.BatchSize,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	costs, err := ai.Train(ctx, net, examples, tc, func(epoch int, cost float64) {
		logger.Info("epoch", "n", epoch, "cost", cost)
	})
	if err != nil {
		store.Close()
		fail("training stopped, network not saved", err)
	}

	if err := ai.SaveNetwork(store, name, net); err != nil {
		store.Close()
		fail("could not save network", err)
	}

	logger.Info("network saved",
		"network", name,
		"cost", costs[len(costs)-1],
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}

func orInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func orFloat(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
