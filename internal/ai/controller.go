package ai

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// DefaultThreshold is the output activation at or above which a button
// counts as pressed.
const DefaultThreshold = 0.75

// Controller drives a game from a network's outputs. It implements
// tetris.InputSource.
type Controller struct {
	net       *Network
	threshold float64
}

// NewController wraps net. A threshold outside (0, 1) selects DefaultThreshold.
func NewController(net *Network, threshold float64) (*Controller, error) {
	if net.InputSize() != InputSize || net.OutputSize() != OutputSize {
		return nil, fmt.Errorf("ai: controller needs a %d->%d network, got %v: %w",
			InputSize, OutputSize, net.Sizes(), ErrLayerMismatch)
	}
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &Controller{net: net, threshold: threshold}, nil
}

// Outputs returns the raw activations for a snapshot, in tetris.Button order.
func (c *Controller) Outputs(s tetris.Snapshot) []float64 {
	return c.net.FeedForward(Encode(s))
}

// Sample thresholds the network outputs into a button sample.
func (c *Controller) Sample(s tetris.Snapshot) tetris.Sample {
	var out tetris.Sample
	for b, a := range c.Outputs(s) {
		out[b] = a >= c.threshold
	}
	return out
}

// Threshold returns the press threshold in use.
func (c *Controller) Threshold() float64 { return c.threshold }

// The registered AI game reads its network from here; the CLI installs a
// trained one before creating the game.
var (
	mu            sync.Mutex
	gameNetwork   *Network
	gameThreshold = DefaultThreshold
)

// fallbackSeed seeds the untrained network used when none is installed.
const fallbackSeed = 1

// SetNetwork sets the network used by newly created AI games. nil selects an
// untrained random network.
func SetNetwork(n *Network) {
	mu.Lock()
	defer mu.Unlock()
	gameNetwork = n
}

// SetThreshold sets the press threshold used by newly created AI games.
func SetThreshold(t float64) {
	mu.Lock()
	defer mu.Unlock()
	gameThreshold = t
}

// NewGame creates the AI-controlled game with the configured network.
func NewGame() *tetris.Game {
	mu.Lock()
	net, threshold := gameNetwork, gameThreshold
	mu.Unlock()

	if net == nil {
		net = DefaultNetwork(fallbackSeed)
	}
	ctrl, err := NewController(net, threshold)
	if err != nil {
		// A mis-shaped network cannot drive the game; play with a fresh one.
		ctrl, _ = NewController(DefaultNetwork(fallbackSeed), threshold)
	}
	return tetris.NewControlled("tetris_ai", "Tetris (AI)", ctrl)
}

func init() {
	registry.Register("tetris_ai", func() registry.Game {
		return NewGame()
	})
}
