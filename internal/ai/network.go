// Package ai implements the neural controller: a small feed-forward network
// that maps a game snapshot to the five engine buttons, trained by
// backpropagation on frames recorded from human play.
package ai

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Default layer sizes.
const (
	InputSize  = 192 // see Record.Inputs
	HiddenSize = 64
	OutputSize = int(tetris.ButtonCount)
)

// layer is a fully connected sigmoid layer. weights is row-major, one row of
// `in` weights per output neuron.
type layer struct {
	in, out int
	weights []float64
	biases  []float64
}

func newLayer(in, out int) layer {
	return layer{
		in:      in,
		out:     out,
		weights: make([]float64, in*out),
		biases:  make([]float64, out),
	}
}

// forward writes the weighted inputs z and activations a for input x.
func (l *layer) forward(x, z, a []float64) {
	for o := range l.out {
		sum := l.biases[o]
		row := l.weights[o*l.in : (o+1)*l.in]
		for i, w := range row {
			sum += w * x[i]
		}
		z[o] = sum
		a[o] = sigmoid(sum)
	}
}

// Network is a feed-forward network of sigmoid layers.
type Network struct {
	layers []layer
}

// NewNetwork creates a zero-weight network with the given layer sizes,
// input first.
func NewNetwork(sizes ...int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("ai: network needs at least 2 layer sizes, got %d", len(sizes))
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("ai: layer size must be positive, got %v", sizes)
		}
	}

	n := &Network{layers: make([]layer, len(sizes)-1)}
	for i := range n.layers {
		n.layers[i] = newLayer(sizes[i], sizes[i+1])
	}
	return n, nil
}

// NewRandomNetwork creates a network with weights and biases drawn uniformly
// from [-1, 1) and scaled down by the square root of each layer's fan-in.
func NewRandomNetwork(seed int64, sizes ...int) (*Network, error) {
	n, err := NewNetwork(sizes...)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for li := range n.layers {
		l := &n.layers[li]
		scale := 1 / math.Sqrt(float64(l.in))
		for i := range l.weights {
			l.weights[i] = (rng.Float64()*2 - 1) * scale
		}
		for i := range l.biases {
			l.biases[i] = rng.Float64()*2 - 1
		}
	}
	return n, nil
}

// DefaultNetwork returns a randomly initialised network with the default
// layer sizes.
func DefaultNetwork(seed int64) *Network {
	n, _ := NewRandomNetwork(seed, InputSize, HiddenSize, OutputSize)
	return n
}

// Sizes returns the layer sizes, input first.
func (n *Network) Sizes() []int {
	sizes := make([]int, 0, len(n.layers)+1)
	sizes = append(sizes, n.layers[0].in)
	for _, l := range n.layers {
		sizes = append(sizes, l.out)
	}
	return sizes
}

// InputSize returns the number of inputs the network expects.
func (n *Network) InputSize() int { return n.layers[0].in }

// OutputSize returns the number of outputs the network produces.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].out }

// FeedForward returns the output activations for input. It panics if the
// input length does not match InputSize.
func (n *Network) FeedForward(input []float64) []float64 {
	if len(input) != n.InputSize() {
		panic(fmt.Sprintf("ai: input has %d values, network expects %d", len(input), n.InputSize()))
	}

	x := input
	for li := range n.layers {
		l := &n.layers[li]
		z := make([]float64, l.out)
		a := make([]float64, l.out)
		l.forward(x, z, a)
		x = a
	}
	return x
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := &Network{layers: make([]layer, len(n.layers))}
	for i, l := range n.layers {
		c.layers[i] = layer{
			in:      l.in,
			out:     l.out,
			weights: append([]float64(nil), l.weights...),
			biases:  append([]float64(nil), l.biases...),
		}
	}
	return c
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
