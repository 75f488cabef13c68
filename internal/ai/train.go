package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Example is one training pair.
type Example struct {
	Input  []float64
	Target []float64
}

// TrainConfig controls mini-batch gradient descent.
type TrainConfig struct {
	Epochs       int
	LearningRate float64
	BatchSize    int
	Seed         int64 // shuffling seed; equal seeds give equal networks
}

// ErrNoExamples is returned when training is asked to run on nothing.
var ErrNoExamples = errors.New("ai: no training examples")

// Train runs mini-batch stochastic gradient descent with a quadratic cost.
// It returns the mean cost over all examples after each epoch. progress, if
// not nil, is called after every epoch. Cancelling ctx stops training between
// batches and returns the costs so far with ctx.Err().
func Train(ctx context.Context, n *Network, examples []Example, cfg TrainConfig, progress func(epoch int, cost float64)) ([]float64, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	if cfg.Epochs <= 0 || cfg.BatchSize <= 0 || cfg.LearningRate <= 0 {
		return nil, fmt.Errorf("ai: invalid training config %+v", cfg)
	}
	for i, ex := range examples {
		if len(ex.Input) != n.InputSize() || len(ex.Target) != n.OutputSize() {
			return nil, fmt.Errorf("ai: example %d has shape %d->%d, network is %v: %w",
				i, len(ex.Input), len(ex.Target), n.Sizes(), ErrLayerMismatch)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	order := make([]int, len(examples))
	for i := range order {
		order[i] = i
	}

	grad := newGradient(n)
	costs := make([]float64, 0, cfg.Epochs)

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for start := 0; start < len(order); start += cfg.BatchSize {
			if err := ctx.Err(); err != nil {
				return costs, err
			}
			end := min(start+cfg.BatchSize, len(order))

			grad.zero()
			for _, idx := range order[start:end] {
				n.backpropagate(examples[idx], grad)
			}
			n.apply(grad, cfg.LearningRate/float64(end-start))
		}

		cost := n.Cost(examples)
		costs = append(costs, cost)
		if progress != nil {
			progress(epoch, cost)
		}
	}
	return costs, nil
}

// Cost returns the mean quadratic cost 0.5*||a-y||^2 over examples.
func (n *Network) Cost(examples []Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	total := 0.0
	for _, ex := range examples {
		out := n.FeedForward(ex.Input)
		for i, a := range out {
			d := a - ex.Target[i]
			total += 0.5 * d * d
		}
	}
	return total / float64(len(examples))
}

// gradient accumulates weight and bias derivatives per layer.
type gradient struct {
	weights [][]float64
	biases  [][]float64
}

func newGradient(n *Network) *gradient {
	g := &gradient{
		weights: make([][]float64, len(n.layers)),
		biases:  make([][]float64, len(n.layers)),
	}
	for i, l := range n.layers {
		g.weights[i] = make([]float64, len(l.weights))
		g.biases[i] = make([]float64, len(l.biases))
	}
	return g
}

func (g *gradient) zero() {
	for i := range g.weights {
		clear(g.weights[i])
		clear(g.biases[i])
	}
}

// backpropagate adds the cost gradient for one example to g.
func (n *Network) backpropagate(ex Example, g *gradient) {
	// Forward pass, keeping every layer's activations.
	acts := make([][]float64, len(n.layers)+1)
	zs := make([][]float64, len(n.layers))
	acts[0] = ex.Input
	for li := range n.layers {
		l := &n.layers[li]
		zs[li] = make([]float64, l.out)
		acts[li+1] = make([]float64, l.out)
		l.forward(acts[li], zs[li], acts[li+1])
	}

	// Output error: (a - y) * sigmoid'(z).
	last := len(n.layers) - 1
	delta := make([]float64, n.layers[last].out)
	for o, a := range acts[last+1] {
		delta[o] = (a - ex.Target[o]) * a * (1 - a)
	}

	for li := last; li >= 0; li-- {
		l := &n.layers[li]
		in := acts[li]
		for o := range l.out {
			g.biases[li][o] += delta[o]
			row := g.weights[li][o*l.in : (o+1)*l.in]
			for i := range row {
				row[i] += delta[o] * in[i]
			}
		}
		if li == 0 {
			break
		}

		prev := make([]float64, l.in)
		for i := range l.in {
			sum := 0.0
			for o := range l.out {
				sum += l.weights[o*l.in+i] * delta[o]
			}
			a := in[i]
			prev[i] = sum * a * (1 - a)
		}
		delta = prev
	}
}

// apply steps every parameter against its gradient.
func (n *Network) apply(g *gradient, rate float64) {
	for li := range n.layers {
		l := &n.layers[li]
		for i := range l.weights {
			l.weights[i] -= rate * g.weights[li][i]
		}
		for i := range l.biases {
			l.biases[i] -= rate * g.biases[li][i]
		}
	}
}
