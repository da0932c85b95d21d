// Package nn implements a fully connected feedforward network of sigmoid
// neurons with per-sample backpropagation.
package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Network is a fully connected feedforward network of sigmoid neurons.
//
// Layer 0 is the input layer: its activations are set directly from the
// input vector and it has no weights. Every later neuron has one weight per
// neuron of the previous layer.
//
// The topology is fixed at construction and no pass allocates. A Network is
// not safe for concurrent use.
//
// Example:
//
//	net, err := nn.New([]int{2, 2, 1}, nn.WithLearningRate(0.5), nn.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	if err := net.FeedForward([]float64{0, 1}); err != nil {
//	    return err
//	}
//	if err := net.BackPropagate([]float64{1}); err != nil {
//	    return err
//	}
//	out := net.Outputs()
type Network struct {
	layers       []*Layer
	learningRate float64

	// fed is true while the cached activations were produced by the current
	// weights.
	fed bool
}

// New builds a network with one layer per entry of widths, starting from
// DefaultConfig and applying opts in order.
func New(widths []int, opts ...Option) (*Network, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(widths, cfg)
}

// NewWithConfig builds a network with one layer per entry of widths.
//
// A zero LearningRate is replaced by DefaultLearningRate.
//
// Returns ErrEmptyTopology for an empty widths list and ErrInvalidWidth if
// any width is not positive.
func NewWithConfig(widths []int, cfg Config) (*Network, error) {
	if len(widths) == 0 {
		return nil, ErrEmptyTopology
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("layer %d has width %d: %w", i, w, ErrInvalidWidth)
		}
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	seeder := newInitializer(cfg.Init, cfg.Seed)
	layers := make([]*Layer, len(widths))
	layers[0] = newInputLayer(widths[0])
	for i := 1; i < len(widths); i++ {
		layers[i] = newLayer(widths[i], widths[i-1])
		seeder.fill(layers[i], widths[i-1], widths[i])
	}

	return &Network{
		layers:       layers,
		learningRate: cfg.LearningRate,
	}, nil
}

// NumLayers returns the number of layers, including the input layer.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns the layer at index i. It panics if i is out of range.
func (net *Network) Layer(i int) *Layer {
	return net.layers[i]
}

// Widths returns the neuron count of every layer, input first.
func (net *Network) Widths() []int {
	widths := make([]int, len(net.layers))
	for i, l := range net.layers {
		widths[i] = l.Len()
	}
	return widths
}

// LearningRate returns the step size used by BackPropagate.
func (net *Network) LearningRate() float64 {
	return net.learningRate
}

func (net *Network) inputLayer() *Layer {
	return net.layers[0]
}

func (net *Network) outputLayer() *Layer {
	return net.layers[len(net.layers)-1]
}

// FeedForward propagates inputs through the network.
//
// The input layer's activations are set to inputs as-is. Each later neuron
// stores its weighted sum of the previous layer's activations plus bias as
// its input value and the sigmoid of that as its output value.
//
// Returns a *ShapeError if len(inputs) differs from the input layer width;
// the network is left untouched in that case.
func (net *Network) FeedForward(inputs []float64) error {
	in := net.inputLayer()
	if err := checkShape("FeedForward", in.Len(), len(inputs)); err != nil {
		return err
	}

	for i, v := range inputs {
		in.setOutput(i, v)
	}

	for li := 1; li < len(net.layers); li++ {
		prev := net.layers[li-1]
		layer := net.layers[li]
		for i := range layer.neurons {
			n := &layer.neurons[i]
			n.inputValue = floats.Dot(n.weights, prev.outputs) + n.bias
			layer.setOutput(i, Sigmoid(n.inputValue))
		}
	}

	net.fed = true
	return nil
}

// BackPropagate performs one gradient step towards targets using the
// activations of the most recent FeedForward.
//
// Gradients are computed from the output layer back to the first hidden
// layer, then weights and biases of every non-input layer are moved by
// learningRate * gradient * (previous activation). This minimizes the
// squared error between targets and outputs.
//
// Returns a *ShapeError if len(targets) differs from the output layer width
// and ErrStalePropagation if no FeedForward happened since construction or
// since the previous BackPropagate. The network is untouched on error.
func (net *Network) BackPropagate(targets []float64) error {
	out := net.outputLayer()
	if err := checkShape("BackPropagate", out.Len(), len(targets)); err != nil {
		return err
	}
	if !net.fed {
		return ErrStalePropagation
	}
	if len(net.layers) == 1 {
		return nil
	}

	for i := range out.neurons {
		n := &out.neurons[i]
		delta := targets[i] - n.outputValue
		n.gradient = delta * SigmoidDerivative(n.outputValue)
	}

	// Weight j of every next-layer neuron connects back to hidden neuron j.
	for li := len(net.layers) - 2; li > 0; li-- {
		hidden := net.layers[li]
		next := net.layers[li+1]
		for j := range hidden.neurons {
			var sum float64
			for k := range next.neurons {
				sum += next.neurons[k].weights[j] * next.neurons[k].gradient
			}
			h := &hidden.neurons[j]
			h.gradient = sum * SigmoidDerivative(h.outputValue)
		}
	}

	for li := 1; li < len(net.layers); li++ {
		prev := net.layers[li-1]
		layer := net.layers[li]
		for i := range layer.neurons {
			n := &layer.neurons[i]
			step := net.learningRate * n.gradient
			floats.AddScaled(n.weights, step, prev.outputs)
			n.bias += step
		}
	}

	net.fed = false
	return nil
}

// Outputs returns a new slice holding the output layer's activations.
//
// Before the first FeedForward every value is zero.
func (net *Network) Outputs() []float64 {
	return net.outputLayer().Outputs()
}
