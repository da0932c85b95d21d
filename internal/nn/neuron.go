package nn

import "fmt"

// Neuron is a single sigmoid unit.
//
// It owns one weight per neuron of the previous layer, a bias, and the
// transient values of the most recent passes: the pre-activation sum
// (inputValue), the activation (outputValue), and the error gradient.
// Input-layer neurons have no weights; only their outputValue is used.
type Neuron struct {
	weights     []float64
	bias        float64
	inputValue  float64
	outputValue float64
	gradient    float64
}

// NumWeights returns the number of incoming weights.
func (n *Neuron) NumWeights() int {
	return len(n.weights)
}

// Weights returns a copy of the incoming weights.
func (n *Neuron) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// Weight returns the incoming weight at index i.
func (n *Neuron) Weight(i int) (float64, error) {
	if i < 0 || i >= len(n.weights) {
		return 0, fmt.Errorf("weight %d of %d: %w", i, len(n.weights), ErrWeightIndex)
	}
	return n.weights[i], nil
}

// SetWeight overwrites the incoming weight at index i.
func (n *Neuron) SetWeight(i int, v float64) error {
	if i < 0 || i >= len(n.weights) {
		return fmt.Errorf("weight %d of %d: %w", i, len(n.weights), ErrWeightIndex)
	}
	n.weights[i] = v
	return nil
}

// Bias returns the bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetBias overwrites the bias.
func (n *Neuron) SetBias(v float64) {
	n.bias = v
}

// InputValue returns the weighted sum plus bias from the last forward pass.
func (n *Neuron) InputValue() float64 {
	return n.inputValue
}

// OutputValue returns the activation from the last forward pass.
func (n *Neuron) OutputValue() float64 {
	return n.outputValue
}

// Gradient returns the error gradient from the last backward pass.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}
