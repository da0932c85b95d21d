// Copyright 2026 The nnpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/nnpp/nnpp/internal/nn"
)

// Network is a fully connected feedforward network of sigmoid neurons.
type Network = nn.Network

// Layer is an ordered group of neurons sharing the same predecessor layer.
type Layer = nn.Layer

// Neuron holds one bias, one weight per incoming connection, and the
// transient activation and gradient state.
type Neuron = nn.Neuron

// Construction

// Config holds construction-time settings for a Network.
type Config = nn.Config

// Option adjusts a Config.
type Option = nn.Option

// DefaultLearningRate is used when no learning rate is configured.
const DefaultLearningRate = nn.DefaultLearningRate

// New builds a network with one layer per entry of widths.
//
// Example:
//
//	net, err := nn.New([]int{2, 2, 1}, nn.WithLearningRate(0.5))
func New(widths []int, opts ...Option) (*Network, error) {
	return nn.New(widths, opts...)
}

// NewWithConfig builds a network from an explicit Config.
//
// Example:
//
//	net, err := nn.NewWithConfig([]int{4, 8, 3}, nn.Config{
//	    LearningRate: 0.2,
//	    Seed:         42,
//	    Init:         nn.InitXavier,
//	})
func NewWithConfig(widths []int, cfg Config) (*Network, error) {
	return nn.NewWithConfig(widths, cfg)
}

// DefaultConfig returns the configuration New starts from.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// WithLearningRate sets the step size used by BackPropagate.
func WithLearningRate(lr float64) Option {
	return nn.WithLearningRate(lr)
}

// WithSeed sets the seed for weight initialization.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}

// WithInit selects the weight/bias initializer.
func WithInit(kind Init) Option {
	return nn.WithInit(kind)
}

// Initialization

// Init selects how weights and biases are seeded.
type Init = nn.Init

// Initializers.
const (
	InitUniform = nn.InitUniform
	InitXavier  = nn.InitXavier
	InitZeros   = nn.InitZeros
)

// ParseInit maps an initializer name ("uniform", "xavier", "zeros") to its Init.
func ParseInit(name string) (Init, bool) {
	return nn.ParseInit(name)
}

// Activation and loss

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return nn.Sigmoid(x)
}

// SigmoidDerivative returns y * (1 - y) for a sigmoid output y.
func SigmoidDerivative(y float64) float64 {
	return nn.SigmoidDerivative(y)
}

// SquaredError returns Σ (targets[i] - outputs[i])².
func SquaredError(outputs, targets []float64) (float64, error) {
	return nn.SquaredError(outputs, targets)
}

// Errors

// ShapeError reports a vector whose length does not match its layer.
type ShapeError = nn.ShapeError

// Errors returned by Network operations.
var (
	ErrShapeMismatch       = nn.ErrShapeMismatch
	ErrEmptyTopology       = nn.ErrEmptyTopology
	ErrInvalidWidth        = nn.ErrInvalidWidth
	ErrStalePropagation    = nn.ErrStalePropagation
	ErrWeightIndex         = nn.ErrWeightIndex
	ErrInvalidLearningRate = nn.ErrInvalidLearningRate
)
