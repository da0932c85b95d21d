// Copyright 2026 The nnpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward network of sigmoid
// neurons trained by per-sample backpropagation.
//
// # Overview
//
// A Network is an ordered list of layers built from a list of widths.
// Layer 0 is the input layer; its neurons hold the input vector as their
// activations and carry no weights. Every later neuron has one weight per
// neuron of the previous layer, a bias, and caches the values of the most
// recent passes.
//
// # Basic Usage
//
//	net, err := nn.New([]int{2, 2, 1}, nn.WithLearningRate(0.5), nn.WithSeed(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One training step.
//	if err := net.FeedForward([]float64{0, 1}); err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.BackPropagate([]float64{1}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Inference.
//	_ = net.FeedForward([]float64{1, 1})
//	fmt.Println(net.Outputs())
//
// # Errors
//
// All operations return errors instead of panicking:
//
//	ErrEmptyTopology     - New called with no widths
//	ErrInvalidWidth      - a width is zero or negative
//	ErrShapeMismatch     - input/target length differs from the layer width
//	ErrStalePropagation  - BackPropagate without a FeedForward since the last update
//
// Shape errors are reported as *ShapeError, which unwraps to ErrShapeMismatch.
//
// # Diagnostics
//
// Print writes every neuron's input value, output value, bias and gradient:
//
//	net.Print(os.Stderr)
package nn
