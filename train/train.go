// Copyright 2026 The nnpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the training loop around an nn.Network.
//
// Example usage:
//
//	net, _ := nn.New([]int{2, 2, 1}, nn.WithLearningRate(0.5))
//	trainer := train.NewTrainer(train.Config{
//	    Epochs:    20000,
//	    Tolerance: 0.01,
//	    Shuffle:   true,
//	})
//	res, err := trainer.Fit(ctx, net, train.XOR())
package train

import (
	"context"
	"io"

	"github.com/nnpp/nnpp/internal/dataset"
	"github.com/nnpp/nnpp/internal/nn"
	"github.com/nnpp/nnpp/internal/parallel"
	"github.com/nnpp/nnpp/internal/train"
)

// Sample is one input vector with its expected output vector.
type Sample = train.Sample

// Dataset is an ordered list of samples.
type Dataset = train.Dataset

// Config holds configuration for a Trainer.
type Config = train.Config

// Result summarizes a training run.
type Result = train.Result

// Trainer runs per-sample gradient descent over a Dataset.
type Trainer = train.Trainer

// ErrEmptyDataset is returned when there is nothing to train or evaluate on.
var ErrEmptyDataset = train.ErrEmptyDataset

// NewTrainer creates a Trainer, filling unset Config fields with defaults.
func NewTrainer(cfg Config) *Trainer {
	return train.NewTrainer(cfg)
}

// Evaluate returns the mean squared error of net over data.
func Evaluate(net *nn.Network, data Dataset) (float64, error) {
	return train.Evaluate(net, data)
}

// Predict feeds inputs through net and returns the outputs.
func Predict(net *nn.Network, inputs []float64) ([]float64, error) {
	return train.Predict(net, inputs)
}

// Restarts trains n independently seeded networks concurrently and returns
// the one with the lowest loss.
//
// Example:
//
//	net, res, err := train.Restarts(ctx, []int{2, 2, 1},
//	    nn.Config{LearningRate: 0.8}, train.Config{Epochs: 20000}, train.XOR(), 8)
func Restarts(ctx context.Context, widths []int, netCfg nn.Config, cfg Config, data Dataset, n int) (*nn.Network, Result, error) {
	return train.Restarts(ctx, widths, netCfg, cfg, data, n, parallel.CoarseConfig())
}

// Datasets

// XOR returns the four exclusive-or pairs.
func XOR() Dataset {
	return dataset.XOR()
}

// LoadCSV reads samples whose first numInputs columns are inputs and whose
// remaining columns are targets.
func LoadCSV(r io.Reader, numInputs int) (Dataset, error) {
	return dataset.LoadCSV(r, numInputs)
}

// LoadCSVFile opens filename and reads it with LoadCSV.
func LoadCSVFile(filename string, numInputs int) (Dataset, error) {
	return dataset.LoadCSVFile(filename, numInputs)
}
