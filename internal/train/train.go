// Package train drives a Network through repeated per-sample gradient steps.
//
// The network itself knows nothing about datasets or epochs; this package is
// the training loop around its FeedForward/BackPropagate calls.
package train

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/nnpp/nnpp/internal/nn"
)

// ErrEmptyDataset is returned when there is nothing to train or evaluate on.
var ErrEmptyDataset = errors.New("dataset has no samples")

// Sample is one input vector with its expected output vector.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// Dataset is an ordered list of samples.
type Dataset []Sample

// Config holds configuration for a Trainer.
type Config struct {
	Epochs    int          // Maximum passes over the dataset (default: 10000)
	Tolerance float64      // Stop once the epoch loss is at or below this (default: 0, never)
	Shuffle   bool         // Visit samples in a new random order every epoch
	Seed      uint64       // Seed for the shuffle order
	LogEvery  int          // Log progress every LogEvery epochs (default: 1000)
	Logger    *slog.Logger // Progress logger (default: discards)
}

// Result summarizes a training run.
type Result struct {
	Epochs    int     // Epochs actually completed
	Loss      float64 // Mean squared error after the last epoch
	Converged bool    // Loss reached Tolerance before Epochs ran out
}

// Trainer runs per-sample gradient descent over a Dataset.
//
// Example:
//
//	net, _ := nn.New([]int{2, 2, 1}, nn.WithLearningRate(0.5))
//	trainer := train.NewTrainer(train.Config{Epochs: 5000, Tolerance: 0.01})
//	res, err := trainer.Fit(ctx, net, dataset.XOR())
type Trainer struct {
	cfg    Config
	logger *slog.Logger
	rng    *rand.Rand
}

// NewTrainer creates a Trainer, filling unset Config fields with defaults.
func NewTrainer(cfg Config) *Trainer {
	if cfg.Epochs <= 0 {
		cfg.Epochs = 10000
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1000
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Trainer{
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Config returns the configuration after defaults were applied.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Fit trains net on data until Epochs is reached, the loss drops to
// Tolerance, or ctx is cancelled. Cancellation is checked between epochs and
// the partial Result is returned together with the context error.
func (t *Trainer) Fit(ctx context.Context, net *nn.Network, data Dataset) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrEmptyDataset
	}

	order := make([]int, len(data))
	for i := range order {
		order[i] = i
	}

	var res Result
	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("training stopped after %d epochs: %w", res.Epochs, err)
		}

		if t.cfg.Shuffle {
			t.rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}

		for _, idx := range order {
			s := data[idx]
			if err := net.FeedForward(s.Inputs); err != nil {
				return res, fmt.Errorf("epoch %d sample %d: %w", epoch, idx, err)
			}
			if err := net.BackPropagate(s.Targets); err != nil {
				return res, fmt.Errorf("epoch %d sample %d: %w", epoch, idx, err)
			}
		}

		loss, err := Evaluate(net, data)
		if err != nil {
			return res, err
		}
		res.Epochs = epoch
		res.Loss = loss

		if epoch%t.cfg.LogEvery == 0 {
			t.logger.Info("epoch complete", "epoch", epoch, "loss", loss)
		}
		if loss <= t.cfg.Tolerance {
			res.Converged = true
			t.logger.Info("converged", "epoch", epoch, "loss", loss)
			break
		}
	}

	return res, nil
}

// Evaluate returns the mean squared error of net over data. Weights are not
// changed; the cached activations are left at the last sample.
func Evaluate(net *nn.Network, data Dataset) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}

	var total float64
	for i, s := range data {
		if err := net.FeedForward(s.Inputs); err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		e, err := nn.SquaredError(net.Outputs(), s.Targets)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += e
	}
	return total / float64(len(data)), nil
}

// Predict feeds inputs through net and returns the outputs.
func Predict(net *nn.Network, inputs []float64) ([]float64, error) {
	if err := net.FeedForward(inputs); err != nil {
		return nil, err
	}
	return net.Outputs(), nil
}
