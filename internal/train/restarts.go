package train

import (
	"context"
	"errors"
	"fmt"

	"github.com/nnpp/nnpp/internal/nn"
	"github.com/nnpp/nnpp/internal/parallel"
)

// Restarts trains n networks of the same topology from seeds netCfg.Seed,
// netCfg.Seed+1, ... and returns the one with the lowest final loss.
//
// Small sigmoid networks can get stuck in flat regions depending on their
// initial weights; independent restarts sidestep that. Each network is built,
// trained and evaluated by a single goroutine, so no Network is ever shared.
// The shuffle seed of restart i is cfg.Seed+i.
func Restarts(
	ctx context.Context,
	widths []int,
	netCfg nn.Config,
	cfg Config,
	data Dataset,
	n int,
	par parallel.Config,
) (*nn.Network, Result, error) {
	if n <= 0 {
		n = 1
	}

	nets := make([]*nn.Network, n)
	results := make([]Result, n)
	errs := make([]error, n)

	parallel.For(n, func(i int) {
		c := netCfg
		c.Seed = netCfg.Seed + uint64(i)
		net, err := nn.NewWithConfig(widths, c)
		if err != nil {
			errs[i] = err
			return
		}

		tc := cfg
		tc.Seed = cfg.Seed + uint64(i)
		if tc.Logger != nil {
			tc.Logger = tc.Logger.With("restart", i)
		}
		res, err := NewTrainer(tc).Fit(ctx, net, data)
		if err != nil {
			errs[i] = fmt.Errorf("restart %d: %w", i, err)
			return
		}
		nets[i] = net
		results[i] = res
	}, par)

	if err := errors.Join(errs...); err != nil {
		return nil, Result{}, err
	}

	best := 0
	for i := 1; i < n; i++ {
		if results[i].Loss < results[best].Loss {
			best = i
		}
	}
	return nets[best], results[best], nil
}
