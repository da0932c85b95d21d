// Package main provides the nnpp CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/nnpp/nnpp/internal/dataset"
	"github.com/nnpp/nnpp/internal/nn"
	"github.com/nnpp/nnpp/internal/parallel"
	"github.com/nnpp/nnpp/internal/train"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "nnpp: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "nnpp %s\n", version)
		return nil
	case "xor":
		return runXOR(ctx, args[1:], stdout, stderr)
	case "train":
		return runTrain(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "nnpp - feedforward sigmoid network")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  xor        Train a [2,2,1] network on XOR")
	fmt.Fprintln(w, "  train      Train a network on a CSV dataset")
}

// commonFlags are shared by every training command.
type commonFlags struct {
	epochs    int
	lr        float64
	seed      uint64
	init      string
	tolerance float64
	restarts  int
	shuffle   bool
	logEvery  int
	print     bool
	verbose   bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.epochs, "epochs", 20000, "maximum training epochs")
	fs.Float64Var(&c.lr, "lr", 0.5, "learning rate")
	fs.Uint64Var(&c.seed, "seed", 1, "initialization seed")
	fs.StringVar(&c.init, "init", nn.InitUniform.String(), "weight initializer: uniform, xavier or zeros")
	fs.Float64Var(&c.tolerance, "tolerance", 0.001, "stop once the mean squared error is at or below this")
	fs.IntVar(&c.restarts, "restarts", 1, "independently seeded networks to train concurrently")
	fs.BoolVar(&c.shuffle, "shuffle", true, "shuffle samples every epoch")
	fs.IntVar(&c.logEvery, "log-every", 1000, "log progress every N epochs")
	fs.BoolVar(&c.print, "print", false, "dump every neuron after training")
	fs.BoolVar(&c.verbose, "v", false, "log training progress")
}

func (c *commonFlags) configs(stderr io.Writer) (nn.Config, train.Config, error) {
	kind, ok := nn.ParseInit(c.init)
	if !ok {
		return nn.Config{}, train.Config{}, fmt.Errorf("unknown initializer %q", c.init)
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	netCfg := nn.Config{LearningRate: c.lr, Seed: c.seed, Init: kind}
	trainCfg := train.Config{
		Epochs:    c.epochs,
		Tolerance: c.tolerance,
		Shuffle:   c.shuffle,
		Seed:      c.seed,
		LogEvery:  c.logEvery,
		Logger:    logger,
	}
	return netCfg, trainCfg, nil
}

func runXOR(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return fit(ctx, []int{2, 2, 1}, dataset.XOR(), &common, stdout, stderr)
}

func runTrain(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	dataPath := fs.String("data", "", "CSV file: input columns followed by target columns")
	layers := fs.String("layers", "", "comma separated layer widths, input first (e.g. 2,3,1)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dataPath == "" {
		return errors.New("train: -data is required")
	}
	widths, err := parseWidths(*layers)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	data, err := dataset.LoadCSVFile(*dataPath, widths[0])
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	return fit(ctx, widths, data, &common, stdout, stderr)
}

func fit(ctx context.Context, widths []int, data train.Dataset, common *commonFlags, stdout, stderr io.Writer) error {
	netCfg, trainCfg, err := common.configs(stderr)
	if err != nil {
		return err
	}

	net, res, err := train.Restarts(ctx, widths, netCfg, trainCfg, data, common.restarts, parallel.CoarseConfig())
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "epochs: %d, loss: %.6f, converged: %t\n", res.Epochs, res.Loss, res.Converged)
	for _, s := range data {
		out, err := train.Predict(net, s.Inputs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%v -> %s (target %v)\n", s.Inputs, formatVector(out), s.Targets)
	}

	if common.print {
		return net.Print(stdout)
	}
	return nil
}

func parseWidths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("-layers is required")
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if w <= 0 {
			return nil, fmt.Errorf("layer %d has width %d: %w", i, w, nn.ErrInvalidWidth)
		}
		widths[i] = w
	}
	return widths, nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
