package nn

import "math"

// DefaultLearningRate is used when Config.LearningRate is left at zero.
const DefaultLearningRate = 0.1

// Config holds construction-time settings for a Network.
type Config struct {
	LearningRate float64 // Step size for weight updates (default: 0.1)
	Seed         uint64  // Seed for the initializer's random source (default: 0)
	Init         Init    // Weight/bias initializer (default: InitUniform)
}

// DefaultConfig returns the configuration New starts from before options are
// applied.
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		Init:         InitUniform,
	}
}

func (c Config) validate() error {
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate < 0 {
		return ErrInvalidLearningRate
	}
	return nil
}

// Option adjusts a Config.
type Option func(*Config)

// WithLearningRate sets the step size used by BackPropagate.
func WithLearningRate(lr float64) Option {
	return func(c *Config) { c.LearningRate = lr }
}

// WithSeed sets the seed of the initializer's random source.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithInit selects the weight/bias initializer.
func WithInit(kind Init) Option {
	return func(c *Config) { c.Init = kind }
}
