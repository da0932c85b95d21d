package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Init selects how weights and biases are seeded at construction.
type Init int

const (
	// InitUniform draws weights and biases from U(-1, 1).
	InitUniform Init = iota

	// InitXavier draws weights from the Xavier (Glorot) uniform distribution
	// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))) and zeroes
	// biases.
	InitXavier

	// InitZeros sets every weight and bias to zero.
	InitZeros
)

// String returns the initializer name used by the CLI flags.
func (i Init) String() string {
	switch i {
	case InitUniform:
		return "uniform"
	case InitXavier:
		return "xavier"
	case InitZeros:
		return "zeros"
	default:
		return "unknown"
	}
}

// ParseInit maps a name produced by Init.String back to its Init.
func ParseInit(name string) (Init, bool) {
	for _, i := range []Init{InitUniform, InitXavier, InitZeros} {
		if i.String() == name {
			return i, true
		}
	}
	return InitUniform, false
}

// initializer fills weights and biases for one layer at a time. All layers
// of a network share one random source so that the whole network is a pure
// function of its widths and seed.
type initializer struct {
	kind Init
	src  rand.Source
}

func newInitializer(kind Init, seed uint64) *initializer {
	return &initializer{kind: kind, src: rand.NewSource(seed)}
}

// fill seeds one computing layer. fanIn is the previous layer's width and
// fanOut is this layer's width.
func (in *initializer) fill(l *Layer, fanIn, fanOut int) {
	switch in.kind {
	case InitZeros:
		for i := range l.neurons {
			n := &l.neurons[i]
			clear(n.weights)
			n.bias = 0
		}

	case InitXavier:
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		dist := distuv.Uniform{Min: -bound, Max: bound, Src: in.src}
		for i := range l.neurons {
			n := &l.neurons[i]
			for w := range n.weights {
				n.weights[w] = dist.Rand()
			}
			n.bias = 0
		}

	default:
		dist := distuv.Uniform{Min: -1, Max: 1, Src: in.src}
		for i := range l.neurons {
			n := &l.neurons[i]
			for w := range n.weights {
				n.weights[w] = dist.Rand()
			}
			n.bias = dist.Rand()
		}
	}
}
