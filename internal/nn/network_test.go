package nn

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopology(t *testing.T) {
	cases := [][]int{
		{1},
		{1, 1},
		{2, 2, 1},
		{3, 5, 2},
		{4, 1, 6, 3},
	}
	for _, widths := range cases {
		net, err := New(widths)
		require.NoError(t, err)
		require.Equal(t, len(widths), net.NumLayers())
		assert.Equal(t, widths, net.Widths())

		for i, w := range widths {
			layer := net.Layer(i)
			require.Equal(t, w, layer.Len(), "layer %d width", i)
			assert.Equal(t, i == 0, layer.IsInput())
			for j := 0; j < layer.Len(); j++ {
				n := layer.Neuron(j)
				if i == 0 {
					assert.Equal(t, 0, n.NumWeights(), "input neuron %d has weights", j)
					continue
				}
				assert.Equal(t, widths[i-1], n.NumWeights(), "layer %d neuron %d", i, j)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyTopology)

	_, err = New([]int{})
	assert.ErrorIs(t, err, ErrEmptyTopology)

	_, err = New([]int{2, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = New([]int{-3})
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = New([]int{2, 1}, WithLearningRate(-0.5))
	assert.ErrorIs(t, err, ErrInvalidLearningRate)

	_, err = New([]int{2, 1}, WithLearningRate(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidLearningRate)
}

func TestNewDefaults(t *testing.T) {
	net, err := New([]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultLearningRate, net.LearningRate())

	net, err = NewWithConfig([]int{2, 1}, Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLearningRate, net.LearningRate())

	net, err = New([]int{2, 1}, WithLearningRate(0.7))
	require.NoError(t, err)
	assert.Equal(t, 0.7, net.LearningRate())
}

func TestNewSeedIsDeterministic(t *testing.T) {
	a, err := New([]int{3, 4, 2}, WithSeed(42))
	require.NoError(t, err)
	b, err := New([]int{3, 4, 2}, WithSeed(42))
	require.NoError(t, err)
	c, err := New([]int{3, 4, 2}, WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, flattenParams(a), flattenParams(b))
	assert.NotEqual(t, flattenParams(a), flattenParams(c))
}

// Scenario: [2,2,1] fed with [0,0] has a single output inside (0,1).
func TestFeedForwardSmallNetwork(t *testing.T) {
	net, err := New([]int{2, 2, 1}, WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, net.FeedForward([]float64{0, 0}))

	out := net.Outputs()
	require.Len(t, out, 1)
	assert.Greater(t, out[0], 0.0)
	assert.Less(t, out[0], 1.0)
}

// Scenario: [1,1] with zero weight and bias gives input 0 and output 0.5.
func TestFeedForwardZeroWeights(t *testing.T) {
	net, err := New([]int{1, 1})
	require.NoError(t, err)

	n := net.Layer(1).Neuron(0)
	require.NoError(t, n.SetWeight(0, 0))
	n.SetBias(0)

	require.NoError(t, net.FeedForward([]float64{5.0}))

	assert.Equal(t, 5.0, net.Layer(0).Neuron(0).OutputValue())
	assert.Equal(t, 0.0, n.InputValue())
	assert.Equal(t, 0.5, n.OutputValue())
	assert.Equal(t, []float64{0.5}, net.Outputs())
}

func TestFeedForwardWeightedSum(t *testing.T) {
	net, err := New([]int{2, 1})
	require.NoError(t, err)

	n := net.Layer(1).Neuron(0)
	require.NoError(t, n.SetWeight(0, 0.5))
	require.NoError(t, n.SetWeight(1, -0.25))
	n.SetBias(0.1)

	require.NoError(t, net.FeedForward([]float64{2, 4}))

	// 0.5*2 - 0.25*4 + 0.1 = 0.1
	assert.InDelta(t, 0.1, n.InputValue(), 1e-12)
	assert.InDelta(t, Sigmoid(0.1), n.OutputValue(), 1e-12)
}

func TestFeedForwardIsDeterministic(t *testing.T) {
	net, err := New([]int{3, 4, 4, 2}, WithSeed(9))
	require.NoError(t, err)

	input := []float64{0.3, -1.2, 2.5}
	require.NoError(t, net.FeedForward(input))
	first := net.Outputs()

	for i := 0; i < 5; i++ {
		require.NoError(t, net.FeedForward(input))
		assert.Equal(t, first, net.Outputs())
	}
}

func TestOutputsInUnitInterval(t *testing.T) {
	net, err := New([]int{4, 6, 3}, WithSeed(5))
	require.NoError(t, err)

	inputs := [][]float64{
		{0, 0, 0, 0},
		{1, -1, 1, -1},
		{3.5, 2, -7, 0.25},
	}
	for _, in := range inputs {
		require.NoError(t, net.FeedForward(in))
		for i, y := range net.Outputs() {
			assert.Greater(t, y, 0.0, "output %d for %v", i, in)
			assert.Less(t, y, 1.0, "output %d for %v", i, in)
		}
	}
}

func TestOutputsIdempotent(t *testing.T) {
	net, err := New([]int{2, 3, 2}, WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, net.FeedForward([]float64{0.5, 0.25}))

	a := net.Outputs()
	b := net.Outputs()
	assert.Equal(t, a, b)

	// The returned slice is a copy.
	a[0] = 42
	assert.Equal(t, b, net.Outputs())
}

func TestOutputsBeforeFeedForward(t *testing.T) {
	net, err := New([]int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, net.Outputs())
}

func TestSingleLayerNetwork(t *testing.T) {
	net, err := New([]int{3})
	require.NoError(t, err)

	require.NoError(t, net.FeedForward([]float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2, 3}, net.Outputs())

	require.NoError(t, net.BackPropagate([]float64{0, 0, 0}))
	assert.Equal(t, []float64{1, 2, 3}, net.Outputs())
}

func TestFeedForwardShapeMismatch(t *testing.T) {
	net, err := New([]int{2, 2, 1}, WithSeed(1))
	require.NoError(t, err)

	err = net.FeedForward([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "FeedForward", shapeErr.Op)
	assert.Equal(t, 2, shapeErr.Expected)
	assert.Equal(t, 3, shapeErr.Got)

	// A rejected input leaves the network unfed.
	assert.ErrorIs(t, net.BackPropagate([]float64{1}), ErrStalePropagation)
}

func TestBackPropagateShapeMismatch(t *testing.T) {
	net, err := New([]int{2, 2, 1}, WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, net.FeedForward([]float64{1, 0}))
	before := flattenParams(net)

	err = net.BackPropagate([]float64{1, 0})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "BackPropagate", shapeErr.Op)
	assert.Equal(t, 1, shapeErr.Expected)
	assert.Equal(t, 2, shapeErr.Got)

	assert.Equal(t, before, flattenParams(net))

	// The forward state survives the rejected call.
	assert.NoError(t, net.BackPropagate([]float64{1}))
}

func TestBackPropagateRequiresFeedForward(t *testing.T) {
	net, err := New([]int{2, 2, 1}, WithSeed(1))
	require.NoError(t, err)

	assert.ErrorIs(t, net.BackPropagate([]float64{1}), ErrStalePropagation)

	require.NoError(t, net.FeedForward([]float64{1, 1}))
	require.NoError(t, net.BackPropagate([]float64{0}))

	// Weights moved, so the cached activations are stale again.
	before := flattenParams(net)
	assert.ErrorIs(t, net.BackPropagate([]float64{0}), ErrStalePropagation)
	assert.Equal(t, before, flattenParams(net))
}

func TestBackPropagateOutputGradient(t *testing.T) {
	net, err := New([]int{1, 1}, WithLearningRate(0.5))
	require.NoError(t, err)

	n := net.Layer(1).Neuron(0)
	require.NoError(t, n.SetWeight(0, 0))
	n.SetBias(0)

	require.NoError(t, net.FeedForward([]float64{2}))
	require.NoError(t, net.BackPropagate([]float64{1}))

	// y = 0.5, gradient = (1 - 0.5) * 0.5 * 0.5 = 0.125
	assert.InDelta(t, 0.125, n.Gradient(), 1e-12)
	// weight += 0.5 * 0.125 * 2, bias += 0.5 * 0.125
	w, err := n.Weight(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, w, 1e-12)
	assert.InDelta(t, 0.0625, n.Bias(), 1e-12)
}

func TestBackPropagateLeavesInputLayer(t *testing.T) {
	net, err := New([]int{2, 3, 1}, WithSeed(11))
	require.NoError(t, err)
	require.NoError(t, net.FeedForward([]float64{0.2, 0.8}))
	require.NoError(t, net.BackPropagate([]float64{1}))

	in := net.Layer(0)
	for i := 0; i < in.Len(); i++ {
		n := in.Neuron(i)
		assert.Equal(t, 0.0, n.Gradient())
		assert.Equal(t, 0.0, n.Bias())
		assert.Equal(t, 0, n.NumWeights())
	}
	assert.Equal(t, []float64{0.2, 0.8}, in.Outputs())
}

func TestBackPropagateDecreasesError(t *testing.T) {
	topologies := [][]int{
		{2, 2, 1},
		{3, 5, 2},
		{4, 3, 3, 2},
		{1, 1},
	}
	for seed, widths := range topologies {
		net, err := New(widths, WithSeed(uint64(seed)+100), WithLearningRate(0.1))
		require.NoError(t, err)

		input := make([]float64, widths[0])
		for i := range input {
			input[i] = 0.3*float64(i) - 0.4
		}
		target := make([]float64, widths[len(widths)-1])
		for i := range target {
			target[i] = float64((i + 1) % 2)
		}

		require.NoError(t, net.FeedForward(input))
		before, err := SquaredError(net.Outputs(), target)
		require.NoError(t, err)

		require.NoError(t, net.BackPropagate(target))
		require.NoError(t, net.FeedForward(input))
		after, err := SquaredError(net.Outputs(), target)
		require.NoError(t, err)

		assert.Less(t, after, before, "widths %v", widths)
	}
}

func TestNeuronWeightIndex(t *testing.T) {
	net, err := New([]int{2, 1})
	require.NoError(t, err)

	n := net.Layer(1).Neuron(0)
	_, err = n.Weight(2)
	assert.ErrorIs(t, err, ErrWeightIndex)
	assert.ErrorIs(t, n.SetWeight(-1, 1), ErrWeightIndex)

	// Input neurons have nothing to set.
	assert.ErrorIs(t, net.Layer(0).Neuron(0).SetWeight(0, 1), ErrWeightIndex)

	// Weights returns a copy.
	ws := n.Weights()
	ws[0] = 99
	w, err := n.Weight(0)
	require.NoError(t, err)
	assert.NotEqual(t, 99.0, w)
}

func TestNeuronWeightsDoNotAlias(t *testing.T) {
	net, err := New([]int{3, 2}, WithInit(InitZeros))
	require.NoError(t, err)

	layer := net.Layer(1)
	require.NoError(t, layer.Neuron(0).SetWeight(2, 1))
	assert.Equal(t, []float64{0, 0, 1}, layer.Neuron(0).Weights())
	assert.Equal(t, []float64{0, 0, 0}, layer.Neuron(1).Weights())
}

func TestPrint(t *testing.T) {
	net, err := New([]int{1, 1})
	require.NoError(t, err)
	n := net.Layer(1).Neuron(0)
	require.NoError(t, n.SetWeight(0, 0))
	n.SetBias(0)
	require.NoError(t, net.FeedForward([]float64{5}))

	var sb strings.Builder
	require.NoError(t, net.Print(&sb))

	want := "Layer: 0\n" +
		"\tNeuron: 0, inputValue: 0.000000, outputValue: 5.000000, bias: 0.000000, gradient: 0.000000\n" +
		"Layer: 1\n" +
		"\tNeuron: 0, inputValue: 0.000000, outputValue: 0.500000, bias: 0.000000, gradient: 0.000000\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, want, net.String())

	// Printing is a pure read.
	assert.Equal(t, []float64{0.5}, net.Outputs())
}

func TestSquaredError(t *testing.T) {
	got, err := SquaredError([]float64{0.5, 1}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, got, 1e-12)

	got, err = SquaredError([]float64{0.3}, []float64{0.3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = SquaredError([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// flattenParams returns every weight and bias of the non-input layers in
// layer, neuron, weight order with each neuron's bias after its weights.
func flattenParams(net *Network) []float64 {
	var p []float64
	for _, l := range net.layers[1:] {
		for i := range l.neurons {
			p = append(p, l.neurons[i].weights...)
			p = append(p, l.neurons[i].bias)
		}
	}
	return p
}

// setParams is the inverse of flattenParams.
func setParams(net *Network, p []float64) {
	k := 0
	for _, l := range net.layers[1:] {
		for i := range l.neurons {
			n := &l.neurons[i]
			k += copy(n.weights, p[k:])
			n.bias = p[k]
			k++
		}
	}
}
