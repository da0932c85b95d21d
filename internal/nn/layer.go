package nn

// Layer is an ordered group of neurons that share the same predecessor.
//
// outputs mirrors every neuron's outputValue in one contiguous slice so the
// next layer can take dot products against it without copying.
type Layer struct {
	neurons []Neuron
	outputs []float64
	input   bool
}

func newInputLayer(width int) *Layer {
	return &Layer{
		neurons: make([]Neuron, width),
		outputs: make([]float64, width),
		input:   true,
	}
}

func newLayer(width, numInputs int) *Layer {
	l := &Layer{
		neurons: make([]Neuron, width),
		outputs: make([]float64, width),
	}
	// One backing array for all weights of the layer.
	backing := make([]float64, width*numInputs)
	for i := range l.neurons {
		l.neurons[i].weights = backing[i*numInputs : (i+1)*numInputs : (i+1)*numInputs]
	}
	return l
}

// Len returns the number of neurons.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Neuron returns the neuron at index i. It panics if i is out of range, like
// a slice index.
func (l *Layer) Neuron(i int) *Neuron {
	return &l.neurons[i]
}

// Outputs returns a copy of the layer's activations.
func (l *Layer) Outputs() []float64 {
	return append([]float64(nil), l.outputs...)
}

// IsInput reports whether this is the network's input layer.
func (l *Layer) IsInput() bool {
	return l.input
}

func (l *Layer) setOutput(i int, v float64) {
	l.neurons[i].outputValue = v
	l.outputs[i] = v
}
