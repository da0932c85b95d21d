package nn

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a diagnostic dump of every neuron to w.
//
// Format:
//
//	Layer: 0
//		Neuron: 0, inputValue: 0.000000, outputValue: 1.000000, bias: 0.000000, gradient: 0.000000
//
// Printing never changes the network.
func (net *Network) Print(w io.Writer) error {
	for li, l := range net.layers {
		if _, err := fmt.Fprintf(w, "Layer: %d\n", li); err != nil {
			return err
		}
		for i := range l.neurons {
			n := &l.neurons[i]
			_, err := fmt.Fprintf(w, "\tNeuron: %d, inputValue: %f, outputValue: %f, bias: %f, gradient: %f\n",
				i, n.inputValue, n.outputValue, n.bias, n.gradient)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns the Print dump.
func (net *Network) String() string {
	var sb strings.Builder
	_ = net.Print(&sb) // strings.Builder never fails
	return sb.String()
}
