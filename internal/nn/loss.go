package nn

import "gonum.org/v1/gonum/floats"

// SquaredError returns the sum of squared differences between outputs and
// targets: Σ (targets[i] - outputs[i])².
//
// This is the quantity BackPropagate descends on (up to a factor of 1/2).
func SquaredError(outputs, targets []float64) (float64, error) {
	if err := checkShape("SquaredError", len(targets), len(outputs)); err != nil {
		return 0, err
	}
	d := floats.Distance(outputs, targets, 2)
	return d * d, nil
}
