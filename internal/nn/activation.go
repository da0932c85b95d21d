package nn

import "math"

// Sigmoid is the logistic function 1 / (1 + e^-x).
//
// No clamping is applied. For very negative x, math.Exp overflows to +Inf and
// the result is exactly 0; for very positive x the result rounds to exactly 1.
// The result is never NaN for finite or infinite x.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidDerivative returns the slope of the sigmoid expressed in terms of its
// output: y * (1 - y).
//
// y must already be a sigmoid output. Passing a pre-activation value gives a
// meaningless result.
func SigmoidDerivative(y float64) float64 {
	return y * (1.0 - y)
}
