package cpu

import (
	"fmt"
	"math"

	"github.com/strata-ml/strata/internal/tensor"
)

// elemPair checks that x and out share a shape and returns their backing
// slices. x and out may alias for in-place application.
func elemPair(op string, x, out *tensor.Buffer) ([]float64, []float64) {
	if !x.Shape().Equal(out.Shape()) {
		panic(fmt.Sprintf("cpu: %s: shape mismatch %v vs %v", op, x.Shape(), out.Shape()))
	}
	return x.Data(), out.Data()
}

// derivArgs checks the activation-derivative shapes and returns the backing
// slices of the cached output, the incoming delta, and the result.
func derivArgs(op string, output, outDelta, result *tensor.Buffer) ([]float64, []float64, []float64) {
	if !output.Shape().Equal(outDelta.Shape()) || !output.Shape().Equal(result.Shape()) {
		panic(fmt.Sprintf("cpu: %s: shape mismatch %v / %v / %v",
			op, output.Shape(), outDelta.Shape(), result.Shape()))
	}
	return output.Data(), outDelta.Data(), result.Data()
}

// Sigmoid computes out = 1 / (1 + exp(-x)) elementwise.
func (c *Backend) Sigmoid(x, out *tensor.Buffer) {
	xd, od := elemPair("sigmoid", x, out)
	for i, v := range xd {
		od[i] = 1 / (1 + math.Exp(-v))
	}
}

// SigmoidDeriv computes result = outDelta * y * (1 - y) from the cached
// activation output y. The input argument is unused and may be nil.
func (c *Backend) SigmoidDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("sigmoid deriv", output, outDelta, result)
	for i := range rd {
		rd[i] = dd[i] * yd[i] * (1 - yd[i])
	}
}

// Tanh computes out = tanh(x) elementwise.
func (c *Backend) Tanh(x, out *tensor.Buffer) {
	xd, od := elemPair("tanh", x, out)
	for i, v := range xd {
		od[i] = math.Tanh(v)
	}
}

// TanhDeriv computes result = outDelta * (1 - y²) from the cached activation
// output y. The input argument is unused and may be nil.
func (c *Backend) TanhDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("tanh deriv", output, outDelta, result)
	for i := range rd {
		rd[i] = dd[i] * (1 - yd[i]*yd[i])
	}
}

// Rel computes out = max(0, x) elementwise.
func (c *Backend) Rel(x, out *tensor.Buffer) {
	xd, od := elemPair("rel", x, out)
	for i, v := range xd {
		if v > 0 {
			od[i] = v
		} else {
			od[i] = 0
		}
	}
}

// RelDeriv passes outDelta through where the cached activation output is
// positive and zeroes it elsewhere. The input argument is unused and may be nil.
func (c *Backend) RelDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("rel deriv", output, outDelta, result)
	for i := range rd {
		if yd[i] > 0 {
			rd[i] = dd[i]
		} else {
			rd[i] = 0
		}
	}
}
