// Package gorgonia implements the handler contract on top of
// gorgonia.org/tensor dense kernels.
package gorgonia

import (
	"fmt"
	"math"

	gt "gorgonia.org/tensor"

	"github.com/strata-ml/strata/internal/tensor"
)

// Backend implements tensor.Handler using gorgonia's dense float64 kernels
// for matrix products and reductions. Elementwise activations stay as plain
// loops; gorgonia carries no sigmoid/tanh primitives at the tensor level.
type Backend struct{}

// New creates a new gorgonia-backed handler.
func New() *Backend {
	return &Backend{}
}

// Name returns the handler name.
func (g *Backend) Name() string {
	return "Gorgonia"
}

// dense wraps a buffer as a gorgonia Dense without copying. Kernel writes
// into the Dense land directly in the buffer's backing slice.
func dense(b *tensor.Buffer) *gt.Dense {
	return gt.New(gt.WithShape(b.Shape()...), gt.WithBacking(b.Data()))
}

// Dot computes out = a·b, overwriting out.
func (g *Backend) Dot(a, b, out *tensor.Buffer) {
	if _, err := gt.MatMul(dense(a), dense(b), gt.WithReuse(dense(out))); err != nil {
		panic(fmt.Sprintf("gorgonia: matmul %v @ %v: %v", a.Shape(), b.Shape(), err))
	}
}

// DotAdd accumulates out += a·b.
func (g *Backend) DotAdd(a, b, out *tensor.Buffer) {
	if _, err := gt.MatMul(dense(a), dense(b), gt.WithIncr(dense(out))); err != nil {
		panic(fmt.Sprintf("gorgonia: matmul incr %v @ %v: %v", a.Shape(), b.Shape(), err))
	}
}

// Sum reduces a 2D buffer along the given axis into out, overwriting it.
func (g *Backend) Sum(x *tensor.Buffer, axis int, out *tensor.Buffer) {
	res, err := gt.Sum(dense(x), axis)
	if err != nil {
		panic(fmt.Sprintf("gorgonia: sum %v along %d: %v", x.Shape(), axis, err))
	}
	data, ok := res.Data().([]float64)
	if !ok {
		panic(fmt.Sprintf("gorgonia: sum: unexpected result type %T", res.Data()))
	}
	od := out.Data()
	if len(data) != len(od) {
		panic(fmt.Sprintf("gorgonia: sum: output has %d elements, want %d", len(od), len(data)))
	}
	copy(od, data)
}

// AddMV broadcast-adds the vector v to every row of the matrix m.
func (g *Backend) AddMV(m, v, out *tensor.Buffer) {
	s := m.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("gorgonia: addmv: expected 2D matrix, got shape %v", s))
	}
	if len(v.Shape()) != 1 || v.Shape()[0] != s[1] {
		panic(fmt.Sprintf("gorgonia: addmv: vector shape %v does not match matrix columns %d", v.Shape(), s[1]))
	}
	if !out.Shape().Equal(s) {
		panic(fmt.Sprintf("gorgonia: addmv: output shape %v does not match matrix shape %v", out.Shape(), s))
	}

	rows, cols := s[0], s[1]
	md, vd, od := m.Data(), v.Data(), out.Data()
	for i := 0; i < rows; i++ {
		row := md[i*cols : (i+1)*cols]
		outRow := od[i*cols : (i+1)*cols]
		for j, x := range row {
			outRow[j] = x + vd[j]
		}
	}
}

// Transpose returns the materialized transpose of a 2D buffer.
func (g *Backend) Transpose(x *tensor.Buffer) *tensor.Buffer {
	s := x.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("gorgonia: transpose: expected 2D buffer, got shape %v", s))
	}
	rows, cols := s[0], s[1]
	out := tensor.Zeros(tensor.Shape{cols, rows})
	xd, od := x.Data(), out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			od[j*rows+i] = xd[i*cols+j]
		}
	}
	return out
}

// Reshape returns a zero-copy view of x with a new shape.
func (g *Backend) Reshape(x *tensor.Buffer, shape tensor.Shape) *tensor.Buffer {
	view, err := x.Reshape(shape)
	if err != nil {
		panic(fmt.Sprintf("gorgonia: reshape: %v", err))
	}
	return view
}

// Zeros allocates a zero-filled buffer.
func (g *Backend) Zeros(shape tensor.Shape) *tensor.Buffer {
	return tensor.Zeros(shape)
}

func elemPair(op string, x, out *tensor.Buffer) ([]float64, []float64) {
	if !x.Shape().Equal(out.Shape()) {
		panic(fmt.Sprintf("gorgonia: %s: shape mismatch %v vs %v", op, x.Shape(), out.Shape()))
	}
	return x.Data(), out.Data()
}

func derivArgs(op string, output, outDelta, result *tensor.Buffer) ([]float64, []float64, []float64) {
	if !output.Shape().Equal(outDelta.Shape()) || !output.Shape().Equal(result.Shape()) {
		panic(fmt.Sprintf("gorgonia: %s: shape mismatch %v / %v / %v",
			op, output.Shape(), outDelta.Shape(), result.Shape()))
	}
	return output.Data(), outDelta.Data(), result.Data()
}

// Sigmoid computes out = 1 / (1 + exp(-x)) elementwise.
func (g *Backend) Sigmoid(x, out *tensor.Buffer) {
	xd, od := elemPair("sigmoid", x, out)
	for i, v := range xd {
		od[i] = 1 / (1 + math.Exp(-v))
	}
}

// SigmoidDeriv computes result = outDelta * y * (1 - y) from the cached
// activation output y.
func (g *Backend) SigmoidDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("sigmoid deriv", output, outDelta, result)
	for i := range rd {
		rd[i] = dd[i] * yd[i] * (1 - yd[i])
	}
}

// Tanh computes out = tanh(x) elementwise.
func (g *Backend) Tanh(x, out *tensor.Buffer) {
	xd, od := elemPair("tanh", x, out)
	for i, v := range xd {
		od[i] = math.Tanh(v)
	}
}

// TanhDeriv computes result = outDelta * (1 - y²) from the cached activation
// output y.
func (g *Backend) TanhDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("tanh deriv", output, outDelta, result)
	for i := range rd {
		rd[i] = dd[i] * (1 - yd[i]*yd[i])
	}
}

// Rel computes out = max(0, x) elementwise.
func (g *Backend) Rel(x, out *tensor.Buffer) {
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
// positive and zeroes it elsewhere.
func (g *Backend) RelDeriv(_, output, outDelta, result *tensor.Buffer) {
	yd, dd, rd := derivArgs("rel deriv", output, outDelta, result)
	for i := range rd {
		if yd[i] > 0 {
			rd[i] = dd[i]
		} else {
			rd[i] = 0
		}
	}
}
