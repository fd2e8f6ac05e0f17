// Package cpu implements the host-CPU handler with BLAS-backed matrix kernels.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/strata-ml/strata/internal/tensor"
)

// Backend implements tensor.Handler on the host CPU. Matrix products go
// through gonum's float64 BLAS; elementwise kernels and reductions are plain
// loops over the backing slices.
type Backend struct{}

// New creates a new CPU handler.
func New() *Backend {
	return &Backend{}
}

// Name returns the handler name.
func (c *Backend) Name() string {
	return "CPU"
}

// general views a 2D buffer as a row-major blas64.General without copying.
func general(b *tensor.Buffer) blas64.General {
	s := b.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("cpu: expected 2D buffer, got shape %v", s))
	}
	return blas64.General{Rows: s[0], Cols: s[1], Stride: s[1], Data: b.Data()}
}

// Dot computes out = a·b, overwriting out.
func (c *Backend) Dot(a, b, out *tensor.Buffer) {
	gemm(a, b, out, 0)
}

// DotAdd accumulates out += a·b.
func (c *Backend) DotAdd(a, b, out *tensor.Buffer) {
	gemm(a, b, out, 1)
}

func gemm(a, b, out *tensor.Buffer, beta float64) {
	ga, gb, gout := general(a), general(b), general(out)
	if ga.Cols != gb.Rows || gout.Rows != ga.Rows || gout.Cols != gb.Cols {
		panic(fmt.Sprintf("cpu: matmul shape mismatch [%d,%d] @ [%d,%d] -> [%d,%d]",
			ga.Rows, ga.Cols, gb.Rows, gb.Cols, gout.Rows, gout.Cols))
	}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, beta, gout)
}

// AddMV broadcast-adds the vector v to every row of the matrix m.
func (c *Backend) AddMV(m, v, out *tensor.Buffer) {
	s := m.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("cpu: addmv: expected 2D matrix, got shape %v", s))
	}
	if len(v.Shape()) != 1 || v.Shape()[0] != s[1] {
		panic(fmt.Sprintf("cpu: addmv: vector shape %v does not match matrix columns %d", v.Shape(), s[1]))
	}
	if !out.Shape().Equal(s) {
		panic(fmt.Sprintf("cpu: addmv: output shape %v does not match matrix shape %v", out.Shape(), s))
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
func (c *Backend) Transpose(x *tensor.Buffer) *tensor.Buffer {
	s := x.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("cpu: transpose: expected 2D buffer, got shape %v", s))
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
func (c *Backend) Reshape(x *tensor.Buffer, shape tensor.Shape) *tensor.Buffer {
	view, err := x.Reshape(shape)
	if err != nil {
		panic(fmt.Sprintf("cpu: reshape: %v", err))
	}
	return view
}

// Zeros allocates a zero-filled buffer.
func (c *Backend) Zeros(shape tensor.Shape) *tensor.Buffer {
	return tensor.Zeros(shape)
}

// Sum reduces a 2D buffer along the given axis into out, overwriting it.
// Axis 0 yields column sums, axis 1 row sums.
func (c *Backend) Sum(x *tensor.Buffer, axis int, out *tensor.Buffer) {
	s := x.Shape()
	if len(s) != 2 {
		panic(fmt.Sprintf("cpu: sum: expected 2D buffer, got shape %v", s))
	}
	rows, cols := s[0], s[1]
	xd, od := x.Data(), out.Data()

	switch axis {
	case 0:
		if out.NumElements() != cols {
			panic(fmt.Sprintf("cpu: sum: output has %d elements, want %d", out.NumElements(), cols))
		}
		for j := range od {
			od[j] = 0
		}
		for i := 0; i < rows; i++ {
			row := xd[i*cols : (i+1)*cols]
			for j, v := range row {
				od[j] += v
			}
		}
	case 1:
		if out.NumElements() != rows {
			panic(fmt.Sprintf("cpu: sum: output has %d elements, want %d", out.NumElements(), rows))
		}
		for i := 0; i < rows; i++ {
			total := 0.0
			for _, v := range xd[i*cols : (i+1)*cols] {
				total += v
			}
			od[i] = total
		}
	default:
		panic(fmt.Sprintf("cpu: sum: axis %d out of range for 2D buffer", axis))
	}
}
