// Copyright 2026 The Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public buffer and handler types of the Strata
// framework.
//
// The package defines the numeric surface shared by layers and backends:
//   - Buffer: dense float64 storage with zero-copy reshape views
//   - Shape: buffer dimensions
//   - Handler: the interface compute backends implement
//
// Buffers are caller-owned. A graph builder allocates one buffer per layer
// parameter, per gradient, and per inter-layer connection, and passes them
// into the layer passes; layers never allocate or retain numeric storage.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	flat, _ := x.Reshape(tensor.Shape{2, 3})  // view, shares storage with x
package tensor

import (
	"github.com/strata-ml/strata/internal/tensor"
)

// Shape represents the dimensions of a buffer.
// Example: Shape{2, 3, 4} represents a 3D buffer with dimensions 2×3×4.
type Shape = tensor.Shape

// Buffer is a dense float64 tensor over caller-owned storage.
type Buffer = tensor.Buffer

// Handler is the numeric backend interface layers are bound to.
// Implementations live in backend/cpu and backend/gorgonia.
type Handler = tensor.Handler

// NewBuffer allocates a zero-filled buffer with the given shape.
//
// Example:
//
//	w, err := tensor.NewBuffer(tensor.Shape{3, 4})
func NewBuffer(shape Shape) (*Buffer, error) {
	return tensor.NewBuffer(shape)
}

// Zeros allocates a zero-filled buffer and panics on an invalid shape.
func Zeros(shape Shape) *Buffer {
	return tensor.Zeros(shape)
}

// FromSlice wraps an existing slice as a buffer without copying.
//
// Example:
//
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Buffer, error) {
	return tensor.FromSlice(data, shape)
}
