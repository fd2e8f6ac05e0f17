// Copyright 2026 The Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gorgonia provides a handler backed by gorgonia.org/tensor.
//
// Matrix products and reductions run through gorgonia's dense float64
// kernels, operating on zero-copy views of the caller's buffers; elementwise
// activations are plain loops. The backend exists to exercise handler
// pluggability: a layer bound to it computes the same results as one bound
// to the CPU handler.
package gorgonia

import (
	internalgorgonia "github.com/strata-ml/strata/internal/backend/gorgonia"
	"github.com/strata-ml/strata/tensor"
)

// Backend is the gorgonia-backed handler implementation.
type Backend = internalgorgonia.Backend

// Compile-time check that Backend implements tensor.Handler.
var _ tensor.Handler = (*Backend)(nil)

// New creates a new gorgonia-backed handler.
func New() *Backend {
	return internalgorgonia.New()
}
