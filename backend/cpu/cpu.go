// Copyright 2026 The Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/strata-ml/strata/internal/backend/cpu"
	"github.com/strata-ml/strata/tensor"
)

// Backend is the host-CPU handler implementation.
//
// Matrix products run through gonum's float64 BLAS; elementwise kernels and
// reductions are plain Go loops.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Handler.
var _ tensor.Handler = (*Backend)(nil)

// New creates a new CPU handler.
//
// Example:
//
//	import (
//	    "github.com/strata-ml/strata/backend/cpu"
//	    "github.com/strata-ml/strata/layers"
//	)
//
//	func main() {
//	    layer, _ := layers.NewFeedForward(4, 3, nil, nil, nil)
//	    _ = layer.SetHandler(cpu.New())
//	}
func New() *Backend {
	return internalcpu.New()
}
