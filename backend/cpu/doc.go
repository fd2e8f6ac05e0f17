// Copyright 2026 The Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-CPU handler for Strata layers.
//
// # Overview
//
// This package implements the tensor.Handler contract with:
//   - Dense matrix products via gonum blas64 (float64 GEMM)
//   - Plain-loop elementwise activations and reductions
//   - Zero-copy reshape views over caller-owned buffers
//
// # Basic Usage
//
//	import (
//	    "github.com/strata-ml/strata/backend/cpu"
//	    "github.com/strata-ml/strata/layers"
//	)
//
//	func main() {
//	    handler := cpu.New()
//	    layer, _ := layers.NewFeedForward(128, 784, nil, nil, nil)
//	    if err := layer.SetHandler(handler); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Thread Safety
//
// The handler itself is stateless and safe for concurrent use across
// independent buffer sets. Invoking passes concurrently on the same layer
// with overlapping buffers is not.
package cpu
