// Copyright 2026 The Strata Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layers provides the public layer contract of the Strata framework.
//
// This package contains:
//   - Layer: the uniform forward/backward contract every variant satisfies
//   - Variants: Input, NoOp, FeedForward
//   - Registry: name-to-constructor lookup for graph builders
//
// # Basic Usage
//
//	import (
//	    "github.com/strata-ml/strata/backend/cpu"
//	    "github.com/strata-ml/strata/layers"
//	    "github.com/strata-ml/strata/tensor"
//	)
//
//	func main() {
//	    build, _ := layers.FromTypeName("FeedForward")
//	    layer, err := build(4, 3, nil, nil, layers.Options{"act_func": "sigmoid"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := layer.SetHandler(cpu.New()); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Allocate buffers per the declared parameter structure, then:
//	    err = layer.ForwardPass(params, input, output)
//	}
//
// Forward passes must run in a topological order consistent with the source
// adjacency, backward passes in the reverse order; both orderings are the
// graph builder's responsibility.
package layers

import (
	"github.com/strata-ml/strata/internal/layers"
)

// Layer is the contract every layer variant satisfies.
type Layer = layers.Layer

// Constructor builds a layer from the uniform argument set a graph builder
// supplies: (size, inSize, sinks, sources, opts).
type Constructor = layers.Constructor

// Options carries per-variant configuration; unknown keys fail construction.
type Options = layers.Options

// ParamSpec declares one named, shaped learnable buffer.
type ParamSpec = layers.ParamSpec

// Buffers keys caller-owned parameter or gradient storage by name.
type Buffers = layers.Buffers

// Input marks a graph entry point.
type Input = layers.Input

// NoOp is an identity pass-through.
type NoOp = layers.NoOp

// FeedForward is a fully connected layer with a configurable activation.
type FeedForward = layers.FeedForward

// Sentinel errors surfaced by constructors, binding, and lookup.
var (
	ErrNoHandler         = layers.ErrNoHandler
	ErrUnknownType       = layers.ErrUnknownType
	ErrUnknownOption     = layers.ErrUnknownOption
	ErrUnknownActivation = layers.ErrUnknownActivation
)

// NewInput constructs an Input layer. The in size must be zero.
func NewInput(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	return layers.NewInput(size, inSize, sinks, sources, opts)
}

// NewNoOp constructs a NoOp layer. In and out sizes must match exactly.
func NewNoOp(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	return layers.NewNoOp(size, inSize, sinks, sources, opts)
}

// NewFeedForward constructs a FeedForward layer.
//
// Example:
//
//	layer, err := layers.NewFeedForward(128, 784, nil, nil, layers.Options{"act_func": "rel"})
func NewFeedForward(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	return layers.NewFeedForward(size, inSize, sinks, sources, opts)
}

// Register adds a constructor under a type name; duplicates panic.
func Register(name string, c Constructor) {
	layers.Register(name, c)
}

// FromTypeName returns the constructor registered under name, or an error
// wrapping ErrUnknownType for unregistered names.
func FromTypeName(name string) (Constructor, error) {
	return layers.FromTypeName(name)
}

// Compile-time checks that every built-in variant satisfies the contract.
var (
	_ Layer = (*Input)(nil)
	_ Layer = (*NoOp)(nil)
	_ Layer = (*FeedForward)(nil)
)
