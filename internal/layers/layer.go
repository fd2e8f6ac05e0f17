// Package layers implements the backend-agnostic layer contract of the
// Strata framework.
//
// This package provides:
//   - Layer interface: the uniform contract every variant satisfies
//   - Variants: Input, NoOp, FeedForward
//   - Registry: name-to-constructor lookup for graph builders
//
// A layer owns no numeric storage. The external graph builder allocates one
// buffer per declared parameter name (for values and for gradients), wires
// sink/source adjacency, binds a handler, and then drives forward passes in
// topological order and backward passes in reverse.
package layers

import (
	"errors"
	"fmt"

	"github.com/strata-ml/strata/internal/tensor"
)

var (
	// ErrNoHandler reports a forward or backward pass invoked before
	// SetHandler on a variant that needs one.
	ErrNoHandler = errors.New("layers: no handler bound")

	// ErrUnknownType reports a registry lookup for an unregistered name.
	ErrUnknownType = errors.New("layers: layer type unknown")

	// ErrUnknownOption reports an unrecognized configuration key.
	ErrUnknownOption = errors.New("layers: unknown option")

	// ErrUnknownActivation reports an unrecognized activation function name.
	ErrUnknownActivation = errors.New("layers: unknown activation function")
)

// Options carries per-variant configuration. Every variant validates the
// keys it receives at construction; an unrecognized key is fatal.
type Options map[string]string

// ParamSpec declares one named, shaped learnable buffer. A rank-1 shape is
// a vector, a rank-2 shape a matrix.
type ParamSpec struct {
	Name  string
	Shape tensor.Shape
}

// Buffers keys caller-owned parameter or gradient storage by name, matching
// the names a layer declares in its parameter structure.
type Buffers map[string]*tensor.Buffer

// Layer is the contract every variant satisfies.
//
// The parameter structure (names and shapes) is fixed for the layer's
// lifetime; the values and gradients live in the caller's buffers. A layer
// must only write to the output, delta, and gradient buffers named in its
// pass signature, and must not retain any buffer beyond the call.
type Layer interface {
	// InSize returns the input feature size, zero for input layers.
	InSize() int

	// OutSize returns the output feature size.
	OutSize() int

	// Sinks returns the downstream layers, as stored at construction.
	// The layer stores adjacency for the graph builder's use and never
	// traverses it.
	Sinks() []Layer

	// Sources returns the upstream layers, as stored at construction.
	Sources() []Layer

	// SetHandler binds the numeric backend. Variants with activation
	// functions re-derive their activation pair from the new handler;
	// rebinding never reuses a stale pair.
	SetHandler(h tensor.Handler) error

	// ParameterStructure returns the ordered (name, shape) declarations of
	// the layer's learnable parameters. Nil for parameter-free variants.
	ParameterStructure() []ParamSpec

	// ForwardPass reads params and input and writes the layer output into
	// output, which the caller pre-allocates to the declared output shape.
	ForwardPass(params Buffers, input, output *tensor.Buffer) error

	// BackwardPass reads the forward buffers and the incoming error signal
	// outDelta, accumulates the propagated error into inDelta, and writes
	// parameter gradients into grads (keyed like params). Propagated error
	// is additive: a layer may receive delta contributions from several
	// downstream consumers. Parameter gradients are overwritten.
	BackwardPass(params Buffers, input, output, inDelta, outDelta *tensor.Buffer, grads Buffers) error
}

// Constructor builds a layer from the uniform argument set the graph
// builder supplies. A size of zero means "not given": the output size is
// the explicit size when nonzero, otherwise the input size.
type Constructor func(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error)

// base carries the state shared by every variant and supplies the no-op
// defaults: no parameters, empty passes, plain handler binding.
type base struct {
	inSize  int
	outSize int
	sinks   []Layer
	sources []Layer
	handler tensor.Handler
}

func newBase(size, inSize int, sinks, sources []Layer) base {
	out := size
	if out == 0 {
		out = inSize
	}
	return base{inSize: inSize, outSize: out, sinks: sinks, sources: sources}
}

func (b *base) InSize() int      { return b.inSize }
func (b *base) OutSize() int     { return b.outSize }
func (b *base) Sinks() []Layer   { return b.sinks }
func (b *base) Sources() []Layer { return b.sources }

func (b *base) SetHandler(h tensor.Handler) error {
	b.handler = h
	return nil
}

func (b *base) ParameterStructure() []ParamSpec { return nil }

func (b *base) ForwardPass(Buffers, *tensor.Buffer, *tensor.Buffer) error { return nil }

func (b *base) BackwardPass(Buffers, *tensor.Buffer, *tensor.Buffer, *tensor.Buffer, *tensor.Buffer, Buffers) error {
	return nil
}

// noOptions rejects every option key, for variants without configuration.
func noOptions(variant string, opts Options) error {
	for key := range opts {
		return fmt.Errorf("%w: unexpected option %q for %s", ErrUnknownOption, key, variant)
	}
	return nil
}
