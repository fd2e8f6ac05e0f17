package layers

import (
	"fmt"

	"github.com/strata-ml/strata/internal/tensor"
)

// FeedForward implements a fully connected layer.
//
// Performs the transformation: output = act(input · W + b)
// where:
//   - input has shape [t, b, in_size] (time steps × batch × features)
//   - W is the weight matrix with shape [in_size, out_size]
//   - b is the bias vector with shape [out_size]
//   - output has shape [t, b, out_size]
//
// The leading time and batch axes are folded into a single flattened batch
// axis of size t·b before the matrix product and unfold implicitly through
// the shared buffer afterwards. The fold is a reshape view, never a copy.
//
// The activation is selected with the "act_func" option from sigmoid, tanh,
// linear, and rel; the default is tanh.
type FeedForward struct {
	base
	actName string
	act     activation
}

// activation is the derived state of a handler binding. The function pair
// holds method values of the bound handler instance, so every rebind derives
// it anew. The identity ("linear") activation carries no functions at all:
// forward skips the activation call and backward takes dZ = outDelta.
type activation struct {
	fn     func(x, out *tensor.Buffer)
	deriv  func(input, output, outDelta, result *tensor.Buffer)
	linear bool
}

func resolveActivation(h tensor.Handler, name string) (activation, error) {
	switch name {
	case "sigmoid":
		return activation{fn: h.Sigmoid, deriv: h.SigmoidDeriv}, nil
	case "tanh":
		return activation{fn: h.Tanh, deriv: h.TanhDeriv}, nil
	case "rel":
		return activation{fn: h.Rel, deriv: h.RelDeriv}, nil
	case "linear":
		return activation{linear: true}, nil
	default:
		return activation{}, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

// NewFeedForward constructs a FeedForward layer. Both sizes must be
// positive; a zero size falls back to the input size.
func NewFeedForward(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	actName := "tanh"
	for key, value := range opts {
		switch key {
		case "act_func":
			actName = value
		default:
			return nil, fmt.Errorf("%w: unexpected option %q for FeedForward", ErrUnknownOption, key)
		}
	}

	b := newBase(size, inSize, sinks, sources)
	if b.inSize <= 0 || b.outSize <= 0 {
		return nil, fmt.Errorf("layers: FeedForward requires positive in and out sizes (got in %d, out %d)",
			b.inSize, b.outSize)
	}
	return &FeedForward{base: b, actName: actName}, nil
}

// SetHandler binds the numeric backend and re-derives the activation pair
// from it. An unrecognized activation name fails without touching the
// current binding.
func (l *FeedForward) SetHandler(h tensor.Handler) error {
	act, err := resolveActivation(h, l.actName)
	if err != nil {
		return err
	}
	l.handler = h
	l.act = act
	return nil
}

// ParameterStructure declares the weight matrix and bias vector.
func (l *FeedForward) ParameterStructure() []ParamSpec {
	return []ParamSpec{
		{Name: "W", Shape: tensor.Shape{l.inSize, l.outSize}},
		{Name: "b", Shape: tensor.Shape{l.outSize}},
	}
}

// ForwardPass computes output = act(input · W + b) over the flattened batch
// axis. The activation is applied in place on the flat output view, so the
// result is visible through the caller's output buffer.
func (l *FeedForward) ForwardPass(params Buffers, input, output *tensor.Buffer) error {
	h := l.handler
	if h == nil {
		return ErrNoHandler
	}
	w, bias := params["W"], params["b"]

	in := input.Shape()
	t, b := in[0], in[1]
	flatIn := h.Reshape(input, tensor.Shape{t * b, in[2]})
	flatOut := h.Reshape(output, tensor.Shape{t * b, l.outSize})

	h.Dot(flatIn, w, flatOut)
	h.AddMV(flatOut, bias, flatOut)
	if !l.act.linear {
		l.act.fn(flatOut, flatOut)
	}
	return nil
}

// BackwardPass propagates the error signal and computes parameter gradients:
//
//	dZ      = outDelta ⊙ act'(output)   (dZ = outDelta for linear)
//	inDelta += dZ · Wᵗ
//	gradW   = inputᵗ · dZ
//	gradB   = column sums of dZ
//
// inDelta is accumulated because a layer may receive delta contributions
// from several downstream consumers; gradW and gradB are overwritten because
// the layer owns its parameter gradients exclusively.
func (l *FeedForward) BackwardPass(params Buffers, input, output, inDelta, outDelta *tensor.Buffer, grads Buffers) error {
	h := l.handler
	if h == nil {
		return ErrNoHandler
	}
	w := params["W"]
	gradW, gradB := grads["W"], grads["b"]
	dZ := h.Zeros(output.Shape())

	in := input.Shape()
	t, b := in[0], in[1]
	flatIn := h.Reshape(input, tensor.Shape{t * b, in[2]})
	flatDZ := h.Reshape(dZ, tensor.Shape{t * b, l.outSize})
	flatInDelta := h.Reshape(inDelta, tensor.Shape{t * b, in[2]})

	if l.act.linear {
		copy(dZ.Data(), outDelta.Data())
	} else {
		l.act.deriv(nil, output, outDelta, dZ)
	}

	h.DotAdd(flatDZ, h.Transpose(w), flatInDelta)
	h.Dot(h.Transpose(flatIn), flatDZ, gradW)
	h.Sum(flatDZ, 0, gradB)
	return nil
}
