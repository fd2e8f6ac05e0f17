package tensor

// Handler is the numeric backend a layer is bound to before its passes run.
// Layers hold no numeric code of their own: every multiply, reduction, and
// activation goes through the bound handler, which keeps the layer contract
// backend-agnostic.
//
// Implementations:
//   - backend/cpu: BLAS-backed host implementation
//   - backend/gorgonia: gorgonia.org/tensor dense kernels
//
// Handler operations panic on shape misuse. Shapes are fully determined by
// the layer's declared parameter structure and the caller's buffer
// allocation, so a mismatch is a programming error, not an input condition.
type Handler interface {
	// Elementwise activation functions. Both arguments must share a shape;
	// x and out may alias the same buffer for in-place application.
	Sigmoid(x, out *Buffer)
	Tanh(x, out *Buffer)
	Rel(x, out *Buffer)

	// Activation derivatives. Each computes
	//
	//	result = outDelta ⊙ f'(z)
	//
	// where f'(z) is recovered from the cached activation output. The input
	// argument exists for derivatives that need the pre-activation value and
	// may be nil for these three.
	SigmoidDeriv(input, output, outDelta, result *Buffer)
	TanhDeriv(input, output, outDelta, result *Buffer)
	RelDeriv(input, output, outDelta, result *Buffer)

	// Dot computes out = a·b for 2D buffers, overwriting out.
	Dot(a, b, out *Buffer)
	// DotAdd accumulates out += a·b for 2D buffers.
	DotAdd(a, b, out *Buffer)
	// AddMV broadcast-adds the vector v to every row of the matrix m.
	// m and out may alias.
	AddMV(m, v, out *Buffer)
	// Transpose returns the materialized transpose of a 2D buffer.
	Transpose(x *Buffer) *Buffer

	// Reshape returns a zero-copy view of x with a new shape.
	Reshape(x *Buffer, shape Shape) *Buffer
	// Zeros allocates a zero-filled buffer.
	Zeros(shape Shape) *Buffer
	// Sum reduces a 2D buffer along the given axis into out, overwriting it.
	Sum(x *Buffer, axis int, out *Buffer)

	// Name returns the handler name (e.g. "CPU").
	Name() string
}
