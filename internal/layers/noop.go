package layers

import "fmt"

// NoOp is an identity pass-through. It performs no copy of its own: the
// caller is expected to alias the output buffer to the input. Both passes
// are no-ops and it declares no parameters.
type NoOp struct {
	base
}

// NewNoOp constructs a NoOp layer. The in and out sizes must match exactly.
func NewNoOp(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	if err := noOptions("NoOp", opts); err != nil {
		return nil, err
	}
	if size != inSize {
		return nil, fmt.Errorf("layers: NoOp requires equal in and out sizes (got in %d, out %d)", inSize, size)
	}
	return &NoOp{base: newBase(size, inSize, sinks, sources)}, nil
}
