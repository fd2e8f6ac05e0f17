package layers

import "fmt"

// Input marks a graph entry point. It has no predecessor, no parameters,
// and both passes are no-ops: the caller injects data directly into its
// output buffer.
type Input struct {
	base
}

// NewInput constructs an Input layer. The input size must be zero; an input
// layer never consumes upstream output.
func NewInput(size, inSize int, sinks, sources []Layer, opts Options) (Layer, error) {
	if err := noOptions("Input", opts); err != nil {
		return nil, err
	}
	if inSize != 0 {
		return nil, fmt.Errorf("layers: Input cannot have an in size (got %d)", inSize)
	}
	return &Input{base: newBase(size, inSize, sinks, sources)}, nil
}
