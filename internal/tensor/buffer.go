package tensor

import "fmt"

// Buffer is a dense float64 tensor over caller-owned storage.
//
// Layers never allocate or retain buffers: the graph builder owns every
// parameter, gradient, input, output, and delta buffer and passes them into
// each forward/backward call. A Buffer is therefore nothing more than a
// backing slice plus a shape; reshaping produces a view over the same slice.
type Buffer struct {
	data  []float64
	shape Shape
}

// NewBuffer allocates a zero-filled buffer with the given shape.
func NewBuffer(shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Buffer{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// Zeros allocates a zero-filled buffer and panics on an invalid shape.
// It is the infallible form of NewBuffer used by handler implementations.
func Zeros(shape Shape) *Buffer {
	b, err := NewBuffer(shape)
	if err != nil {
		panic(fmt.Sprintf("tensor: zeros: %v", err))
	}
	return b
}

// FromSlice wraps an existing slice as a buffer without copying.
// The slice length must match the number of elements the shape declares.
func FromSlice(data []float64, shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Buffer{data: data, shape: shape.Clone()}, nil
}

// Shape returns the buffer's shape.
func (b *Buffer) Shape() Shape {
	return b.shape
}

// NumElements returns the total number of elements.
func (b *Buffer) NumElements() int {
	return len(b.data)
}

// Data returns the backing slice. Writes through it are visible to every
// view of the buffer.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Reshape returns a view of the buffer with a new shape. The view shares
// the backing slice, so in-place writes through the view are visible
// through the original buffer and vice versa.
func (b *Buffer) Reshape(shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(b.data) {
		return nil, fmt.Errorf("incompatible shapes: %v -> %v (different number of elements)",
			b.shape, shape)
	}
	return &Buffer{data: b.data, shape: shape.Clone()}, nil
}
