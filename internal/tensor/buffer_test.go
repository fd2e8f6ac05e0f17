package tensor

import (
	"testing"
)

func TestNewBufferZeroFilled(t *testing.T) {
	b, err := NewBuffer(Shape{3, 2})
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	if b.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", b.NumElements())
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Errorf("Data[%d] = %f, want 0", i, v)
		}
	}
}

func TestNewBufferInvalidShape(t *testing.T) {
	if _, err := NewBuffer(Shape{3, 0}); err == nil {
		t.Error("NewBuffer should fail on a zero dimension")
	}
	if _, err := NewBuffer(Shape{-1}); err == nil {
		t.Error("NewBuffer should fail on a negative dimension")
	}
}

func TestFromSliceWrapsWithoutCopy(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	b, err := FromSlice(data, Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	// Modify and verify zero-copy
	data[0] = 42
	if b.Data()[0] != 42 {
		t.Error("FromSlice should wrap the slice, not copy it")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromSlice should fail when data length does not match the shape")
	}
}

func TestReshapeIsView(t *testing.T) {
	b, _ := NewBuffer(Shape{2, 3, 4})

	flat, err := b.Reshape(Shape{6, 4})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !flat.Shape().Equal(Shape{6, 4}) {
		t.Errorf("view shape = %v, want [6 4]", flat.Shape())
	}

	// Writes through the view must be visible through the original buffer.
	flat.Data()[5] = 2.5
	if b.Data()[5] != 2.5 {
		t.Error("Reshape should return a view sharing the backing slice")
	}
	if !b.Shape().Equal(Shape{2, 3, 4}) {
		t.Errorf("original shape changed to %v", b.Shape())
	}
}

func TestReshapeIncompatible(t *testing.T) {
	b, _ := NewBuffer(Shape{2, 3})
	if _, err := b.Reshape(Shape{4, 2}); err == nil {
		t.Error("Reshape should fail when element counts differ")
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	if !s.Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if s.Equal(Shape{3, 2}) || s.Equal(Shape{2, 3, 1}) {
		t.Error("unequal shapes reported equal")
	}

	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone should not share storage")
	}
}
