package layers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/backend/cpu"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/tensor"
)

func TestInput_RejectsInSize(t *testing.T) {
	_, err := layers.NewInput(5, 3, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in size")
}

func TestInput_Construction(t *testing.T) {
	l, err := layers.NewInput(5, 0, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, l.InSize())
	assert.Equal(t, 5, l.OutSize())
	assert.Nil(t, l.ParameterStructure())
}

func TestNoOp_SizesMustMatch(t *testing.T) {
	_, err := layers.NewNoOp(4, 5, nil, nil, nil)
	require.Error(t, err)

	l, err := layers.NewNoOp(4, 4, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, l.OutSize())
	assert.Nil(t, l.ParameterStructure())
}

func TestUnknownOptionFailsNamingKey(t *testing.T) {
	tests := []struct {
		name        string
		constructor layers.Constructor
		size        int
		inSize      int
	}{
		{"Input", layers.NewInput, 5, 0},
		{"NoOp", layers.NewNoOp, 4, 4},
		{"FeedForward", layers.NewFeedForward, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.constructor(tt.size, tt.inSize, nil, nil, layers.Options{"bogus": "1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, layers.ErrUnknownOption)
			assert.Contains(t, err.Error(), "bogus")
		})
	}
}

func TestOutSizeDefaultsToInSize(t *testing.T) {
	l, err := layers.NewFeedForward(0, 3, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, l.OutSize())
}

func TestAdjacencyStoredVerbatim(t *testing.T) {
	up, err := layers.NewInput(3, 0, nil, nil, nil)
	require.NoError(t, err)
	down, err := layers.NewNoOp(4, 4, nil, nil, nil)
	require.NoError(t, err)

	l, err := layers.NewFeedForward(4, 3, []layers.Layer{down}, []layers.Layer{up}, nil)
	require.NoError(t, err)

	require.Len(t, l.Sinks(), 1)
	require.Len(t, l.Sources(), 1)
	assert.Same(t, down, l.Sinks()[0])
	assert.Same(t, up, l.Sources()[0])
}

func TestNoOpPassesAreNoOps(t *testing.T) {
	l, err := layers.NewNoOp(3, 3, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, l.SetHandler(cpu.New()))

	input, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 1, 3})
	require.NoError(t, err)
	output := tensor.Zeros(tensor.Shape{1, 1, 3})

	require.NoError(t, l.ForwardPass(nil, input, output))
	assert.Equal(t, []float64{0, 0, 0}, output.Data(), "NoOp performs no copy of its own")

	inDelta := tensor.Zeros(tensor.Shape{1, 1, 3})
	outDelta := tensor.Zeros(tensor.Shape{1, 1, 3})
	require.NoError(t, l.BackwardPass(nil, input, output, inDelta, outDelta, nil))
	assert.Equal(t, []float64{0, 0, 0}, inDelta.Data())
}
