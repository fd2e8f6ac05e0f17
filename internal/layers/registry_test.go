package layers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-ml/strata/internal/layers"
)

func TestFromTypeName_Builtins(t *testing.T) {
	for _, name := range []string{"Input", "NoOp", "FeedForward"} {
		build, err := layers.FromTypeName(name)
		require.NoError(t, err, "lookup of %q", name)
		require.NotNil(t, build)
	}

	build, err := layers.FromTypeName("FeedForward")
	require.NoError(t, err)
	l, err := build(4, 3, nil, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &layers.FeedForward{}, l)
}

func TestFromTypeName_Unknown(t *testing.T) {
	_, err := layers.FromTypeName("Convolution")
	require.Error(t, err)
	assert.ErrorIs(t, err, layers.ErrUnknownType)
	assert.Contains(t, err.Error(), "Convolution")
}

func TestFromTypeName_CaseSensitive(t *testing.T) {
	_, err := layers.FromTypeName("feedforward")
	assert.ErrorIs(t, err, layers.ErrUnknownType)
}

func TestFromTypeName_NoContractEntry(t *testing.T) {
	// The Layer interface itself is not a registered variant.
	for _, name := range []string{"Layer", "base"} {
		_, err := layers.FromTypeName(name)
		assert.ErrorIs(t, err, layers.ErrUnknownType, "lookup of %q", name)
	}
}

func TestRegister_Custom(t *testing.T) {
	layers.Register("CustomNoOp", layers.NewNoOp)

	build, err := layers.FromTypeName("CustomNoOp")
	require.NoError(t, err)
	l, err := build(2, 2, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, l.OutSize())
}

func TestRegister_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		layers.Register("NoOp", layers.NewNoOp)
	})
}
