package nauty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/nauty"
	"github.com/katalvlaran/nauty/permutation"
)

func TestGenerateGroupClosesCyclicGroup(t *testing.T) {
	require := require.New(t)
	rotate, err := permutation.FromArray([]int{1, 2, 3, 4, 0})
	require.NoError(err)

	elems, err := nauty.GenerateGroup([]permutation.Permutation{rotate}, 100)
	require.NoError(err)
	require.Len(elems, 5)
}

func TestGenerateGroupReportsBoundExceeded(t *testing.T) {
	require := require.New(t)
	a, err := permutation.FromArray([]int{1, 0, 2, 3})
	require.NoError(err)
	b, err := permutation.FromArray([]int{1, 2, 3, 0})
	require.NoError(err)

	_, err = nauty.GenerateGroup([]permutation.Permutation{a, b}, 5)
	require.ErrorIs(err, nauty.ErrGenerationBoundExceeded)
}
