package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nauty/bitset"
)

func TestFirstSetBit(t *testing.T) {
	cases := []struct {
		name string
		w    bitset.Word
		want int
	}{
		{"empty", 0, 64},
		{"msb", bitset.Word(1) << 63, 0},
		{"lsb", 1, 63},
		{"mixed", bitset.Word(0b101) << 60, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, bitset.FirstSetBit(tc.w))
		})
	}
}

func TestSetFillToNAndSize(t *testing.T) {
	require := require.New(t)
	s := bitset.NewSet(70)
	s.FillToN()
	require.Equal(70, s.Size())
	for v := 0; v < 70; v++ {
		require.True(s.Test(v), "vertex %d should be set", v)
	}
}

func TestSetAddRemoveTestFlip(t *testing.T) {
	require := require.New(t)
	s := bitset.NewSet(10)
	require.False(s.Test(3))
	s.Add(3)
	require.True(s.Test(3))
	s.Remove(3)
	require.False(s.Test(3))
	s.Flip(5)
	require.True(s.Test(5))
	s.Flip(5)
	require.False(s.Test(5))
}

func TestSetBooleanOps(t *testing.T) {
	require := require.New(t)
	a := bitset.NewSet(8)
	b := bitset.NewSet(8)
	for _, v := range []int{0, 1, 2} {
		a.Add(v)
	}
	for _, v := range []int{2, 3, 4} {
		b.Add(v)
	}
	require.Equal(1, a.IntersectionSize(b))

	union := a.Clone()
	union.UnionInPlace(b)
	require.Equal(5, union.Size())

	diff := a.Clone()
	diff.DifferenceInPlace(b)
	require.Equal(2, diff.Size())
	require.True(diff.Test(0))
	require.True(diff.Test(1))
	require.False(diff.Test(2))

	xor := a.Clone()
	xor.XorInPlace(b)
	require.Equal(4, xor.Size())
}

func TestNextElement(t *testing.T) {
	require := require.New(t)
	s := bitset.NewSet(130)
	for _, v := range []int{0, 5, 64, 65, 129} {
		s.Add(v)
	}
	got := s.Elements()
	require.Equal([]int{0, 5, 64, 65, 129}, got)
	require.Equal(-1, s.NextElement(129))
	require.Equal(0, s.NextElement(-1))
}

func TestEqualAndCopy(t *testing.T) {
	require := require.New(t)
	a := bitset.NewSet(64)
	a.Add(10)
	a.Add(20)
	b := bitset.NewSet(64)
	b.Copy(a)
	require.True(a.Equal(b))
	b.Add(30)
	require.False(a.Equal(b))
}
