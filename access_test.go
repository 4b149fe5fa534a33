package deque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtSet(t *testing.T) {
	d := wrapped(10, 20, 30, 40, 50)
	require.Equal(t, 10, d.At(0))
	require.Equal(t, 30, d.At(2))
	require.Equal(t, 50, d.At(4))

	d.Set(2, 99)
	require.Equal(t, []int{10, 20, 99, 40, 50}, d.ToSlice())
	checkInvariants(t, d)
}

func TestRef(t *testing.T) {
	d := wrapped(1, 2, 3)
	*d.Ref(1) *= 10
	require.Equal(t, []int{1, 20, 3}, d.ToSlice())
}

func TestFromBack(t *testing.T) {
	d := FromSlice([]int{10, 20, 30, 40})
	require.Equal(t, 3, d.FromBack(1))
	require.Equal(t, 0, d.FromBack(4))
	require.Equal(t, 40, d.At(d.FromBack(1)))

	requireChecked(t)
	require.Panics(t, func() { d.FromBack(0) })
	require.Panics(t, func() { d.FromBack(5) })
}

func TestFrontBack(t *testing.T) {
	d := New[int]()
	_, ok := d.Front()
	require.False(t, ok)
	_, ok = d.Back()
	require.False(t, ok)
	require.Nil(t, d.FrontRef())
	require.Nil(t, d.BackRef())

	d.PushBack(1, 2, 3)
	v, ok := d.Front()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = d.Back()
	require.True(t, ok)
	require.Equal(t, 3, v)

	*d.FrontRef() = 11
	*d.BackRef() = 33
	require.Equal(t, []int{11, 2, 33}, d.ToSlice())
}

func TestSwap(t *testing.T) {
	d := wrapped(1, 2, 3, 4)
	d.Swap(0, 3)
	require.Equal(t, []int{4, 2, 3, 1}, d.ToSlice())
	d.Swap(1, 1)
	require.Equal(t, []int{4, 2, 3, 1}, d.ToSlice())
	if boundsChecked {
		require.Panics(t, func() { d.Swap(0, 4) })
	}
}

func TestBoundsPanics(t *testing.T) {
	requireChecked(t)
	d := FromSlice([]int{1, 2, 3})
	require.Panics(t, func() { d.At(-1) })
	require.Panics(t, func() { d.At(3) })
	require.Panics(t, func() { d.Set(3, 0) })
	require.Panics(t, func() { d.Ref(-1) })
	require.PanicsWithValue(t,
		"deque: index 5 out of bounds with length 3",
		func() { d.At(5) })

	empty := New[int]()
	require.Panics(t, func() { empty.At(0) })
}
