package deque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	a := wrapped(1, 2, 3)
	b := wrapped(4, 5)
	c := Concat(a, b)
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.ToSlice())
	require.Equal(t, []int{1, 2, 3}, a.ToSlice(), "operands must not change")
	require.Equal(t, []int{4, 5}, b.ToSlice())
	checkInvariants(t, c)

	require.Equal(t, []int{1, 2, 3}, Concat(a, New[int]()).ToSlice())
	require.Equal(t, []int{1, 2, 3}, Concat(New[int](), a).ToSlice())
}

func TestWithBack(t *testing.T) {
	d := wrapped(1, 2, 3)
	c := d.WithBack(4, 5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.ToSlice())
	require.Equal(t, []int{1, 2, 3}, d.ToSlice())
	checkInvariants(t, c)
}

func TestWithFront(t *testing.T) {
	d := wrapped(3, 4, 5)
	c := d.WithFront(1, 2)
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.ToSlice())
	require.Equal(t, []int{3, 4, 5}, d.ToSlice())
	checkInvariants(t, c)
}

func TestPushBackDeque(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	d.PushBackDeque(wrapped(4, 5, 6))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, d.ToSlice())
	checkInvariants(t, d)

	d.PushBackDeque(New[int]())
	require.Equal(t, 6, d.Len())
}

func TestPushFrontDeque(t *testing.T) {
	d := FromSlice([]int{4, 5, 6})
	d.PushFrontDeque(wrapped(1, 2, 3))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, d.ToSlice(),
		"source order must be preserved")
	checkInvariants(t, d)
}

func TestPushDequeSelf(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	d.PushBackDeque(d)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, d.ToSlice())
	checkInvariants(t, d)

	e := FromSlice([]int{1, 2, 3})
	e.PushFrontDeque(e)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, e.ToSlice())
	checkInvariants(t, e)
}
