package deque

import (
	"cmp"
	"hash/maphash"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	// Equality ignores capacity and physical layout.
	a := FromSlice([]int{1, 2, 3})
	b := wrapped(1, 2, 3)
	require.True(t, Equal(a, b))
	require.NoError(t, b.SetCap(32))
	require.True(t, Equal(a, b))

	require.False(t, Equal(a, FromSlice([]int{1, 2})))
	require.False(t, Equal(a, FromSlice([]int{1, 2, 4})))
	require.True(t, Equal(New[int](), New[int]()))

	var n1, n2 *Deque[int]
	require.True(t, Equal(n1, n2))
	require.False(t, Equal(n1, New[int]()))
	require.False(t, Equal(New[int](), n2))
}

func TestEqualFunc(t *testing.T) {
	a := FromSlice([]string{"Hello", "World"})
	b := FromSlice([]string{"hello", "world"})
	require.False(t, Equal(a, b))
	require.True(t, a.EqualFunc(b, strings.EqualFold))
	require.False(t, a.EqualFunc(FromSlice([]string{"hello"}), strings.EqualFold))
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()

	a := FromSlice([]int{1, 2, 3})
	b := wrapped(1, 2, 3)
	require.Equal(t, Hash(seed, a), Hash(seed, b), "equal deques must hash alike")

	// Order sensitive.
	c := FromSlice([]int{3, 2, 1})
	require.NotEqual(t, Hash(seed, a), Hash(seed, c))
	require.NotEqual(t, Hash(seed, a), Hash(seed, FromSlice([]int{1, 2})))
}

func TestHashFunc(t *testing.T) {
	seed := maphash.MakeSeed()
	h := func(s maphash.Seed, v []int) uint64 {
		var mh maphash.Hash
		mh.SetSeed(s)
		for _, x := range v {
			mh.WriteByte(byte(x))
		}
		return mh.Sum64()
	}

	a := FromSlice([][]int{{1, 2}, {3}})
	b := FromSlice([][]int{{1, 2}, {3}})
	c := FromSlice([][]int{{3}, {1, 2}})
	require.Equal(t, a.HashFunc(seed, h), b.HashFunc(seed, h))
	require.NotEqual(t, a.HashFunc(seed, h), c.HashFunc(seed, h))
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", wrapped(1, 2, 3).String())
	require.Equal(t, "[7]", FromSlice([]int{7}).String())
	require.Equal(t, "[]", New[int]().String())
	require.Equal(t, "[a, b]", FromSlice([]string{"a", "b"}).String())
}

func TestContainsIndex(t *testing.T) {
	d := wrapped(5, 3, 8, 3, 1)
	require.True(t, Contains(d, 8))
	require.False(t, Contains(d, 9))
	require.Equal(t, 1, Index(d, 3), "first occurrence wins")
	require.Equal(t, -1, Index(d, 9))

	even := func(v int) bool { return v%2 == 0 }
	require.True(t, d.ContainsFunc(even))
	require.Equal(t, 2, d.IndexFunc(even))
	require.Equal(t, -1, d.IndexFunc(func(v int) bool { return v > 100 }))
}

func TestMinMax(t *testing.T) {
	d := wrapped(5, 3, 8, 3, 1)
	require.Equal(t, 1, Min(d))
	require.Equal(t, 8, Max(d))
	require.Equal(t, 1, MinFunc(d, cmp.Compare))
	require.Equal(t, 8, MaxFunc(d, cmp.Compare))

	// Reverse comparison flips the answers.
	rev := func(a, b int) int { return cmp.Compare(b, a) }
	require.Equal(t, 8, MinFunc(d, rev))
	require.Equal(t, 1, MaxFunc(d, rev))

	require.Panics(t, func() { Min(New[int]()) })
	require.Panics(t, func() { Max(New[int]()) })
}
