package deque

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"slices"
	"strings"
)

/*****************************************************************************
 * COMPARISON
 *****************************************************************************/

// Equal returns whether both Deques have the same length and the same
// elements in the same logical order. Capacity and internal head offset are
// irrelevant. Two nil Deques are equal; nil and an empty Deque are not. This
// must not be a method, otherwise Deque would be constrained to comparable
// elements.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.len() != d2.len() {
		return false
	}
	for i := uint(0); i < d1.len(); i++ {
		if d1.atUnsafe(i) != d2.atUnsafe(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], eq func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.len() != d2.len() {
		return false
	}
	for i := uint(0); i < d1.len(); i++ {
		if !eq(d1.atUnsafe(i), d2.atUnsafe(i)) {
			return false
		}
	}
	return true
}

/*****************************************************************************
 * HASHING
 *****************************************************************************/

// Hash returns an order-sensitive combination of the per-element hashes
// under seed. Deques that compare Equal hash identically for the same seed.
// Hashing generic comparable values needs runtime support, which is what
// hash/maphash exposes; use HashFunc for non-comparable element types. This
// must not be a method, otherwise Deque would be constrained to comparable
// elements.
func Hash[T comparable](seed maphash.Seed, d *Deque[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte
	for t := range d.Values() {
		binary.LittleEndian.PutUint64(b[:], maphash.Comparable(seed, t))
		h.Write(b[:])
	}
	return h.Sum64()
}

// HashFunc is Hash with a caller-supplied per-element hash function.
func (d *Deque[T]) HashFunc(seed maphash.Seed, f func(maphash.Seed, T) uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte
	for t := range d.Values() {
		binary.LittleEndian.PutUint64(b[:], f(seed, t))
		h.Write(b[:])
	}
	return h.Sum64()
}

/*****************************************************************************
 * RENDERING
 *****************************************************************************/

// String renders the elements in logical order, bracketed and comma
// separated, each formatted with %v.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range d.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", t)
	}
	sb.WriteByte(']')
	return sb.String()
}

/*****************************************************************************
 * SEARCHING
 *****************************************************************************/

// Contains returns whether t is in the Deque. Same semantics as
// slices.Contains. This must not be a method, otherwise Deque would be
// constrained to comparable elements.
func Contains[T comparable](d *Deque[T], t T) bool {
	s1, s2 := d.slices()
	return slices.Contains(s1, t) || slices.Contains(s2, t)
}

// ContainsFunc returns whether an element satisfying f is in the Deque.
// Same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	s1, s2 := d.slices()
	return slices.ContainsFunc(s1, f) || slices.ContainsFunc(s2, f)
}

// Index returns the logical index of the first occurrence of t, or -1 if
// absent. Same semantics as slices.Index. This must not be a method,
// otherwise Deque would be constrained to comparable elements.
func Index[T comparable](d *Deque[T], t T) int {
	s1, s2 := d.slices()
	if i := slices.Index(s1, t); i != -1 {
		return i
	}
	if i := slices.Index(s2, t); i != -1 {
		return i + len(s1)
	}
	return -1
}

// IndexFunc returns the logical index of the first element satisfying f, or
// -1 if none do. Same semantics as slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.slices()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element. Panics on an empty Deque, like
// slices.Max. This must not be a method, otherwise Deque would be
// constrained to ordered elements.
func Max[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.slices()
	result := slices.Max(s1)
	if len(s2) > 0 {
		result = max(result, slices.Max(s2))
	}
	return result
}

// MaxFunc returns the maximum element according to compare. Panics on an
// empty Deque, like slices.MaxFunc.
func MaxFunc[T any](d *Deque[T], compare func(T, T) int) T {
	s1, s2 := d.slices()
	result := slices.MaxFunc(s1, compare)
	if len(s2) > 0 {
		if m := slices.MaxFunc(s2, compare); compare(m, result) > 0 {
			result = m
		}
	}
	return result
}

// Min returns the minimum element. Panics on an empty Deque, like
// slices.Min. This must not be a method, otherwise Deque would be
// constrained to ordered elements.
func Min[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.slices()
	result := slices.Min(s1)
	if len(s2) > 0 {
		result = min(result, slices.Min(s2))
	}
	return result
}

// MinFunc returns the minimum element according to compare. Panics on an
// empty Deque, like slices.MinFunc.
func MinFunc[T any](d *Deque[T], compare func(T, T) int) T {
	s1, s2 := d.slices()
	result := slices.MinFunc(s1, compare)
	if len(s2) > 0 {
		if m := slices.MinFunc(s2, compare); compare(m, result) < 0 {
			result = m
		}
	}
	return result
}
