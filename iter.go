package deque

import "iter"

/*****************************************************************************
 * TRAVERSAL
 *****************************************************************************/

// Iteration is lazy and restartable, and runs against the Deque's state at
// the time each loop starts. Mutating the Deque's length while a loop is in
// progress is undefined behavior; no invalidation guard is provided.

// All returns an iterator over index-value pairs, front to back. It follows
// the naming of slices.All. Safe to call on a nil Deque.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2 := d.slices()
		for i, t := range s1 {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range s2 {
			if !yield(len(s1)+i, t) {
				return
			}
		}
	}
}

// Values returns an iterator over values only, front to back. Safe to call
// on a nil Deque.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := d.slices()
		for _, t := range s1 {
			if !yield(t) {
				return
			}
		}
		for _, t := range s2 {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front. Safe
// to call on a nil Deque.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.atUnsafe(uint(i))) {
				return
			}
		}
	}
}

// BackwardValues returns an iterator over values only, back to front. Safe
// to call on a nil Deque.
func (d *Deque[T]) BackwardValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(d.atUnsafe(uint(i))) {
				return
			}
		}
	}
}

// Refs returns an iterator over index-pointer pairs, front to back, for
// in-place element mutation. The yielded pointers follow the Ref lifetime
// rule: they are invalidated by any operation that can reallocate.
func (d *Deque[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, &d.buf[(d.head+uint(i))&d.mask]) {
				return
			}
		}
	}
}

// BackwardRefs returns an iterator over index-pointer pairs, back to front,
// for in-place element mutation. The Ref lifetime rule applies.
func (d *Deque[T]) BackwardRefs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, &d.buf[(d.head+uint(i))&d.mask]) {
				return
			}
		}
	}
}

// ForEach calls f in order for every element, stopping at the first call
// that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	s1, s2 := d.slices()
	for _, t := range s1 {
		if !f(t) {
			return
		}
	}
	for _, t := range s2 {
		if !f(t) {
			return
		}
	}
}
