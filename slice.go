package deque

/*****************************************************************************
 * RANGE OPERATIONS
 *****************************************************************************/

// rangeBounds validates a and b, then normalizes them into lo <= hi. A
// reversed pair (b < a) covers the same indexes but sets backwards, which
// reverses value order on reads and writes. Both bounds are checked before
// the swap, so the panic message always reports the caller's operands.
func (d *Deque[T]) rangeBounds(a, b int) (lo, hi int, backwards bool) {
	d.checkBounds(a)
	d.checkBounds(b)
	if b < a {
		return b, a, true
	}
	return a, b, false
}

// Slice copies the elements from index a through b, both inclusive, into a
// new Deque with capacity rounded up to a power of two. If b < a the
// endpoints are swapped and the copy is materialized in reverse order: the
// result's first element is the source element at the higher index. The
// source is not modified. Panics if either bound is out of range in the
// checked build.
func (d *Deque[T]) Slice(a, b int) *Deque[T] {
	lo, hi, backwards := d.rangeBounds(a, b)
	n := hi - lo + 1
	out, _ := NewWithCapacity[T](n)
	if backwards {
		for i := range n {
			out.buf[i] = d.atUnsafe(uint(hi - i))
		}
	} else {
		for i := range n {
			out.buf[i] = d.atUnsafe(uint(lo + i))
		}
	}
	out.tail = uint(n)
	return out
}

// SliceAssign overwrites the range a through b, both inclusive, with
// elements from src. A reversed bound pair (b < a) writes the source values
// in reverse order over the same ascending index range.
//
// The contract is deliberately asymmetric. If src holds at least as many
// elements as the range, only the first rangeLen of them are used and the
// extras are silently ignored. If src holds fewer, the written part of the
// range keeps the source elements and the rest of the range is deleted, so
// the Deque shrinks by rangeLen - len(src); it is never padded.
func (d *Deque[T]) SliceAssign(a, b int, src []T) {
	lo, hi, backwards := d.rangeBounds(a, b)
	rangeLen := hi - lo + 1
	used := src
	if len(used) > rangeLen {
		used = used[:rangeLen]
	}
	if backwards {
		for i, t := range used {
			d.setUnsafe(uint(lo+len(used)-1-i), t)
		}
	} else {
		for i, t := range used {
			d.setUnsafe(uint(lo+i), t)
		}
	}
	if len(used) < rangeLen {
		d.deleteRange(lo+len(used), hi)
	}
}

// SliceAssignDeque is SliceAssign with another Deque as the source.
func (d *Deque[T]) SliceAssignDeque(a, b int, src *Deque[T]) {
	d.SliceAssign(a, b, src.ToSlice())
}

// DeleteRange removes the elements from index a through b, both inclusive,
// shifting everything after the range toward the front. Reversed bounds
// remove the same indexes; direction only matters for reads. Panics if
// either bound is out of range in the checked build.
func (d *Deque[T]) DeleteRange(a, b int) {
	lo, hi, _ := d.rangeBounds(a, b)
	d.deleteRange(lo, hi)
}

// ExtractRange is Slice followed by DeleteRange on the same bound pair: it
// returns the covered elements as a new Deque, honoring reversed-order
// materialization, and removes those index positions from d.
func (d *Deque[T]) ExtractRange(a, b int) *Deque[T] {
	out := d.Slice(a, b)
	lo, hi, _ := d.rangeBounds(a, b)
	d.deleteRange(lo, hi)
	return out
}

// deleteRange closes the gap [lo, hi] by shifting the trailing elements
// left, then zeroes the vacated slots at the back. Bounds must already be
// validated and ordered.
func (d *Deque[T]) deleteRange(lo, hi int) {
	n := uint(hi - lo + 1)
	length := d.len()
	for i := uint(lo); i+n < length; i++ {
		d.setUnsafe(i, d.atUnsafe(i+n))
	}
	var zero T
	for i := length - n; i < length; i++ {
		d.setUnsafe(i, zero)
	}
	d.tail -= n
}
