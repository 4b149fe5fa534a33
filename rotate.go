package deque

/*****************************************************************************
 * ROTATION
 *****************************************************************************/

// RotateRight rotates the Deque n positions toward higher indexes: the last
// n elements wrap around to become the first n. A negative n rotates left.
// Rotating by a multiple of Len() is a no-op, and RotateRight(n) followed by
// RotateLeft(n) restores the original order exactly.
//
// The rotation moves only the wrapping elements, one at a time, shifting
// head and tail together. One spare physical slot is reserved through the
// capacity manager so the wrap write never lands on live data; a Deque at
// full capacity grows once before rotating.
func (d *Deque[T]) RotateRight(n int) {
	if n < 0 {
		d.RotateLeft(-n)
		return
	}
	length := d.len()
	if length < 2 {
		return
	}
	k := uint(n) % length
	if k == 0 {
		return
	}
	d.ensureRoom(1)
	var zero T
	for ; k > 0; k-- {
		last := &d.buf[(d.tail-1)&d.mask]
		t := *last
		*last = zero
		d.head--
		d.tail--
		d.buf[d.head&d.mask] = t
	}
}

// RotateLeft rotates the Deque n positions toward lower indexes: the first
// n elements wrap around to become the last n. A negative n rotates right.
// See RotateRight for the mechanics.
func (d *Deque[T]) RotateLeft(n int) {
	if n < 0 {
		d.RotateRight(-n)
		return
	}
	length := d.len()
	if length < 2 {
		return
	}
	k := uint(n) % length
	if k == 0 {
		return
	}
	d.ensureRoom(1)
	var zero T
	for ; k > 0; k-- {
		first := &d.buf[d.head&d.mask]
		t := *first
		*first = zero
		d.head++
		d.tail++
		d.buf[(d.tail-1)&d.mask] = t
	}
}
