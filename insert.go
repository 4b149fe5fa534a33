package deque

/*****************************************************************************
 * POSITIONAL MUTATORS
 *****************************************************************************/

// Insert places its arguments at logical position pos, in order, shifting
// the elements at or after pos toward the back. pos == Len() is a pure
// append; in the checked build any larger position panics.
//
// Insert first normalizes the Deque (relocating so head sits on physical
// slot 0) so the shift runs on a contiguous buffer.
func (d *Deque[T]) Insert(pos int, ts ...T) {
	d.checkInsertPos(pos)
	if len(ts) == 0 {
		return
	}
	length := d.makeGap(pos, len(ts))
	copy(d.buf[pos:], ts)
	d.tail = uint(length + len(ts))
}

// InsertDeque is Insert with another Deque as the source. Inserting a Deque
// into itself inserts a snapshot of its pre-call contents.
func (d *Deque[T]) InsertDeque(pos int, src *Deque[T]) {
	d.checkInsertPos(pos)
	if src.Len() == 0 {
		return
	}
	if src == d {
		src = d.Clone()
	}
	length := d.makeGap(pos, src.Len())
	src.CopyTo(d.buf[pos:])
	d.tail = uint(length + src.Len())
}

// makeGap grows if needed, normalizes, and shifts the elements at or after
// pos right by n slots, leaving an n-wide window at pos for the caller to
// fill. It returns the length before the gap was opened; the caller bumps
// tail once the window is written.
func (d *Deque[T]) makeGap(pos, n int) int {
	d.ensureRoom(uint(n))
	d.normalize()
	length := int(d.len())
	copy(d.buf[pos+n:length+n], d.buf[pos:length])
	return length
}

// Delete removes the element at logical position pos, shifting the elements
// after it toward the front. Panics if out of bounds in the checked build.
func (d *Deque[T]) Delete(pos int) {
	d.checkBounds(pos)
	d.deleteRange(pos, pos)
}

// Extract removes the element at logical position pos and returns it.
// Panics if out of bounds in the checked build.
func (d *Deque[T]) Extract(pos int) T {
	t := d.At(pos)
	d.deleteRange(pos, pos)
	return t
}

// Reverse reverses the element order in place.
func (d *Deque[T]) Reverse() {
	if d.len() < 2 {
		return
	}
	for i, j := uint(0), d.len()-1; i < j; i, j = i+1, j-1 {
		d.swapUnsafe(i, j)
	}
}
