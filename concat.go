package deque

/*****************************************************************************
 * CONCATENATION
 *****************************************************************************/

// Concat returns a new Deque holding a's elements followed by b's. Neither
// operand is modified and no memory is shared with either.
func Concat[T any](a, b *Deque[T]) *Deque[T] {
	out, _ := NewWithCapacity[T](a.Len() + b.Len())
	n := a.CopyTo(out.buf)
	n += b.CopyTo(out.buf[n:])
	out.tail = uint(n)
	return out
}

// WithBack returns a new Deque holding d's elements followed by ts, in
// argument order. d is not modified.
func (d *Deque[T]) WithBack(ts ...T) *Deque[T] {
	out, _ := NewWithCapacity[T](d.Len() + len(ts))
	n := d.CopyTo(out.buf)
	copy(out.buf[n:], ts)
	out.tail = uint(n + len(ts))
	return out
}

// WithFront returns a new Deque holding ts, in argument order, followed by
// d's elements. d is not modified.
func (d *Deque[T]) WithFront(ts ...T) *Deque[T] {
	out, _ := NewWithCapacity[T](d.Len() + len(ts))
	n := copy(out.buf, ts)
	n += d.CopyTo(out.buf[n:])
	out.tail = uint(n)
	return out
}

// PushBackDeque appends src's elements to the back of d, in src order.
// Appending a Deque to itself appends a snapshot of its pre-call contents.
func (d *Deque[T]) PushBackDeque(src *Deque[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	if src == d {
		src = d.Clone()
	}
	d.ensureRoom(uint(n))
	s1, s2 := src.slices()
	for _, t := range s1 {
		d.buf[d.tail&d.mask] = t
		d.tail++
	}
	for _, t := range s2 {
		d.buf[d.tail&d.mask] = t
		d.tail++
	}
}

// PushFrontDeque prepends src's elements to the front of d, preserving src
// order: src's first element becomes d's new front. Prepending a Deque to
// itself prepends a snapshot of its pre-call contents.
func (d *Deque[T]) PushFrontDeque(src *Deque[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	if src == d {
		src = d.Clone()
	}
	d.ensureRoom(uint(n))
	d.head -= uint(n)
	i := d.head
	s1, s2 := src.slices()
	for _, t := range s1 {
		d.buf[i&d.mask] = t
		i++
	}
	for _, t := range s2 {
		d.buf[i&d.mask] = t
		i++
	}
}
