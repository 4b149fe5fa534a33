package deque

import "fmt"

/*****************************************************************************
 * POINT ACCESS
 *****************************************************************************/

// At returns the element at logical index i. Panics if out of bounds in the
// checked build.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.atUnsafe(uint(i))
}

// Set writes t to logical index i. Panics if out of bounds in the checked
// build.
func (d *Deque[T]) Set(i int, t T) {
	d.checkBounds(i)
	d.setUnsafe(uint(i), t)
}

// Ref returns a pointer to the element at logical index i. The pointer is
// only valid until the next operation that can reallocate the buffer
// (push, insert, rotate, SetCap, ...); do not retain it across mutations.
// Panics if out of bounds in the checked build.
func (d *Deque[T]) Ref(i int) *T {
	d.checkBounds(i)
	return &d.buf[(d.head+uint(i))&d.mask]
}

// FromBack converts a backward index into a logical index: FromBack(1) is
// the index of the last element, FromBack(Len()) the first. The result can
// be passed to any indexed operation. Panics in the checked build unless
// 1 <= k <= Len().
func (d *Deque[T]) FromBack(k int) int {
	i := d.Len() - k
	d.checkBounds(i)
	return i
}

// Front returns the first element, or false if the Deque is empty.
func (d *Deque[T]) Front() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[d.head&d.mask], true
}

// Back returns the last element, or false if the Deque is empty.
func (d *Deque[T]) Back() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf[(d.tail-1)&d.mask], true
}

// FrontRef returns a pointer to the first element, or nil if the Deque is
// empty. The same lifetime rule as Ref applies.
func (d *Deque[T]) FrontRef() *T {
	if d.Empty() {
		return nil
	}
	return &d.buf[d.head&d.mask]
}

// BackRef returns a pointer to the last element, or nil if the Deque is
// empty. The same lifetime rule as Ref applies.
func (d *Deque[T]) BackRef() *T {
	if d.Empty() {
		return nil
	}
	return &d.buf[(d.tail-1)&d.mask]
}

// Swap exchanges the elements at logical indexes i and j. Panics if either
// is out of bounds in the checked build.
func (d *Deque[T]) Swap(i, j int) {
	d.checkBounds(i)
	d.checkBounds(j)
	d.swapUnsafe(uint(i), uint(j))
}

/*****************************************************************************
 * UNCHECKED PRIMITIVES
 *****************************************************************************/

func (d *Deque[T]) atUnsafe(i uint) T {
	return d.buf[(d.head+i)&d.mask]
}

func (d *Deque[T]) setUnsafe(i uint, t T) {
	d.buf[(d.head+i)&d.mask] = t
}

func (d *Deque[T]) swapUnsafe(i, j uint) {
	a, b := d.atUnsafe(i), d.atUnsafe(j)
	d.setUnsafe(i, b)
	d.setUnsafe(j, a)
}

func (d *Deque[T]) checkBounds(i int) {
	if boundsChecked && (i < 0 || i >= d.Len()) {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.Len()))
	}
}

// Insert alone also accepts pos == Len(), a pure append.
func (d *Deque[T]) checkInsertPos(pos int) {
	if boundsChecked && (pos < 0 || pos > d.Len()) {
		panic(fmt.Sprintf("deque: insert position %d out of bounds with length %d", pos, d.Len()))
	}
}
