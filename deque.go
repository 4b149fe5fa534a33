package deque

import (
	"errors"
	"iter"
	"math/bits"
)

// Deque is a double-ended queue backed by a ring buffer. It supports O(1)
// amortized insertion and removal at both ends, O(1) random access, and
// efficient slicing, positional insert/delete, and rotation.
//
// To create a Deque instance, you must use one of the available constructors,
// New(), NewWithCapacity(cap), FromSlice(s), Collect(seq), or Clone(). nil
// Deques panic when called, except where documented otherwise. Creating a
// Deque in the following way is wrong:
//
//	var deque Deque[int] // wrong
//
// The underlying buffer always has a power of two length, at least 2. If a
// Deque overflows its buffer, it reallocates to the next power of two that
// fits. It never shrinks on its own; use Shrink, SetCap, SetLen, or Reset.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	buf              []T
	head, tail, mask uint
}

const (
	defaultCapacity = 4
	minCapacity     = 2
)

// ErrNegativeCapacity is returned when a negative capacity is requested.
var ErrNegativeCapacity = errors.New("deque: capacity cannot be negative")

// ErrNegativeLength is returned when a negative length is requested.
var ErrNegativeLength = errors.New("deque: length cannot be negative")

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New allocates a Deque with the default capacity of 4.
func New[T any]() *Deque[T] {
	d, _ := NewWithCapacity[T](defaultCapacity)
	return d
}

// NewWithCapacity takes in the desired capacity. If the supplied capacity is
// not a power of two, it is increased to the next power of two, with a floor
// of 2. Returns an error if passed a negative value.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	c := ceilPow2(uint(capacity))
	return &Deque[T]{buf: make([]T, c), mask: c - 1}, nil
}

// FromSlice allocates a new buffer rounding len(s) up to a power of two and
// copies every element of the slice into it. Memory is not shared with s.
func FromSlice[T any](s []T) *Deque[T] {
	d, _ := NewWithCapacity[T](len(s))
	copy(d.buf, s)
	d.tail = uint(len(s))
	return d
}

// Collect drains seq into a new Deque, front to back.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := New[T]()
	for t := range seq {
		d.PushBack(t)
	}
	return d
}

// Clone returns a deep copy of the Deque with the same capacity. The clone's
// elements are linearized, so its physical layout may differ from d's.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{buf: make([]T, len(d.buf)), tail: d.len(), mask: d.mask}
	d.CopyTo(c.buf)
	return c
}

/*****************************************************************************
 * INSPECTION
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.len())
}

// head and tail are free-running counters; their difference is exact under
// unsigned wraparound no matter how many times either has wrapped.
func (d *Deque[T]) len() uint { return d.tail - d.head }

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int  { return len(d.buf) }
func (d *Deque[T]) cap() uint { return uint(len(d.buf)) }

// Empty returns whether the Deque has no elements.
func (d *Deque[T]) Empty() bool { return d.head == d.tail }

// Full returns whether the Deque is at capacity. Pushing to a full Deque
// reallocates.
func (d *Deque[T]) Full() bool { return d.len() == d.cap() }

// Low returns the lowest valid index, 0, or -1 if the Deque is empty.
func (d *Deque[T]) Low() int {
	if d.Empty() {
		return -1
	}
	return 0
}

// High returns the highest valid index, Len()-1, or -1 if the Deque is empty.
func (d *Deque[T]) High() int { return d.Len() - 1 }

/*****************************************************************************
 * PUSH / POP / DROP
 *****************************************************************************/

// PushBack appends its arguments to the back of the Deque. The last argument
// becomes the new back. Use PushBack with PopFront for FIFO ordering, or with
// PopBack for LIFO ordering.
//
// PushBack reallocates at most once, no matter how many arguments. It is more
// efficient to push multiple elements at once.
func (d *Deque[T]) PushBack(ts ...T) {
	d.ensureRoom(uint(len(ts)))
	for i, t := range ts {
		d.buf[(d.tail+uint(i))&d.mask] = t
	}
	d.tail += uint(len(ts))
}

// PushFront puts its arguments at the front of the Deque, the last argument
// becoming the new front.
//
// PushFront reallocates at most once, no matter how many arguments. It is
// more efficient to push multiple elements at once.
func (d *Deque[T]) PushFront(ts ...T) {
	d.ensureRoom(uint(len(ts)))
	base := d.head - 1
	for i, t := range ts {
		d.buf[(base-uint(i))&d.mask] = t
	}
	d.head -= uint(len(ts))
}

// PopFront removes the first element and returns it, or returns false if the
// Deque is empty. The vacated slot is zeroed so that any references the
// element held are released.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	slot := &d.buf[d.head&d.mask]
	t = *slot
	var zero T
	*slot = zero
	d.head++
	return t, true
}

// PopBack removes the last element and returns it, or returns false if the
// Deque is empty. The vacated slot is zeroed so that any references the
// element held are released.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	slot := &d.buf[(d.tail-1)&d.mask]
	t = *slot
	var zero T
	*slot = zero
	d.tail--
	return t, true
}

// DropFront discards the n first elements and zeroes their slots. If the
// Deque has fewer than n elements, every element is dropped. Dropping a
// negative count does nothing.
func (d *Deque[T]) DropFront(n int) {
	if n <= 0 {
		return
	}
	k := min(uint(n), d.len())
	var zero T
	// Iterate by count: the free-running counters wrap, so comparing raw
	// counter values would skip the loop entirely.
	for j := uint(0); j < k; j++ {
		d.buf[(d.head+j)&d.mask] = zero
	}
	d.head += k
}

// DropBack discards the n last elements and zeroes their slots. If the Deque
// has fewer than n elements, every element is dropped. Dropping a negative
// count does nothing.
func (d *Deque[T]) DropBack(n int) {
	if n <= 0 {
		return
	}
	k := min(uint(n), d.len())
	var zero T
	for j := uint(1); j <= k; j++ {
		d.buf[(d.tail-j)&d.mask] = zero
	}
	d.tail -= k
}

// Shrink discards fromFront elements at the front and fromBack elements at
// the back. Each count is clamped to what remains, front dropped first.
// Capacity is kept.
func (d *Deque[T]) Shrink(fromFront, fromBack int) {
	d.DropFront(fromFront)
	d.DropBack(fromBack)
}

/*****************************************************************************
 * CAPACITY MANAGEMENT
 *****************************************************************************/

// Clear empties the Deque, zeroing every slot it occupied. Capacity is kept.
func (d *Deque[T]) Clear() {
	length := d.len()
	var zero T
	for j := uint(0); j < length; j++ {
		d.buf[(d.head+j)&d.mask] = zero
	}
	d.head, d.tail = 0, 0
}

// Reset empties the Deque and replaces its buffer with a fresh one of the
// requested capacity, rounded up to a power of two with a floor of 2.
// Returns an error if capacity is negative, leaving the Deque untouched.
func (d *Deque[T]) Reset(capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	c := ceilPow2(uint(capacity))
	d.buf = make([]T, c)
	d.mask = c - 1
	d.head, d.tail = 0, 0
	return nil
}

// SetCap resizes the buffer to the requested capacity, rounded up to a power
// of two with a floor of 2. Shrinking below the current length keeps only
// the first newCap elements and discards the rest. Returns an error if
// capacity is negative.
func (d *Deque[T]) SetCap(capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	c := ceilPow2(uint(capacity))
	if c == d.cap() {
		return nil
	}
	if c < d.len() {
		d.DropBack(int(d.len() - c))
	}
	d.realloc(c)
	return nil
}

// SetLen grows or shrinks the Deque to exactly n elements. Growing exposes
// zero values at the back; callers are expected to follow with writes.
// Shrinking drops from the back. Returns an error if n is negative.
func (d *Deque[T]) SetLen(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if grow := uint(n) - d.len(); uint(n) > d.len() {
		d.ensureRoom(grow)
		d.tail += grow
	} else {
		d.DropBack(int(d.len() - uint(n)))
	}
	return nil
}

// Reserve ensures there is room to add at least n more elements without
// reallocating. Returns an error if n is negative.
func (d *Deque[T]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	d.ensureRoom(uint(n))
	return nil
}

// ensureRoom reallocates if the current buffer cannot hold additional more
// elements. Every operation that adds elements funnels through here.
func (d *Deque[T]) ensureRoom(additional uint) {
	if n := d.len() + additional; n > d.cap() {
		d.realloc(ceilPow2(n))
	}
}

// realloc moves the live elements, in logical order, into slots 0..len-1 of
// a fresh buffer of size newCap. newCap must be a power of two >= d.len().
func (d *Deque[T]) realloc(newCap uint) {
	length := d.len()
	buf := make([]T, newCap)
	d.CopyTo(buf)
	d.buf = buf
	d.head, d.tail = 0, length
	d.mask = newCap - 1
}

// normalize relocates the live elements so head lands on physical slot 0,
// giving positional shifts a contiguous buffer to work on.
func (d *Deque[T]) normalize() {
	length := d.len()
	if d.head&d.mask == 0 {
		// Already contiguous from slot 0; just rebase the counters.
		d.head, d.tail = 0, length
		return
	}
	d.realloc(d.cap())
}

/*****************************************************************************
 * LINEARIZED COPIES
 *****************************************************************************/

// slices returns the live elements as one or two contiguous subslices of the
// backing buffer, in logical order. Both are nil when the Deque is empty.
func (d *Deque[T]) slices() (a, b []T) {
	if d == nil || d.Empty() {
		return nil, nil
	}
	h := d.head & d.mask
	t := d.tail & d.mask
	if h < t {
		return d.buf[h:t], nil
	}
	return d.buf[h:], d.buf[:t]
}

// ToSlice allocates a slice holding every element in logical order. Prefer
// CopyTo for memory reuse.
func (d *Deque[T]) ToSlice() []T {
	s := make([]T, d.Len())
	d.CopyTo(s)
	return s
}

// CopyTo copies elements into dst, front first, stopping when dst is full or
// the Deque is exhausted. It returns the number of elements copied, which is
// the minimum of len(dst) and d.Len().
func (d *Deque[T]) CopyTo(dst []T) int {
	s1, s2 := d.slices()
	n := copy(dst, s1)
	n += copy(dst[n:], s2)
	return n
}

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// ceilPow2 rounds x up to the next power of two, with a floor of 2 so the
// mask trick stays valid even for tiny deques.
func ceilPow2(x uint) uint {
	if x <= minCapacity {
		return minCapacity
	}
	return 1 << (bits.UintSize - bits.LeadingZeros(x-1))
}
