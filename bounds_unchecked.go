//go:build deque_unchecked

package deque

// Unchecked build: bounds violations are undefined behavior. See bounds.go.
const boundsChecked = false
