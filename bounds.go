//go:build !deque_unchecked

package deque

// boundsChecked selects the checked build, the safe default. Index, backward
// index, and slice bound violations panic with a descriptive message.
//
// Building with -tags deque_unchecked flips this constant to false and the
// compiler eliminates every check; out-of-range access then reads or writes
// the wrong live slot, or garbage, with no diagnostic. Hot paths pay no
// runtime branch for the toggle itself.
const boundsChecked = true
