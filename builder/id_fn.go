// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn generates a step identifier from its zero-based position in a
// constructor. It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// OneBasedIDFn numbers steps from one: 0→"1", 3→"4". This matches the
// chemical convention of numbering elementary steps in mechanism order.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// PrefixedIDFn returns an IDFn producing prefix+"1", prefix+"2", ...
// Useful when several cycles are composed into one network.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx+1) }
}
