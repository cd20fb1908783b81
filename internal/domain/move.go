package domain

import "slices"

// MoveElement returns a copy of s with the element at index from moved to
// index to. Elements between the two positions shift by one slot toward from.
// Out-of-range indices return an unmodified copy.
func MoveElement[T any](s []T, from, to int) []T {
	out := slices.Clone(s)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	elem := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, elem)
}
