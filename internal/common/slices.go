package common

import "slices"

// Reversed returns a reversed copy of the slice. A nil slice stays nil.
func Reversed[S ~[]E, E any](s S) S {
	out := slices.Clone(s)
	slices.Reverse(out)

	return out
}
