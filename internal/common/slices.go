package common

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// UniqueBy returns the elements of s whose key was not seen before, keeping
// the first occurrence. Elements with an empty key are dropped.
func UniqueBy[S ~[]E, E any](s S, key func(E) string) S {
	if len(s) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		k := key(e)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, e)
	}

	return out
}
