package domain

// FirstSet returns the value behind the first non-nil pointer, or fallback
// when every pointer is nil. Stored records use it to read a field that may
// appear under its current name or a legacy one.
func FirstSet[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
