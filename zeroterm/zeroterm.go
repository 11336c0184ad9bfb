// Package zeroterm wraps slices whose logical length is marked by a
// zero-valued terminator element rather than carried out of band, the
// convention packed token and descriptor tables use.
package zeroterm

// Array wraps a zero-terminated slice. The wrapper holds no state beyond
// the slice itself; Len rescans on every call.
//
// The caller guarantees a terminator is present. If none is, Len falls
// back to the full slice length instead of running past it.
type Array[T comparable] struct {
	items []T
}

// Wrap returns an Array over items.
//
// The slice is not copied; the caller must keep it immutable for the
// lifetime of the wrapper if Len stability matters.
func Wrap[T comparable](items []T) Array[T] {
	return Array[T]{items: items}
}

// At returns the element at index i. Indexing past the terminator is
// permitted as long as the slice is long enough.
func (a Array[T]) At(i uint32) T {
	return a.items[i]
}

// Len returns the number of elements before the first zero-valued element.
func (a Array[T]) Len() int {
	var zero T
	for i, v := range a.items {
		if v == zero {
			return i
		}
	}
	return len(a.items)
}

// List returns the wrapped slice, terminator included.
func (a Array[T]) List() []T {
	return a.items
}
