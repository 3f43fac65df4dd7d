package hof

// Pred is a predicate over values of type T.
type Pred[T any] func(T) bool

// And returns a predicate that holds when both p and q hold.
// q is not evaluated when p fails.
func (p Pred[T]) And(q Pred[T]) Pred[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that holds when p or q holds.
// q is not evaluated when p holds.
func (p Pred[T]) Or(q Pred[T]) Pred[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Not returns the negation of p.
func (p Pred[T]) Not() Pred[T] {
	return func(v T) bool { return !p(v) }
}

// Negate is the function form of Pred.Not, usable with plain func(T) bool values.
func Negate[T any](p func(T) bool) Pred[T] {
	return func(v T) bool { return !p(v) }
}

// Filter returns the elements of xs for which keep holds, in order.
// The result is never nil.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reject returns the elements of xs for which drop does not hold, in order.
// It is the complement of Filter.
func Reject[T any](xs []T, drop func(T) bool) []T {
	return Filter(xs, Negate(drop))
}

// Partition splits xs into the elements that satisfy p and those that don't.
// Both results preserve input order and are never nil.
func Partition[T any](xs []T, p func(T) bool) (matched, rest []T) {
	matched = make([]T, 0, len(xs))
	rest = make([]T, 0, len(xs))
	for _, x := range xs {
		if p(x) {
			matched = append(matched, x)
		} else {
			rest = append(rest, x)
		}
	}
	return matched, rest
}

// Any reports whether p holds for at least one element. False for empty input.
func Any[T any](xs []T, p func(T) bool) bool {
	for _, x := range xs {
		if p(x) {
			return true
		}
	}
	return false
}

// All reports whether p holds for every element. True for empty input.
func All[T any](xs []T, p func(T) bool) bool {
	for _, x := range xs {
		if !p(x) {
			return false
		}
	}
	return true
}

// Count returns how many elements satisfy p.
func Count[T any](xs []T, p func(T) bool) int {
	n := 0
	for _, x := range xs {
		if p(x) {
			n++
		}
	}
	return n
}
