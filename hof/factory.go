package hof

import "cmp"

// Number is the set of types MultiplyBy and AddBy operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// GreaterThan returns a predicate reporting whether its argument is strictly
// greater than n.
//
//	greaterThan10 := hof.GreaterThan(10)
//	greaterThan10(11) // true
//	greaterThan10(10) // false
func GreaterThan[T cmp.Ordered](n T) Pred[T] {
	return func(m T) bool { return m > n }
}

// LessThan returns a predicate reporting whether its argument is strictly
// less than n.
func LessThan[T cmp.Ordered](n T) Pred[T] {
	return func(m T) bool { return m < n }
}

// Between returns a predicate reporting whether lo <= m <= hi.
// If lo > hi the predicate never holds.
func Between[T cmp.Ordered](lo, hi T) Pred[T] {
	return func(m T) bool { return m >= lo && m <= hi }
}

// Equal returns a predicate reporting whether its argument equals v.
func Equal[T comparable](v T) Pred[T] {
	return func(m T) bool { return m == v }
}

// MultiplyBy returns a function that multiplies its argument by n.
func MultiplyBy[T Number](n T) func(T) T {
	return func(m T) T { return m * n }
}

// AddBy returns a function that adds n to its argument.
func AddBy[T Number](n T) func(T) T {
	return func(m T) T { return m + n }
}

// Named specializations. Prefer these at call sites; changing the threshold
// or factor here changes it everywhere.
var (
	GreaterThan10  = GreaterThan(10)
	GreaterThan100 = GreaterThan(100)

	Triple    = MultiplyBy(3)
	Quadruple = MultiplyBy(4)
)
