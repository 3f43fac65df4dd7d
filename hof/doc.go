// Package hof provides small, generic higher-order function helpers for Go.
//
// A higher-order function is a function that takes a function as an argument,
// returns a function, or both. The package groups them into three families:
//
//   - Factories: GreaterThan, LessThan, Between, Equal, MultiplyBy, AddBy.
//     Each returns a specialized function parameterized by its argument.
//     Named specializations (GreaterThan10, Triple, ...) read better at the
//     call site than GreaterThan(10) and give a single point for change.
//
//   - Predicates: Pred[T] plus sequence helpers (Filter, Reject, Partition,
//     Any, All, Count) that accept small reusable checks such as zoo.IsDog.
//
//   - Control flow: DoWhen, DoUnless, DoWhenFunc and Times take the action
//     as a function and decide whether (or how often) to run it.
//
// A Registry names predicates and transforms so they can be resolved at
// runtime (for example from CLI flags).
//
// Nothing in this package allocates state beyond the closures it returns,
// and every returned function is safe for concurrent use as long as the
// functions passed in are.
//
// Import
//
//	"github.com/sghaida/hof/hof"
package hof
