package hof

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrRegistryPanic is returned if a registered predicate factory panics during Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// UnknownNameError is returned when a name is not registered.
type UnknownNameError struct{ Name string }

// Error implements the error interface.
func (e UnknownNameError) Error() string {
	// Example: hof: unknown name "gt10"
	return "hof: unknown name " + strconv.Quote(e.Name)
}

// NilPredicateError is returned by Resolve when a name maps to a nil predicate.
type NilPredicateError struct{ Name string }

// Error implements the error interface.
func (e NilPredicateError) Error() string {
	// Example: hof: nil predicate for name "gt10"
	return "hof: nil predicate for name " + strconv.Quote(e.Name)
}

// Registry is a named catalog of predicates and transforms over T.
//
// It is meant to be filled once at startup and then only read, e.g. to turn a
// CLI flag such as --where=gt10 into a Pred[int]. It is not safe for
// concurrent writes.
type Registry[T any] struct {
	preds     map[string]func() Pred[T]
	transform map[string]func(T) T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		preds:     map[string]func() Pred[T]{},
		transform: map[string]func(T) T{},
	}
}

// ProvidePred stores p under name and returns the registry for chaining.
func (r *Registry[T]) ProvidePred(name string, p Pred[T]) *Registry[T] {
	r.preds[name] = func() Pred[T] { return p }
	return r
}

// ProvidePredFactory stores a lazily built predicate under name.
// The factory runs on every lookup.
func (r *Registry[T]) ProvidePredFactory(name string, factory func() Pred[T]) *Registry[T] {
	r.preds[name] = factory
	return r
}

// ProvideFunc stores a transform under name and returns the registry for chaining.
func (r *Registry[T]) ProvideFunc(name string, f func(T) T) *Registry[T] {
	r.transform[name] = f
	return r
}

// Pred returns the predicate registered under name (no panic recovery).
// A nil factory is reported as missing.
func (r *Registry[T]) Pred(name string) (Pred[T], bool) {
	factory, ok := r.preds[name]
	if !ok || factory == nil {
		return nil, false
	}
	return factory(), true
}

// Func returns the transform registered under name.
func (r *Registry[T]) Func(name string) (func(T) T, bool) {
	f, ok := r.transform[name]
	return f, ok
}

// Resolve returns the predicate registered under name.
//
// Misses return UnknownNameError and a nil predicate (stored directly or
// built by a factory) returns NilPredicateError. A panicking factory is
// converted into an error wrapping ErrRegistryPanic.
func (r *Registry[T]) Resolve(name string) (p Pred[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p = nil
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	factory, ok := r.preds[name]
	if !ok {
		return nil, UnknownNameError{Name: name}
	}
	if factory == nil {
		return nil, NilPredicateError{Name: name}
	}
	if p = factory(); p == nil {
		return nil, NilPredicateError{Name: name}
	}
	return p, nil
}

// MustPred returns the predicate or panics with a helpful message.
// Useful in examples/tests where a missing name should fail fast.
func (r *Registry[T]) MustPred(name string) Pred[T] {
	p, ok := r.Pred(name)
	if !ok {
		panic(fmt.Errorf("hof: registry missing predicate %q", name))
	}
	return p
}

// Names returns every registered predicate and transform name, sorted and
// without duplicates.
func (r *Registry[T]) Names() []string {
	seen := make(map[string]struct{}, len(r.preds)+len(r.transform))
	for k := range r.preds {
		seen[k] = struct{}{}
	}
	for k := range r.transform {
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NumberRegistry returns a registry pre-filled with the named specializations
// over int: gt10, gt100, triple, quadruple.
func NumberRegistry() *Registry[int] {
	return NewRegistry[int]().
		ProvidePred("gt10", GreaterThan10).
		ProvidePred("gt100", GreaterThan100).
		ProvideFunc("triple", Triple).
		ProvideFunc("quadruple", Quadruple)
}
