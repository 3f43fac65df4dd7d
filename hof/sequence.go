package hof

// Map applies f to every element of xs and returns the results in order.
// The result is never nil.
func Map[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Reduce folds xs from the left, starting at init.
func Reduce[T, A any](xs []T, init A, f func(acc A, x T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Compose returns a function that applies f and then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Pipe chains endomorphisms left to right. Nil entries are skipped and an
// empty pipe is the identity.
//
//	hof.Pipe(hof.Triple, hof.AddBy(1))(2) // 7
func Pipe[T any](fs ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fs {
			if f != nil {
				v = f(v)
			}
		}
		return v
	}
}
