package hof

// DoWhen calls fn once if cond is true. A nil fn is a no-op.
//
//	hof.DoWhen(hof.GreaterThan10(11), func() { fmt.Println("hey") })
func DoWhen(cond bool, fn func()) {
	if cond && fn != nil {
		fn()
	}
}

// DoUnless calls fn once if cond is false. A nil fn is a no-op.
func DoUnless(cond bool, fn func()) {
	DoWhen(!cond, fn)
}

// DoWhenFunc evaluates p(v) and, if it holds, calls fn with v.
// It reports whether fn was called. A nil p never holds.
func DoWhenFunc[T any](p func(T) bool, v T, fn func(T)) bool {
	if p == nil || !p(v) {
		return false
	}
	if fn != nil {
		fn(v)
	}
	return true
}

// Times calls fn n times with the iteration index. n <= 0 does nothing.
func Times(n int, fn func(i int)) {
	if fn == nil {
		return
	}
	for i := 0; i < n; i++ {
		fn(i)
	}
}
