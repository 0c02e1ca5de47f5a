package machine

// Field reads the label with get and treats the zero label as absent.
func Field[S any, L comparable](get func(S) L) LabelFunc[S, L] {
	return func(state S) (L, bool) {
		var zero L
		l := get(state)
		return l, l != zero
	}
}

// Pointer is Field for pointer states: a nil state is absent and get is never
// called with nil.
func Pointer[T any, L comparable](get func(*T) L) LabelFunc[*T, L] {
	return func(state *T) (L, bool) {
		var zero L
		if state == nil {
			return zero, false
		}
		l := get(state)
		return l, l != zero
	}
}
