// Package lens provides accessors that read and replace one part of a value
// without mutating it.
//
// Lens pairs a getter with a setter and is checked at compile time. Field
// addresses a field by name and is checked once, when it is created.
package lens

// Lens focuses on an A inside an S.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// Of builds a lens from a getter and a setter. set must return a new S and
// leave its argument untouched.
func Of[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

func (l Lens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a copy of s with the focused value replaced by a.
func (l Lens[S, A]) Set(s S, a A) S {
	return l.set(s, a)
}

// Change is an alias of Set.
func (l Lens[S, A]) Change(s S, a A) S {
	return l.set(s, a)
}

// Map replaces the focused value with fn applied to it.
func (l Lens[S, A]) Map(s S, fn func(A) A) S {
	return l.set(s, fn(l.get(s)))
}

// Compose focuses through outer and then inner.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}
