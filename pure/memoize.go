package pure

// Memoize1 caches pureFn by its argument. The returned Table owns the cache.
func Memoize1[I1, O any](
	pureFn func(I1) O,
	opts ...MemoOption,
) (func(I1) O, *Table) {
	table := newTable(opts)
	return func(i1 I1) O {
		return lookup(table, func() O {
			return pureFn(i1)
		}, i1)
	}, table
}

func Memoize2[I1, I2, O any](
	pureFn func(I1, I2) O,
	opts ...MemoOption,
) (func(I1, I2) O, *Table) {
	table := newTable(opts)
	return func(i1 I1, i2 I2) O {
		return lookup(table, func() O {
			return pureFn(i1, i2)
		}, i1, i2)
	}, table
}

func Memoize3[I1, I2, I3, O any](
	pureFn func(I1, I2, I3) O,
	opts ...MemoOption,
) (func(I1, I2, I3) O, *Table) {
	table := newTable(opts)
	return func(i1 I1, i2 I2, i3 I3) O {
		return lookup(table, func() O {
			return pureFn(i1, i2, i3)
		}, i1, i2, i3)
	}, table
}

func Memoize4[I1, I2, I3, I4, O any](
	pureFn func(I1, I2, I3, I4) O,
	opts ...MemoOption,
) (func(I1, I2, I3, I4) O, *Table) {
	table := newTable(opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return lookup(table, func() O {
			return pureFn(i1, i2, i3, i4)
		}, i1, i2, i3, i4)
	}, table
}

// MemoizeVariadic caches pureFn by its whole argument list. Calls with no
// arguments share one entry.
func MemoizeVariadic[A, O any](
	pureFn func(...A) O,
	opts ...MemoOption,
) (func(...A) O, *Table) {
	table := newTable(opts)
	return func(args ...A) O {
		keyArgs := make([]any, len(args))
		for i, arg := range args {
			keyArgs[i] = arg
		}
		return lookup(table, func() O {
			return pureFn(args...)
		}, keyArgs...)
	}, table
}

type pair[O1, O2 any] struct {
	O1 O1
	O2 O2
}

// Memoize1Pair caches both results of pureFn, typically a (value, error)
// pair.
func Memoize1Pair[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...MemoOption,
) (func(I1) (O1, O2), *Table) {
	table := newTable(opts)
	return func(i1 I1) (O1, O2) {
		res := lookup(table, func() pair[O1, O2] {
			o1, o2 := pureFn(i1)
			return pair[O1, O2]{O1: o1, O2: o2}
		}, i1)
		return res.O1, res.O2
	}, table
}

func Memoize2Pair[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...MemoOption,
) (func(I1, I2) (O1, O2), *Table) {
	table := newTable(opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := lookup(table, func() pair[O1, O2] {
			o1, o2 := pureFn(i1, i2)
			return pair[O1, O2]{O1: o1, O2: o2}
		}, i1, i2)
		return res.O1, res.O2
	}, table
}
