// Package pure memoizes pure functions by their input values.
//
// Memoize is not only a speed-up. Wrapping a function forces the question:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Memoize family wraps functions of one to four arguments, variadic
// functions, and functions with two results. Arguments are keyed by a
// canonical encoding: fmt.Stringer values by String(), everything else by
// its JSON form with sorted map keys, qualified by the Go type. Arguments
// that have neither form (functions, channels) make the call panic.
//
// Every memoized function owns a Table. By default the table is unbounded
// and never evicts; call Table.Clear to release it, or bound it with
// WithMaxEntries. Tables are safe for concurrent use, and concurrent misses
// on one key run the function once.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
