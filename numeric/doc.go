// Package numeric implements lumen's polymorphic Number runtime: the
// tagged-value encoding, heap-boxed int32/int64/float32/float64/rational
// representations, and the arithmetic, comparison and bitwise operators
// that dispatch across them.
//
// The package is independent of how values reach it. Lexing, parsing,
// type checking and constant folding live outside this package; they
// construct Numbers through the predicates and boxing constructors
// exposed here and hand them to a Runtime.
package numeric
