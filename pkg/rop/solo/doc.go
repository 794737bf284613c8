// Package solo contains the synchronous combinators over rop.Result[S, F] that
// change the held types, plus aggregation of many results into one. Every
// function is written against the Result contract only.
//
// Highlights:
// - MapSuccess/MapFailure/Map: transform the held value of the matching variant
// - FlatMapSuccess/FlatMapFailure/FlatMap: bind to a result-returning step
// - Fold: reduce to a concrete value via success/failure handlers
// - Combine/CombineErrors: merge results, collecting every failure
// - Sequence: merge results, stopping at the first failure
package solo
