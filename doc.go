// Package parcoll provides bounded-concurrency fan-out/fan-in operations over
// slices: Map, Filter, ForEach, Reduce, a context-aware Try* family with
// structured cancellation, and sequential batching helpers.
//
// Families
//   - Synchronous (Map, CompactMap, Filter, ForEach, ForEachIndexed, Reduce):
//     no error channel; transforms must be total. Calls block until every
//     dispatched unit has completed. There is no cancellation path.
//   - Structured async (TryMap, TryFilter, TryForEach): each element runs in
//     its own goroutine inside a scope that owns every task's lifetime. The
//     first failure observed cancels the scope context and is the only error
//     surfaced; no partial results are returned on failure.
//   - Sequential batching (Batches, BatchMap): no concurrency at all.
//
// Ordering
// Map, CompactMap, Filter, TryMap and TryFilter always produce output in
// input order, independent of completion order: each unit writes its result
// at its own input index. ForEach and TryForEach give no ordering guarantee
// on side effects across units.
//
// Concurrency bounds
// Unless overridden, concurrency is bounded only by the host scheduler (one
// goroutine per element). WithLimit(n) caps simultaneously active transform
// invocations at n via a counting permit gate; units may start in any order
// but never more than n execute at once.
//
// State
// Every call creates its structures fresh and discards them on return. The
// package holds no process-wide mutable state.
package parcoll
