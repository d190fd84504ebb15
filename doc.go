package quantify

// Package quantify provides:
//
// - Quantified inspection of collections (forAll, forAtLeast, forAtMost,
//   forExactly, forNo, forBetween, forEvery) via Inspect and its wrappers
// - A stable failure model via Report (labelled entries, source locations,
//   nested reports with cause preservation)
// - Container adapters for slices, strings, maps, iterators and untyped
//   platform values
//
// Design policy:
// - Keep only public APIs in the root package; wording lives under phrase/,
//   value rendering under pretty/, the testing front-end under inspectors/.
// - One linear pass per inspection, no shared state; pending/canceled
//   signals and panics cut through aggregation unchanged.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  err := quantify.ForAll(quantify.Of(1, 2, 3), func(n int) error {
//      if n < 10 {
//          return nil
//      }
//      return quantify.Failf("%d was not less than 10", n)
//  })
//  rep, ok := quantify.AsReport(err)
//
