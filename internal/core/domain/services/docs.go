// Package services provides domain services that implement business logic
// spanning multiple aggregates of the export pipeline.
//
// The package includes:
//   - ProfitAnalyzer: scores an order's expected profitability from its line
//     items and fresh market intelligence
//   - RequirementResolver: resolves the set of export documents an order
//     requires
//
// Domain services stay free of I/O; repositories and renderers are invoked by
// the application layer around them.
package services
