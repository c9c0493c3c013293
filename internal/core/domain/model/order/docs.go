// Package order provides the Order aggregate for the export order system:
// the central entity carrying client details, line items, computed totals,
// status tracking, and the optional profit/risk analysis snapshot.
//
// Key business rules:
//   - Line totals and the order total value are derived at construction and
//     never trusted from input.
//   - The status set is open: any non-empty status string is accepted, with
//     "created", "documentation", and "completed" carrying pipeline side
//     effects.
//   - Status history is append-only; the current status always equals the
//     last history entry.
//   - Order numbers follow the EXP-<year>-<seq> format with a configurable
//     year-boundary policy.
package order
