// Package errs provides standardized error types for the export order
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// Two families of errors live here:
//
//   - Value errors raised by domain validation: ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError, ObjectNotFoundError,
//     VersionIsInvalidError.
//   - Pipeline errors raised by the order processing pipeline: StoreError
//     (record store I/O, retryable), AnalysisDataError (market-intelligence
//     read failure, distinct from "no fresh data"), RenderError (per document
//     kind), LifecycleError (reserved; all transitions are currently
//     accepted).
//
// Each error type follows the same pattern: a sentinel error variable, a
// struct with contextual fields and an optional Cause, constructors with and
// without cause, Error() for formatting, and Unwrap() so errors.Is can
// classify against the sentinel.
package errs
