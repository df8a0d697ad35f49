// Package errs provides the standardized error types used across orderboard.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the offending parameter name and an optional Cause
//   - constructors with and without a cause
//   - Error() producing a single-line message, Unwrap() returning the sentinel
//
// The available types cover the recurring failure classes of the application:
// missing values, invalid values, out-of-range values, and lookups that find
// nothing. The order core deliberately swallows ObjectNotFound conditions as
// silent no-ops; the typed errors exist so that handlers can make that decision
// with errors.Is instead of string matching.
package errs
