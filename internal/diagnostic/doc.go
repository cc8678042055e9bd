// Package diagnostic provides the structured validation errors that plugins
// report instead of failing.
//
// Key capabilities:
//   - Errors and warnings tagged with a code, the type and the attribute
//   - Aggregation across plugins in registration order
//   - A combined error value for callers that only need pass/fail
package diagnostic
