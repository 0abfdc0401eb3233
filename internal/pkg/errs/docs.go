// Package errs defines the error types of the fulfillment pipeline.
//
// Four types cover its failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid (e.g. a malformed rate SKU)
//   - ObjectNotFoundError: a lookup found nothing (e.g. an unknown state name)
//   - UpstreamError: a call to an external provider failed, tagged with the
//     pipeline stage that issued it (shipment, label, tracking, email)
//
// Each type follows the same pattern: a sentinel error variable
// (e.g. ErrUpstreamFailure), a struct carrying the detail fields, constructors
// with and without a cause, Error() formatting and Unwrap() to the sentinel.
// The webhook layer classifies pipeline failures into its tagged JSON error
// shape by matching on these types.
package errs
