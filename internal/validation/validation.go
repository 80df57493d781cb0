// Package validation validates request payloads.
//
// Request types declare rules with validator struct tags (required, email,
// min, ...) and implement Validatable; this package binds the incoming
// request, runs validation, and converts failures into the field-level
// error format clients expect.
package validation
