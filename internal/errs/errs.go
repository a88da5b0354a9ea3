// Package errs defines the error taxonomy shared by the sketching and
// joining pipeline. Kinds are distinguished by sentinel wrapping rather
// than by concrete type, in the manner of the rest of the pipeline.
package errs

import "errors"

// Input-shape errors are reported before any work begins and are fatal
// to the caller that constructed the request.
var ErrInputShape = errors.New("input-shape error")

// ErrResourceExhaustion marks an allocation that was rejected before it
// was attempted because it would exceed a configured memory budget.
var ErrResourceExhaustion = errors.New("resource exhaustion")

// ErrInvariant marks a programming error: a precondition the caller was
// responsible for (e.g. matching sketch widths) did not hold.
var ErrInvariant = errors.New("invariant violation")
