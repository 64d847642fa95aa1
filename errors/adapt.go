package errors

import (
	"context"
	"errors"
)

// ToErrorResponse converts any error into ErrorResponse (transport-agnostic).
// Supported inputs:
// - ErrorResponse / *ErrorResponse (direct passthrough)
// - context.Canceled / context.DeadlineExceeded
// - errors returned by the iban package
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if errors.Is(err, context.Canceled) {
		return Canceled()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded()
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}
	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	if _, ok := IBANReason(err); ok {
		return FromIBAN("", err)
	}

	return Internal().WithReason("unexpected_error")
}
