package bferrors

import (
	"context"
	"errors"
)

// ClassifyTransportCode maps a network-layer error to a stable Code.
func ClassifyTransportCode(err error) Code {
	return classifyContextCode(err, CodeRequestFailed)
}

// ClassifyLoginCode maps a login transport error to a stable Code.
func ClassifyLoginCode(err error) Code {
	return classifyContextCode(err, CodeLoginFailed)
}

// Transport wraps err as a TransportError at stage, classifying context errors.
func Transport(stage Stage, subject string, err error) error {
	return &Error{Kind: KindTransport, Stage: stage, Code: ClassifyTransportCode(err), Subject: subject, Err: err}
}

// Retryable reports whether err is a transient failure worth another attempt.
//
// Cancellation and rejections by the remote side are never retryable.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case CodeTimeout, CodeRequestFailed, CodeLoginFailed, CodeHTTPStatus:
		return true
	default:
		return false
	}
}

func classifyContextCode(err error, fallback Code) Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	default:
		return fallback
	}
}
