package jsonrpc

import (
	"context"
	"encoding/json"

	"github.com/floegence/bfapi/bferrors"
)

// Caller performs one JSON-RPC exchange and returns the raw result.
type Caller interface {
	Invoke(ctx context.Context, method string, params any, exceptions []ExceptionType) (json.RawMessage, error)
}

// Call invokes method and decodes the result as T.
func Call[T any](ctx context.Context, c Caller, method string, params any, exceptions []ExceptionType) (T, error) {
	var out T
	raw, err := c.Invoke(ctx, method, params, exceptions)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &bferrors.Error{Kind: bferrors.KindProtocol, Stage: bferrors.StageDecode, Code: bferrors.CodeMalformedResponse, Subject: method, Err: err}
	}
	return out, nil
}
