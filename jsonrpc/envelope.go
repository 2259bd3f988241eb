package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Version is the only protocol version the service speaks.
const Version = "2.0"

// Request is the outbound JSON-RPC envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint64 `json:"id"`
}

// Response is the inbound JSON-RPC envelope. ID is a pointer so a missing id is distinguishable
// from id 0.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *WireError      `json:"error,omitempty"`
	ID      *uint64         `json:"id"`
}

// WireError is the error member of a response.
type WireError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *WireError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (r *Response) empty() bool {
	return r.JSONRPC == "" && r.ID == nil && r.Error == nil && len(r.Result) == 0
}
