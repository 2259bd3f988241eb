package jsonrpc

import (
	"encoding/json"
)

// Exception is implemented by generated exception types.
type Exception interface {
	error
	// ExceptionName is the name the service puts in error.data.exceptionname.
	ExceptionName() string
}

// ExceptionType lets the invoker materialise one declared exception.
type ExceptionType struct {
	Name string
	New  func() Exception
}

// Declare builds the ExceptionType of a generated exception struct.
func Declare[T any, PT interface {
	*T
	Exception
}]() ExceptionType {
	return ExceptionType{
		Name: PT(new(T)).ExceptionName(),
		New:  func() Exception { return PT(new(T)) },
	}
}

// FormatException renders an exception as its name followed by its JSON payload.
func FormatException(e Exception) string {
	b, err := json.Marshal(e)
	if err != nil {
		return e.ExceptionName()
	}
	return e.ExceptionName() + " " + string(b)
}

const exceptionNameKey = "exceptionname"

// match finds the declared exception named in data, if any. A matched exception whose payload
// does not decode is reported through err.
func match(data json.RawMessage, declared []ExceptionType) (ex Exception, err error) {
	if len(data) == 0 || len(declared) == 0 {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil {
		return nil, nil
	}
	var name string
	if raw, ok := fields[exceptionNameKey]; ok {
		if json.Unmarshal(raw, &name) != nil {
			return nil, nil
		}
	}
	if name == "" {
		return nil, nil
	}
	for _, et := range declared {
		if et.Name != name {
			continue
		}
		ex := et.New()
		if payload, ok := fields[name]; ok {
			if err := json.Unmarshal(payload, ex); err != nil {
				return nil, err
			}
		}
		return ex, nil
	}
	return nil, nil
}
