package bferrors

import (
	"errors"
	"fmt"
)

// Kind is the taxonomy bucket of an error. Every error produced by this module maps to exactly one Kind.
type Kind string

const (
	KindSchema     Kind = "schema"
	KindResolution Kind = "resolution"
	KindAuth       Kind = "auth"
	KindProtocol   Kind = "protocol"
	KindTransport  Kind = "transport"
	// KindException marks a typed exception declared by the called operation.
	KindException Kind = "exception"
)

// Stage identifies which step failed.
type Stage string

const (
	StageParse     Stage = "parse"
	StageResolve   Stage = "resolve"
	StageEmit      Stage = "emit"
	StageLogin     Stage = "login"
	StageKeepAlive Stage = "keepalive"
	StageLogout    Stage = "logout"
	StageSession   Stage = "session"
	StageEncode    Stage = "encode"
	StageSend      Stage = "send"
	StageDecode    Stage = "decode"
)

// Code is a stable, programmatic error identifier.
type Code string

const (
	CodeTimeout  Code = "timeout"
	CodeCanceled Code = "canceled"

	CodeInvalidDocument    Code = "invalid_document"
	CodeUnknownElement     Code = "unknown_element"
	CodeUnknownAttribute   Code = "unknown_attribute"
	CodeMissingAttribute   Code = "missing_attribute"
	CodeInvalidAttribute   Code = "invalid_attribute"
	CodeInvalidType        Code = "invalid_type"
	CodeUnexpectedText     Code = "unexpected_text"
	CodeDuplicateType      Code = "duplicate_type"
	CodeDuplicateField     Code = "duplicate_field"
	CodeDuplicateOperation Code = "duplicate_operation"
	CodeDuplicateValue     Code = "duplicate_value"

	CodeUnknownType         Code = "unknown_type"
	CodeNotException        Code = "not_exception"
	CodeInvalidMapKey       Code = "invalid_map_key"
	CodeInvalidEnum         Code = "invalid_enum"
	CodeEmbeddingCycle      Code = "embedding_cycle"
	CodeIdentifierCollision Code = "identifier_collision"
	CodeRenderFailed        Code = "render_failed"

	CodeNotAuthenticated  Code = "not_authenticated"
	CodeMissingCredential Code = "missing_credentials"
	CodeCertificate       Code = "certificate"
	CodeLoginRejected     Code = "login_rejected"
	CodeLoginFailed       Code = "login_failed"
	CodeKeepAliveRejected Code = "keepalive_rejected"
	CodeLogoutFailed      Code = "logout_failed"

	CodeEncodeFailed      Code = "encode_failed"
	CodeIDMismatch        Code = "id_mismatch"
	CodeUndeclaredError   Code = "undeclared_error"
	CodeMalformedResponse Code = "malformed_response"
	CodeResponseTooLarge  Code = "response_too_large"

	CodeRequestFailed Code = "request_failed"
	CodeHTTPStatus    Code = "http_status"
	CodeRateLimited   Code = "rate_limited"
)

// Error is a structured, programmatically identifiable error.
type Error struct {
	Kind  Kind
	Stage Stage
	Code  Code
	// Subject names the offending element (type, field, operation or method), if any.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := fmt.Sprintf("%s %s (%s)", e.Kind, e.Stage, e.Code)
	if e.Subject != "" {
		head += " " + e.Subject
	}
	if e.Err != nil {
		return head + ": " + e.Err.Error()
	}
	return head
}

func (e *Error) Unwrap() error { return e.Err }

func Wrap(kind Kind, stage Stage, code Code, err error) error {
	return &Error{Kind: kind, Stage: stage, Code: code, Err: err}
}

// New builds an Error about subject with a formatted detail message.
func New(kind Kind, stage Stage, code Code, subject string, format string, args ...any) error {
	var detail error
	if format != "" {
		detail = fmt.Errorf(format, args...)
	}
	return &Error{Kind: kind, Stage: stage, Code: code, Subject: subject, Err: detail}
}

// ErrNotAuthenticated is returned when no session token is held.
var ErrNotAuthenticated = &Error{Kind: KindAuth, Stage: StageSession, Code: CodeNotAuthenticated}

// exception is implemented by generated exception types.
type exception interface {
	error
	ExceptionName() string
}

// KindOf reports the taxonomy Kind of err, or "" when err is nil or foreign.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ex exception
	if errors.As(err, &ex) {
		return KindException
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return ""
}

// CodeOf reports the Code of the first *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return ""
}

func IsSchema(err error) bool     { return KindOf(err) == KindSchema }
func IsResolution(err error) bool { return KindOf(err) == KindResolution }
func IsAuth(err error) bool       { return KindOf(err) == KindAuth }
func IsProtocol(err error) bool   { return KindOf(err) == KindProtocol }
func IsTransport(err error) bool  { return KindOf(err) == KindTransport }
func IsException(err error) bool  { return KindOf(err) == KindException }
