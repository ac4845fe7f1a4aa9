package dto

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// AWSRequestIDHeader is set by AWS on responses to identify the request.
const AWSRequestIDHeader = "x-amzn-requestid"

// ErrorKind enumerates the closed set of failure classes carried by
// Error. The set is deliberately closed: every failure a client
// operation can produce maps onto exactly one of these.
type ErrorKind uint8

const (
	// ErrService The remote endpoint returned a well-formed,
	// operation-specific error.
	ErrService ErrorKind = iota + 1
	// ErrHTTPDispatch Transport-level failure before a response was obtained.
	ErrHTTPDispatch
	// ErrInvalidDNSName The bucket name cannot be used for
	// virtual-hosted addressing.
	ErrInvalidDNSName
	// ErrCredentials Credential resolution or a signing prerequisite failed.
	ErrCredentials
	// ErrValidation Caller-provided input rejected before any network call.
	ErrValidation
	// ErrParse The response body could not be decoded into the expected shape.
	ErrParse
	// ErrUnknown The endpoint returned a response this client could not
	// classify; the raw response is captured for inspection.
	ErrUnknown
	// ErrBlocking Internal failure to run an asynchronous operation in a
	// blocking context.
	ErrBlocking
)

func (k ErrorKind) String() string {
	switch k {
	case ErrService:
		return "service"
	case ErrHTTPDispatch:
		return "http_dispatch"
	case ErrInvalidDNSName:
		return "invalid_dns_name"
	case ErrCredentials:
		return "credentials"
	case ErrValidation:
		return "validation"
	case ErrParse:
		return "parse"
	case ErrUnknown:
		return "unknown"
	case ErrBlocking:
		return "blocking"
	default:
		return "unclassified"
	}
}

const blockingMessage = "failed to run blocking request"

// Error is the layered error value every operation result is built on,
// generic over the service-specific payload E. Instances are immutable
// once constructed; they either wrap a lower-level cause or carry a
// descriptive string / captured response.
type Error[E error] struct {
	kind     ErrorKind
	service  E
	cause    error
	message  string
	response Response
}

// S3Error is the instantiation used by the S3 client.
type S3Error = Error[*ServiceError]

func NewService[E error](payload E) *Error[E] {
	return &Error[E]{kind: ErrService, service: payload}
}

func NewDispatch[E error](cause *HTTPDispatchError) *Error[E] {
	return &Error[E]{kind: ErrHTTPDispatch, cause: cause}
}

func NewInvalidDNSName[E error](cause *InvalidDnsNameError) *Error[E] {
	return &Error[E]{kind: ErrInvalidDNSName, cause: cause}
}

func NewCredentials[E error](cause *CredentialsError) *Error[E] {
	return &Error[E]{kind: ErrCredentials, cause: cause}
}

func NewValidation[E error](message string) *Error[E] {
	return &Error[E]{kind: ErrValidation, message: message}
}

func NewParse[E error](message string) *Error[E] {
	return &Error[E]{kind: ErrParse, message: message}
}

func NewUnknown[E error](resp Response) *Error[E] {
	return &Error[E]{kind: ErrUnknown, response: resp}
}

func NewBlocking[E error]() *Error[E] {
	return &Error[E]{kind: ErrBlocking}
}

func (e *Error[E]) Kind() ErrorKind { return e.kind }

// Service returns the service payload when Kind is ErrService.
func (e *Error[E]) Service() (E, bool) {
	var zero E
	if e.kind != ErrService {
		return zero, false
	}
	return e.service, true
}

// Response returns the captured raw response when Kind is ErrUnknown.
func (e *Error[E]) Response() (Response, bool) {
	if e.kind != ErrUnknown {
		return Response{}, false
	}
	return e.response, true
}

// Error defers to the wrapped value's own rendering wherever one
// exists. The Unknown rendering always includes the request-id header
// value and the raw body text, the only diagnostics a caller has for
// an unclassified response.
func (e *Error[E]) Error() string {
	switch e.kind {
	case ErrService:
		return e.service.Error()
	case ErrValidation, ErrParse:
		return e.message
	case ErrCredentials, ErrHTTPDispatch, ErrInvalidDNSName:
		return e.cause.Error()
	case ErrUnknown:
		requestID := "none found"
		if id, ok := e.response.RequestID(); ok {
			requestID = id
		}
		return fmt.Sprintf("Request ID: %s Body: %s", requestID, e.response.BodyAsString())
	case ErrBlocking:
		return blockingMessage
	default:
		return "unclassified error"
	}
}

// Unwrap exposes the causal chain only for the Service, Credentials and
// HTTPDispatch variants; the remaining variants are leaves.
func (e *Error[E]) Unwrap() error {
	switch e.kind {
	case ErrService:
		return e.service
	case ErrCredentials, ErrHTTPDispatch:
		return e.cause
	default:
		return nil
	}
}

// Conversions. Each is total and keeps the original cause intact.

// FromDecode lifts a response-body decode failure into the Parse variant.
func FromDecode[E error](err error) *Error[E] {
	return NewParse[E](err.Error())
}

func FromCredentials[E error](err *CredentialsError) *Error[E] {
	return NewCredentials[E](err)
}

func FromDispatch[E error](err *HTTPDispatchError) *Error[E] {
	return NewDispatch[E](err)
}

func FromDNS[E error](err *InvalidDnsNameError) *Error[E] {
	return NewInvalidDNSName[E](err)
}

// FromSignAndDispatch case-splits a combined sign-or-dispatch failure:
// a failure during credential signing becomes Credentials, a failure
// during dispatch becomes HTTPDispatch.
func FromSignAndDispatch[E error](err *SignAndDispatchError) *Error[E] {
	if err.Credentials != nil {
		return FromCredentials[E](err.Credentials)
	}
	return FromDispatch[E](err.Dispatch)
}

// LiftError converts any lower-level failure into the algebra. Typed
// causes map onto their variants; anything else is treated as a raw
// dispatch failure, matching how transport and I/O errors surface.
func LiftError[E error](err error) *Error[E] {
	var lifted *Error[E]
	if errors.As(err, &lifted) {
		return lifted
	}
	var dnsErr *InvalidDnsNameError
	if errors.As(err, &dnsErr) {
		return FromDNS[E](dnsErr)
	}
	var credErr *CredentialsError
	if errors.As(err, &credErr) {
		return FromCredentials[E](credErr)
	}
	var dispatchErr *HTTPDispatchError
	if errors.As(err, &dispatchErr) {
		return FromDispatch[E](dispatchErr)
	}
	var sadErr *SignAndDispatchError
	if errors.As(err, &sadErr) {
		return FromSignAndDispatch[E](sadErr)
	}
	return FromDispatch[E](NewHTTPDispatchError(err))
}

// InvalidDnsNameError means a bucket name is unusable for
// virtual-hosted-style addressing.
type InvalidDnsNameError struct {
	message string
}

func NewInvalidDnsNameError(message string) *InvalidDnsNameError {
	return &InvalidDnsNameError{message: message}
}

func (e *InvalidDnsNameError) Error() string { return e.message }

// CredentialsError means credential resolution or a signing
// prerequisite failed.
type CredentialsError struct {
	Message string
	cause   error
}

func NewCredentialsError(message string) *CredentialsError {
	return &CredentialsError{Message: message}
}

// WrapCredentialsError keeps the original cause reachable via Unwrap.
func WrapCredentialsError(err error) *CredentialsError {
	return &CredentialsError{Message: err.Error(), cause: err}
}

func (e *CredentialsError) Error() string { return e.Message }
func (e *CredentialsError) Unwrap() error { return e.cause }

// HTTPDispatchError is a transport-level failure: connection, TLS,
// timeout, or raw I/O before a response was obtained.
type HTTPDispatchError struct {
	message string
	cause   error
}

func NewHTTPDispatchError(err error) *HTTPDispatchError {
	return &HTTPDispatchError{message: err.Error(), cause: err}
}

func NewHTTPDispatchErrorMessage(message string) *HTTPDispatchError {
	return &HTTPDispatchError{message: message}
}

func (e *HTTPDispatchError) Error() string { return e.message }
func (e *HTTPDispatchError) Unwrap() error { return e.cause }

// SignAndDispatchError is a combined failure from a sign-then-dispatch
// sequence. Exactly one of the two fields is set.
type SignAndDispatchError struct {
	Credentials *CredentialsError
	Dispatch    *HTTPDispatchError
}

func (e *SignAndDispatchError) Error() string {
	if e.Credentials != nil {
		return e.Credentials.Error()
	}
	if e.Dispatch != nil {
		return e.Dispatch.Error()
	}
	return "sign and dispatch error"
}

// ServiceError is the S3 service payload: a well-formed error the
// endpoint reported for a specific operation. It satisfies
// smithy.APIError so callers can classify it the same way they
// classify raw SDK failures.
type ServiceError struct {
	Code      string
	Message   string
	RequestID string
	Fault     smithy.ErrorFault
}

func (e *ServiceError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (request id: %s)", e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) ErrorCode() string             { return e.Code }
func (e *ServiceError) ErrorMessage() string          { return e.Message }
func (e *ServiceError) ErrorFault() smithy.ErrorFault { return e.Fault }
