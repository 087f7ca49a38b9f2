// Package errors defines the error taxonomy surfaced by every API operation.
//
// Failures split into two levels: *APIError for structured failures the
// server reported in a well-formed error body, and *TransportError for
// network-level failures (DNS, TLS, timeout, connection reset) that never
// reached a parseable response. A third type, *ProtocolError, covers a live
// connection that returned JSON matching neither the success nor the error
// schema; callers should treat it as a client/server version mismatch.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind is the category of a server-reported exception. Unrecognized
// kinds pass through carrying the raw server token, so a server that
// introduces new categories does not break decoding; Recognized reports
// membership of the closed set.
type ErrorKind string

const (
	KindValidation        ErrorKind = "ValidationException"
	KindInvalidValue      ErrorKind = "InvalidValueException"
	KindFieldRequired     ErrorKind = "FieldRequiredException"
	KindInsufficientFunds ErrorKind = "InsufficientFundsException"
	KindAccessDenied      ErrorKind = "AccessDeniedException"
	KindTransfer          ErrorKind = "TransferException"
	KindMFARequired       ErrorKind = "MFARequiredException"
	KindCustomerSupport   ErrorKind = "CustomerSupportException"
	KindNotFound          ErrorKind = "NotFoundException"
	KindRateLimit         ErrorKind = "RateLimitException"
	KindAccountLocked     ErrorKind = "AccountLockedException"
	KindLockout           ErrorKind = "LockoutException"
	KindUnknown           ErrorKind = "UnknownException"
)

var recognizedKinds = map[ErrorKind]struct{}{
	KindValidation:        {},
	KindInvalidValue:      {},
	KindFieldRequired:     {},
	KindInsufficientFunds: {},
	KindAccessDenied:      {},
	KindTransfer:          {},
	KindMFARequired:       {},
	KindCustomerSupport:   {},
	KindNotFound:          {},
	KindRateLimit:         {},
	KindAccountLocked:     {},
	KindLockout:           {},
	KindUnknown:           {},
}

// Recognized reports whether the kind belongs to the documented set.
func (k ErrorKind) Recognized() bool {
	_, ok := recognizedKinds[k]
	return ok
}

// APIError is a structured failure reported by the API in an error body.
// Transient signals that the request may safely be retried unchanged; the
// client never retries on its own.
type APIError struct {
	ExceptionID string    `json:"exceptionId"`
	Kind        ErrorKind `json:"type"`
	ErrorCode   *string   `json:"errorCode"`
	Message     string    `json:"message"`
	Language    string    `json:"language"`
	Transient   bool      `json:"transient"`
}

func (e *APIError) Error() string {
	if e.ErrorCode != nil {
		return fmt.Sprintf("api error %s (%s, exception %s): %s", e.Kind, *e.ErrorCode, e.ExceptionID, e.Message)
	}
	return fmt.Sprintf("api error %s (exception %s): %s", e.Kind, e.ExceptionID, e.Message)
}

// TransportError wraps a failure that happened before a response could be
// read. Transport failures are always potentially retryable, at the caller's
// discretion.
type TransportError struct {
	Op  string // the operation being dispatched, e.g. "POST /v3/transfers"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a response body that matched neither the expected
// success schema nor the API error schema. Decode-time failures from typed
// fields (unknown SRN tags, unrecognized field-type discriminators) surface
// here rather than being coerced to defaults.
type ProtocolError struct {
	Op     string
	Status int // HTTP status of the offending response
	Err    error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error during %s (status %d): %v", e.Op, e.Status, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// AsAPIError extracts an *APIError from an error chain, if present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
