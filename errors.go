package rapporthttp

import (
	"errors"
	"fmt"
	"time"
)

// Error type constants carried by RequestError.Type.
const (
	// ErrorTypeInvalidArgument marks a programmer error detected while
	// configuring a request: empty method or url, or an unsupported query
	// shape. These are raised synchronously (as panics), never deferred to
	// dispatch time.
	ErrorTypeInvalidArgument = "InvalidArgument"

	// ErrorTypeSendFailure marks a fire-and-forget dispatch the socket
	// could not accept.
	ErrorTypeSendFailure = "TransportSendFailure"

	// ErrorTypeRequestFailure marks a reply-expecting dispatch that the
	// socket failed or timed out.
	ErrorTypeRequestFailure = "TransportRequestFailure"

	// ErrorTypeValidation marks an invalid client configuration.
	ErrorTypeValidation = "Validation"
)

// RequestError is the error shape surfaced by this library. Socket failures
// wrap their cause; errors carrying a Reply have that reply translated before
// reaching the caller so both completion arms share one shape.
type RequestError struct {
	Type      string
	Message   string
	Cause     error
	RequestID string
	Method    string
	URL       string
	Reply     Reply
	Timestamp time.Time
	Duration  time.Duration
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *RequestError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*RequestError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *RequestError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.Reply != nil {
		info += fmt.Sprintf("Reply Status: %d\n", e.Reply.Status())
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", e.Duration)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// IsInvalidArgument reports whether err is an InvalidArgument request error.
func IsInvalidArgument(err error) bool {
	return isErrorType(err, ErrorTypeInvalidArgument)
}

// IsSendFailure reports whether err is a fire-and-forget dispatch failure.
func IsSendFailure(err error) bool {
	return isErrorType(err, ErrorTypeSendFailure)
}

// IsRequestFailure reports whether err is a reply-expecting dispatch failure.
func IsRequestFailure(err error) bool {
	return isErrorType(err, ErrorTypeRequestFailure)
}

func isErrorType(err error, errorType string) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Type == errorType
	}
	return false
}

// invalidArgument panics with an InvalidArgument request error. Configuration
// mistakes are programmer errors and are surfaced on the caller's stack
// immediately rather than deferred into the async flow.
func invalidArgument(message string) {
	panic(&RequestError{
		Type:      ErrorTypeInvalidArgument,
		Message:   message,
		Timestamp: time.Now(),
	})
}
