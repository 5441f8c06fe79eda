package rapporthttp

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestRequestErrorError(t *testing.T) {
	err := &RequestError{Type: ErrorTypeSendFailure, Message: "socket rejected the envelope"}

	want := "TransportSendFailure: socket rejected the envelope"
	if got := err.Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRequestErrorErrorWithCauseAndID(t *testing.T) {
	cause := errors.New("broken pipe")
	err := &RequestError{
		Type:      ErrorTypeSendFailure,
		Message:   "socket rejected the envelope",
		Cause:     cause,
		RequestID: "req-1",
	}

	got := err.Error()
	if !strings.Contains(got, "broken pipe") {
		t.Errorf("Expected cause in message, got %q", got)
	}
	if !strings.HasPrefix(got, "[req-1]") {
		t.Errorf("Expected request ID prefix, got %q", got)
	}
}

func TestRequestErrorNil(t *testing.T) {
	var err *RequestError
	if got := err.Error(); got != "<nil>" {
		t.Errorf("Expected <nil>, got %q", got)
	}
	if err.Unwrap() != nil {
		t.Error("Expected nil Unwrap on nil error")
	}
	if err.Is(&RequestError{}) {
		t.Error("Expected Is to be false on nil error")
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	err := &RequestError{Type: ErrorTypeSendFailure, Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}

func TestRequestErrorIsComparesTypes(t *testing.T) {
	a := &RequestError{Type: ErrorTypeSendFailure, Message: "one"}
	b := &RequestError{Type: ErrorTypeSendFailure, Message: "two"}
	c := &RequestError{Type: ErrorTypeRequestFailure}

	if !errors.Is(a, b) {
		t.Error("Expected errors with the same type to match")
	}
	if errors.Is(a, c) {
		t.Error("Expected errors with different types not to match")
	}
}

func TestErrorTypePredicates(t *testing.T) {
	if !IsInvalidArgument(&RequestError{Type: ErrorTypeInvalidArgument}) {
		t.Error("Expected IsInvalidArgument to match")
	}
	if !IsSendFailure(fmt.Errorf("wrapped: %w", &RequestError{Type: ErrorTypeSendFailure})) {
		t.Error("Expected IsSendFailure to match through wrapping")
	}
	if !IsRequestFailure(&RequestError{Type: ErrorTypeRequestFailure}) {
		t.Error("Expected IsRequestFailure to match")
	}
	if IsInvalidArgument(errors.New("plain")) {
		t.Error("Expected plain errors not to match")
	}
	if IsSendFailure(nil) {
		t.Error("Expected nil not to match")
	}
}

func TestDebugInfo(t *testing.T) {
	err := &RequestError{
		Type:      ErrorTypeRequestFailure,
		Message:   "timed out",
		RequestID: "req-9",
		Method:    MethodGet,
		URL:       "/items",
		Reply:     Reply{"status": 504},
		Timestamp: time.Now(),
		Duration:  250 * time.Millisecond,
		Cause:     errors.New("deadline exceeded"),
	}

	info := err.DebugInfo()
	for _, want := range []string{
		"Error Type: TransportRequestFailure",
		"Message: timed out",
		"Request ID: req-9",
		"Method: get",
		"URL: /items",
		"Reply Status: 504",
		"Cause: deadline exceeded",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("Expected DebugInfo to contain %q, got:\n%s", want, info)
		}
	}

	var nilErr *RequestError
	if got := nilErr.DebugInfo(); got != "Error: <nil>" {
		t.Errorf("Expected nil DebugInfo placeholder, got %q", got)
	}
}
