package rapporthttp

import (
	"fmt"
	"time"
)

// Client issues HTTP-style requests over a message-oriented socket. It layers
// request building, response translation, structured debug logging and
// metrics around the socket's raw send/request primitives. The socket handle
// is shared read-only across all requests; a Client is safe for concurrent
// use as long as its Socket is.
type Client struct {
	socket          Socket
	promises        PromiseFactory
	logger          Logger
	metrics         *MetricsCollector
	debug           *DebugConfig
	validationError error
}

// New constructs a Client over the given socket using the provided functional
// options. A best effort validation is performed; call IsValid /
// ValidationError for errors.
func New(socket Socket, options ...Option) *Client {
	client := &Client{
		socket:   socket,
		promises: ChannelPromises{},
		logger:   nil,
		metrics:  nil,
		debug:    DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	return client
}

// ValidateConfiguration validates the client configuration and returns an
// error if invalid.
func (c *Client) ValidateConfiguration() error {
	var problems []string

	if c.socket == nil {
		problems = append(problems, "socket must not be nil")
	}
	if c.promises == nil {
		problems = append(problems, "promise factory must not be nil")
	}
	if c.debug != nil && c.debug.Enabled && c.logger == nil {
		problems = append(problems, "debug logging is enabled but no logger is set")
	}
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen == nil {
		problems = append(problems, "debug logging is enabled but RequestIDGen is nil")
	}

	if len(problems) > 0 {
		return &RequestError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", problems),
		}
	}

	return nil
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

// ValidateConfigurationStrict panics if configuration is invalid.
func (c *Client) ValidateConfigurationStrict() {
	if err := c.ValidateConfiguration(); err != nil {
		panic(fmt.Sprintf("invalid client configuration: %v", err))
	}
}

// dispatchSend performs a fire-and-forget dispatch. Success is silent; a
// socket error comes back wrapped as a TransportSendFailure.
func (c *Client) dispatchSend(env *Envelope, endpoint, requestID string) error {
	if c.debug != nil && c.debug.Enabled && c.debug.LogSends && c.logger != nil {
		c.logger.Debug("Sending fire-and-forget", "requestID", requestID, "method", env.Method, "url", env.URL)
	}

	if err := c.socket.Send(env); err != nil {
		c.metrics.RecordError(ErrorTypeSendFailure, env.Method, endpoint)

		if c.debug != nil && c.debug.Enabled && c.logger != nil {
			c.logger.Warn("Send failed", "requestID", requestID, "method", env.Method, "url", env.URL, "error", err.Error())
		}

		return &RequestError{
			Type:      ErrorTypeSendFailure,
			Message:   "socket rejected the envelope",
			Cause:     err,
			RequestID: requestID,
			Method:    env.Method,
			URL:       env.URL,
			Timestamp: time.Now(),
		}
	}

	c.metrics.RecordSend(env.Method, endpoint)
	return nil
}

// finishRequest records metrics and debug logs for a completed
// reply-expecting request. Exactly one of reply/err is meaningful.
func (c *Client) finishRequest(requestID, method, endpoint string, reply Reply, err error, duration time.Duration) {
	c.metrics.RecordRequestEnd(method, endpoint)

	status := 0
	if err == nil {
		status = reply.Status()
	}
	c.metrics.RecordRequest(method, endpoint, status, duration)

	if err != nil {
		c.metrics.RecordError(ErrorTypeRequestFailure, method, endpoint)

		if c.debug != nil && c.debug.Enabled && c.logger != nil {
			c.logger.Warn("Request failed", "requestID", requestID, "method", method, "endpoint", endpoint, "duration", duration, "error", err.Error())
		}
		return
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Request completed", "requestID", requestID, "method", method, "endpoint", endpoint, "status", status, "duration", duration)
	}
}

func (c *Client) logRequest(requestID, method, url string, timeout time.Duration) {
	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request", "requestID", requestID, "method", method, "url", url, "timeout", timeout)
	}
}

func (c *Client) nextRequestID() string {
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		return c.debug.RequestIDGen()
	}
	return ""
}
