package rapporthttp

import "time"

// Envelope is the canonical wire representation of a request: exactly the
// method, the url (with any composed query string) and the body. It is the
// only unit ever handed to a Socket, built once per dispatch.
type Envelope struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Body   any    `json:"body"`
}

// Callback receives the outcome of a reply-expecting request. Exactly one of
// the two arguments is meaningful: (reply, nil) on success, (nil, err) on
// failure. Replies and errors delivered through the client have already been
// run through the response translator.
type Callback func(Reply, error)

// Socket is the message-level transport collaborator. Implementations own
// framing, connection lifecycle, request/reply correlation and timeout
// enforcement; this library only assembles envelopes and selects a dispatch
// path.
type Socket interface {
	// Send transmits an envelope without expecting a reply. A returned
	// error means the message could not be handed to the connection.
	Send(env *Envelope) error

	// Request transmits an envelope and returns a future settled with the
	// raw (untranslated) reply or the correlation error. A zero timeout
	// means no timeout.
	Request(env *Envelope, timeout time.Duration) Future

	// RequestCallback is the callback form of Request. The callback is
	// invoked exactly once with the raw reply or the error.
	RequestCallback(env *Envelope, timeout time.Duration, cb Callback)
}

// SocketFuncs adapts plain functions into a Socket, mirroring how
// http.RoundTripper is adapted from a function. Nil fields make the
// corresponding operation a no-op (Request returns a pre-rejected future so
// a misconfigured socket surfaces as an error, not a hang).
type SocketFuncs struct {
	SendFunc            func(env *Envelope) error
	RequestFunc         func(env *Envelope, timeout time.Duration) Future
	RequestCallbackFunc func(env *Envelope, timeout time.Duration, cb Callback)
}

// Send implements Socket.
func (s SocketFuncs) Send(env *Envelope) error {
	if s.SendFunc == nil {
		return nil
	}
	return s.SendFunc(env)
}

// Request implements Socket.
func (s SocketFuncs) Request(env *Envelope, timeout time.Duration) Future {
	if s.RequestFunc == nil {
		return ChannelPromises{}.Reject(&RequestError{
			Type:    ErrorTypeRequestFailure,
			Message: "socket has no request function",
		})
	}
	return s.RequestFunc(env, timeout)
}

// RequestCallback implements Socket.
func (s SocketFuncs) RequestCallback(env *Envelope, timeout time.Duration, cb Callback) {
	if s.RequestCallbackFunc == nil {
		cb(nil, &RequestError{
			Type:    ErrorTypeRequestFailure,
			Message: "socket has no request function",
		})
		return
	}
	s.RequestCallbackFunc(env, timeout, cb)
}
