package rapporthttp

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Request accumulates the parameters of one logical request and dispatches it
// through the client's socket. It is chainable, mutable and single-use: one
// terminal call (Send, SendCallback or Do) consumes it, and behavior after a
// second terminal call is undefined. A Request is not safe for concurrent
// use; independent in-flight requests use independent Request values.
type Request struct {
	client         *Client
	method         string
	url            string
	body           any
	timeout        time.Duration
	expectResponse bool
}

// NewRequest starts a request against the client's socket. Method and url are
// fixed for the life of the request; url is later mutated only by query
// composition. Panics with an InvalidArgument *RequestError when method or
// url is empty (method is checked first).
func (c *Client) NewRequest(method, url string) *Request {
	if method == "" {
		invalidArgument("method must be a non-empty string")
	}
	if url == "" {
		invalidArgument("url must be a non-empty string")
	}
	return &Request{
		client:         c,
		method:         method,
		url:            url,
		body:           map[string]any{},
		expectResponse: true,
	}
}

// Body sets or extends the request body. A map[string]any is shallow-merged
// into the accumulated body, last write winning per key; any other value
// (string, number, slice, nil, ...) replaces the body outright, and the last
// replacement wins for the whole body. No validation is applied.
func (r *Request) Body(v any) *Request {
	if m, ok := v.(map[string]any); ok {
		current, isMap := r.body.(map[string]any)
		if !isMap {
			current = make(map[string]any, len(m))
			r.body = current
		}
		for key, value := range m {
			current[key] = value
		}
		return r
	}
	r.body = v
	return r
}

// Query appends to the url's query string. Accepted shapes:
//
//   - nil: no-op
//   - string: appended verbatim
//   - []string: elements joined with "&"
//   - map[string]string / map[string]any: keys and values percent-encoded,
//     joined as "key=value" pairs with "&" in sorted key order
//
// The first applied query joins with "?", every later one with "&". Empty
// inputs never append a bare separator. Any other type panics with an
// InvalidArgument *RequestError.
func (r *Request) Query(v any) *Request {
	switch q := v.(type) {
	case nil:
		return r
	case string:
		r.appendQuery(q)
	case []string:
		r.appendQuery(strings.Join(q, "&"))
	case map[string]string:
		pairs := make([]string, 0, len(q))
		for key, value := range q {
			pairs = append(pairs, encodeQueryPair(key, value))
		}
		sort.Strings(pairs)
		r.appendQuery(strings.Join(pairs, "&"))
	case map[string]any:
		pairs := make([]string, 0, len(q))
		for key, value := range q {
			pairs = append(pairs, encodeQueryPair(key, fmt.Sprint(value)))
		}
		sort.Strings(pairs)
		r.appendQuery(strings.Join(pairs, "&"))
	default:
		invalidArgument(fmt.Sprintf("unsupported query type %T", v))
	}
	return r
}

// Timeout sets the reply timeout handed to the socket. Only strictly positive
// values are stored; zero or negative values are silently ignored and never
// erase a previously set timeout. The default of 0 means no timeout.
func (r *Request) Timeout(d time.Duration) *Request {
	if d > 0 {
		r.timeout = d
	}
	return r
}

// ExpectResponse controls whether the terminal operation waits for a reply.
// When false, dispatch is fire-and-forget: success is silent and only
// failures are reported. Default true.
func (r *Request) ExpectResponse(flag bool) *Request {
	r.expectResponse = flag
	return r
}

// Send dispatches the request and returns a future for its translated reply.
//
// When no response is expected, Send hands the envelope to the socket's Send
// operation and returns nil on success; on failure it returns a future
// pre-rejected (via the client's promise factory) with a TransportSendFailure
// error wrapping the socket error. The nil return on success is deliberate:
// fire-and-forget delivers no value to the caller, only failures.
func (r *Request) Send() Future {
	env := r.envelope()
	endpoint := endpointFromURL(r.url)
	requestID := r.client.nextRequestID()

	if !r.expectResponse {
		if err := r.client.dispatchSend(env, endpoint, requestID); err != nil {
			return r.client.promises.Reject(err)
		}
		return nil
	}

	r.client.logRequest(requestID, r.method, r.url, r.timeout)
	r.client.metrics.RecordRequestStart(r.method, endpoint)
	start := time.Now()

	result := r.client.promises.New()
	r.client.socket.Request(env, r.timeout).Then(
		func(raw Reply) {
			reply := TranslateReply(raw)
			r.client.finishRequest(requestID, r.method, endpoint, reply, nil, time.Since(start))
			result.Resolve(reply)
		},
		func(err error) {
			err = TranslateError(err)
			r.client.finishRequest(requestID, r.method, endpoint, nil, err, time.Since(start))
			result.Reject(err)
		},
	)
	return result
}

// SendCallback dispatches the request and delivers its outcome to cb, with
// both arguments run through the response translator. Panics with an
// InvalidArgument *RequestError when cb is nil.
//
// When no response is expected, cb is only invoked on dispatch failure, as
// cb(nil, err); success is silent.
func (r *Request) SendCallback(cb Callback) {
	if cb == nil {
		invalidArgument("callback must not be nil")
	}

	env := r.envelope()
	endpoint := endpointFromURL(r.url)
	requestID := r.client.nextRequestID()

	if !r.expectResponse {
		if err := r.client.dispatchSend(env, endpoint, requestID); err != nil {
			cb(nil, err)
		}
		return
	}

	r.client.logRequest(requestID, r.method, r.url, r.timeout)
	r.client.metrics.RecordRequestStart(r.method, endpoint)
	start := time.Now()

	r.client.socket.RequestCallback(env, r.timeout, func(raw Reply, err error) {
		reply := TranslateReply(raw)
		err = TranslateError(err)
		r.client.finishRequest(requestID, r.method, endpoint, reply, err, time.Since(start))
		cb(reply, err)
	})
}

// Do dispatches the request and blocks until the translated reply arrives,
// the socket reports an error, or ctx is done. For fire-and-forget requests
// it returns (nil, nil) on successful dispatch.
func (r *Request) Do(ctx context.Context) (Reply, error) {
	future := r.Send()
	if future == nil {
		return nil, nil
	}
	return future.Await(ctx)
}

// envelope serializes the builder into its canonical three-field wire form.
func (r *Request) envelope() *Envelope {
	return &Envelope{
		Method: r.method,
		URL:    r.url,
		Body:   r.body,
	}
}

func (r *Request) appendQuery(query string) {
	if query == "" {
		return
	}
	if strings.Contains(r.url, "?") {
		r.url += "&" + query
	} else {
		r.url += "?" + query
	}
}

// encodeQueryPair percent-encodes a key/value pair. Spaces encode as %20
// rather than the form-encoding "+" so the composed url is usable verbatim.
func encodeQueryPair(key, value string) string {
	return escapeQuery(key) + "=" + escapeQuery(value)
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// endpointFromURL strips the query string for use as a metrics label.
func endpointFromURL(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		u = u[:i]
	}
	if u == "" {
		return "unknown"
	}
	return u
}
