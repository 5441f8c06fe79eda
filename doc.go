// Package rapporthttp layers HTTP verb semantics on top of a message-oriented
// socket:
//
//   - Chainable request builder (body merging, query composition, timeouts)
//   - Fire-and-forget or reply-expecting dispatch per request
//   - Callback and promise completion protocols over the same socket
//   - Uniform response translation on both the success and failure arms
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area — the socket owns framing, correlation and timeouts
//   - One envelope shape (method, url, body) handed to the socket per dispatch
//   - Pluggable promise factory and logger, functional options for everything
//
// Typical usage:
//
//	client := rapporthttp.New(socket,
//	    rapporthttp.WithMetrics(),
//	    rapporthttp.WithSimpleLogger(),
//	)
//	reply, err := client.Get("/items").
//	    Query(map[string]any{"page": 2}).
//	    Timeout(500 * time.Millisecond).
//	    Do(ctx)
//
// Configuration mistakes (empty method or url, unsupported query shapes) are
// programmer errors and panic immediately with an InvalidArgument
// *RequestError; dispatch failures always arrive on the chosen completion
// channel, never as panics.
package rapporthttp
