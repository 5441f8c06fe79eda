package rapporthttp

import "errors"

// Wire field names used by the socket's reply envelope. The translator
// renames them to their public counterparts before a reply reaches a caller.
const (
	wireStatusKey = "_s"
	wireBodyKey   = "_b"

	// StatusKey and BodyKey are the public reply field names.
	StatusKey = "status"
	BodyKey   = "body"
)

// Reply is a response envelope as seen by callers: a mapping with public
// "status" and "body" fields after translation.
type Reply map[string]any

// Status returns the reply status as an int, or 0 when absent or of an
// unexpected type. Numeric decoding may surface the status as any integer or
// float type depending on the socket's codec.
func (r Reply) Status() int {
	switch v := r[StatusKey].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	default:
		return 0
	}
}

// Body returns the reply body, or nil when absent.
func (r Reply) Body() any {
	return r[BodyKey]
}

// TranslateReply renames the wire-level "_s" and "_b" fields of a reply to
// "status" and "body" in place, removing the originals, and returns the same
// map. A nil reply is passed through unchanged. The rename only fires when
// the wire field is present, so translating twice is a no-op.
func TranslateReply(r Reply) Reply {
	if r == nil {
		return nil
	}
	if v, ok := r[wireStatusKey]; ok {
		r[StatusKey] = v
		delete(r, wireStatusKey)
	}
	if v, ok := r[wireBodyKey]; ok {
		r[BodyKey] = v
		delete(r, wireBodyKey)
	}
	return r
}

// TranslateError applies reply translation to the failure arm so errors and
// successes share one shape: when err carries a *RequestError with an
// attached Reply, that reply is translated in place. The error value itself
// is returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Reply != nil {
		TranslateReply(reqErr.Reply)
	}
	return err
}
