package rapporthttp

// Wire-level method literals. The protocol carries verbs in lowercase.
const (
	MethodGet     = "get"
	MethodPost    = "post"
	MethodPut     = "put"
	MethodPatch   = "patch"
	MethodDelete  = "delete"
	MethodHead    = "head"
	MethodOptions = "options"
)

// Get starts a GET request for the given url.
func (c *Client) Get(url string) *Request { return c.NewRequest(MethodGet, url) }

// Post starts a POST request for the given url.
func (c *Client) Post(url string) *Request { return c.NewRequest(MethodPost, url) }

// Put starts a PUT request for the given url.
func (c *Client) Put(url string) *Request { return c.NewRequest(MethodPut, url) }

// Patch starts a PATCH request for the given url.
func (c *Client) Patch(url string) *Request { return c.NewRequest(MethodPatch, url) }

// Delete starts a DELETE request for the given url.
func (c *Client) Delete(url string) *Request { return c.NewRequest(MethodDelete, url) }

// Head starts a HEAD request for the given url.
func (c *Client) Head(url string) *Request { return c.NewRequest(MethodHead, url) }

// Options starts an OPTIONS request for the given url.
func (c *Client) Options(url string) *Request { return c.NewRequest(MethodOptions, url) }
