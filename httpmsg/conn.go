package httpmsg

import (
	"io"
	"strconv"
)

// ServerConn pairs a Reader and Writer over one connection for the
// common accept-parse-respond flow. It is not safe for concurrent use;
// give each connection its own ServerConn.
type ServerConn struct {
	rw io.ReadWriter
	r  *Reader
}

// NewServerConn takes ownership of rw for message exchange. Closing the
// underlying connection remains the caller's job.
func NewServerConn(rw io.ReadWriter) *ServerConn {
	return &ServerConn{rw: rw, r: NewReader(rw)}
}

// ReadRequest parses the next request on the connection.
func (c *ServerConn) ReadRequest() (*Request, error) {
	return c.r.ReadRequest()
}

// Respond writes res to the connection. A Content-Length header is added
// when the response carries none, so the peer can frame the body; a
// response that already has one is written untouched.
func (c *ServerConn) Respond(res *Response) error {
	if !res.Header.Has("Content-Length") {
		res.Header.Add("Content-Length", strconv.Itoa(len(res.Body)))
	}
	return WriteResponse(c.rw, res)
}
