package httpmsg

import "errors"

var (
	ErrMalformedStartLine   = errors.New("httpmsg: malformed start line")
	ErrMalformedHeader      = errors.New("httpmsg: malformed header")
	ErrInvalidContentLength = errors.New("httpmsg: invalid content-length")
	ErrUnexpectedEOF        = errors.New("httpmsg: unexpected end of stream")
	ErrWriteFailed          = errors.New("httpmsg: write failed")
	ErrHeaderTooLarge       = errors.New("httpmsg: header too large")
)
