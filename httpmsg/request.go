package httpmsg

// Request represents a single HTTP/1.x request.
//
// Fields map one-to-one onto the wire: Target is the request target as
// received, with no URL parsing beyond tokenization, and Body holds the
// raw body bytes with no decoding applied. The zero value of Header is
// usable as-is.
type Request struct {
	Method string
	Target string
	Proto  string
	Header Header
	Body   []byte
}
