package httpmsg

// Response represents a single HTTP/1.x response.
//
// Reason may be empty; WriteResponse fills in the canonical phrase for
// known status codes. Body holds the raw body bytes.
type Response struct {
	Proto      string
	StatusCode int
	Reason     string
	Header     Header
	Body       []byte
}
