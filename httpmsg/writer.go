package httpmsg

import (
	"bufio"
	"fmt"
	"io"
)

// WriteRequest serializes req to w as exact wire bytes: request line,
// headers in stored order, blank line, body. Nothing is auto-injected;
// the caller supplies Content-Length when the peer needs one.
func WriteRequest(w io.Writer, req *Request) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s %s %s\r\n", req.Method, req.Target, req.Proto); err != nil {
		return writeErr(err)
	}
	return finishMessage(bw, req.Header, req.Body)
}

// WriteResponse serializes res to w. An empty Reason is filled from the
// canonical phrase for the status code; if the code is unknown the
// status line is emitted without a reason.
func WriteResponse(w io.Writer, res *Response) error {
	bw := bufio.NewWriter(w)
	reason := res.Reason
	if reason == "" {
		reason = defaultReason(res.StatusCode)
	}
	var err error
	if reason == "" {
		_, err = fmt.Fprintf(bw, "%s %d\r\n", res.Proto, res.StatusCode)
	} else {
		_, err = fmt.Fprintf(bw, "%s %d %s\r\n", res.Proto, res.StatusCode, reason)
	}
	if err != nil {
		return writeErr(err)
	}
	return finishMessage(bw, res.Header, res.Body)
}

func finishMessage(bw *bufio.Writer, h Header, body []byte) error {
	for _, f := range h {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", f.Name, f.Value); err != nil {
			return writeErr(err)
		}
	}
	if _, err := fmt.Fprint(bw, "\r\n"); err != nil {
		return writeErr(err)
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return writeErr(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return writeErr(err)
	}
	return nil
}

func writeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrWriteFailed, err)
}

func defaultReason(code int) string {
	switch code {
	case 100:
		return "Continue"
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 304:
		return "Not Modified"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	case 501:
		return "Not Implemented"
	case 502:
		return "Bad Gateway"
	case 503:
		return "Service Unavailable"
	default:
		return ""
	}
}
