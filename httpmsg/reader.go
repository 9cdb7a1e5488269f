package httpmsg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader parses HTTP/1.x messages from a byte stream. Each call consumes
// exactly one message's worth of bytes, so successive calls on the same
// Reader pick up where the previous message ended.
type Reader struct {
	br *bufio.Reader
	// MaxHeaderBytes caps the length of a single start or header line.
	// Zero means no limit.
	MaxHeaderBytes int
}

// NewReader returns a Reader consuming from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadRequest parses one request from r. The Reader buffers, so only use
// this one-shot form when no further messages follow on the stream.
func ReadRequest(r io.Reader) (*Request, error) {
	return NewReader(r).ReadRequest()
}

// ReadResponse parses one response from r. Same buffering caveat as
// ReadRequest.
func ReadResponse(r io.Reader) (*Response, error) {
	return NewReader(r).ReadResponse()
}

// ReadRequest parses the next request on the stream.
func (r *Reader) ReadRequest() (*Request, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("request line %q: %w", line, ErrMalformedStartLine)
	}
	if !strings.HasPrefix(parts[2], "HTTP/") {
		return nil, fmt.Errorf("request line %q: %w", line, ErrMalformedStartLine)
	}
	hdr, err := r.readHeaders()
	if err != nil {
		return nil, err
	}
	body, err := r.readBody(hdr)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method: parts[0],
		Target: parts[1],
		Proto:  parts[2],
		Header: hdr,
		Body:   body,
	}, nil
}

// ReadResponse parses the next response on the stream. The reason phrase
// is everything after the status code and may be empty or contain spaces.
func (r *Reader) ReadResponse() (*Response, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return nil, fmt.Errorf("status line %q: %w", line, ErrMalformedStartLine)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("status line %q: %w", line, ErrMalformedStartLine)
	}
	var reason string
	if len(parts) == 3 {
		reason = parts[2]
	}
	hdr, err := r.readHeaders()
	if err != nil {
		return nil, err
	}
	body, err := r.readBody(hdr)
	if err != nil {
		return nil, err
	}
	return &Response{
		Proto:      parts[0],
		StatusCode: code,
		Reason:     reason,
		Header:     hdr,
		Body:       body,
	}, nil
}

func (r *Reader) readHeaders() (Header, error) {
	var h Header
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return h, nil
		}
		i := strings.IndexByte(line, ':')
		if i == -1 {
			return nil, fmt.Errorf("header line %q: %w", line, ErrMalformedHeader)
		}
		name := line[:i]
		if !isToken(name) {
			return nil, fmt.Errorf("header name %q: %w", name, ErrMalformedHeader)
		}
		h = append(h, Field{Name: name, Value: strings.TrimSpace(line[i+1:])})
	}
}

// readBody resolves the body length from the header block. A missing
// content-length means an empty body; nothing is inferred from the
// method or a transfer-encoding header.
func (r *Reader) readBody(h Header) ([]byte, error) {
	if !h.Has("Content-Length") {
		return nil, nil
	}
	v := h.Get("Content-Length")
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("content-length %q: %w", v, ErrInvalidContentLength)
	}
	if n == 0 {
		return nil, nil
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r.br, body); err != nil {
		return nil, fmt.Errorf("reading %d body bytes: %w", n, ErrUnexpectedEOF)
	}
	return body, nil
}

// readLine consumes bytes through the next LF and returns the line with
// CR/LF stripped.
func (r *Reader) readLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("reading line: %w", ErrUnexpectedEOF)
			}
			return "", err
		}
		if b == '\n' {
			return sb.String(), nil
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
		if r.MaxHeaderBytes > 0 && sb.Len() > r.MaxHeaderBytes {
			return "", ErrHeaderTooLarge
		}
	}
}

// isToken reports whether s is a valid RFC 7230 header-name token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
			continue
		default:
			return false
		}
	}
	return true
}
