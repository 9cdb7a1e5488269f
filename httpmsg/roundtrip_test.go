package httpmsg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"dqx0.com/go/httpmsg/httpmsg"
)

func TestRoundTrip_Request(t *testing.T) {
	req := &httpmsg.Request{
		Method: "POST",
		Target: "/upload?kind=raw",
		Proto:  "HTTP/1.1",
		Header: httpmsg.Header{
			{Name: "Host", Value: "10.0.2.2:8080"},
			{Name: "X-Tag", Value: "one"},
			{Name: "Content-Type", Value: "text/plain; charset=utf-8"},
			{Name: "X-Tag", Value: "two"},
			{Name: "Content-Length", Value: "11"},
		},
		Body: []byte("Hello world"),
	}

	var buf bytes.Buffer
	require.NoError(t, httpmsg.WriteRequest(&buf, req))
	got, err := httpmsg.ReadRequest(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, *req, *got)
}

func TestRoundTrip_Response(t *testing.T) {
	res := &httpmsg.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 503,
		Reason:     "Service Unavailable",
		Header: httpmsg.Header{
			{Name: "Retry-After", Value: "30"},
			{Name: "Content-Length", Value: "8"},
		},
		Body: []byte("hello me"),
	}

	var buf bytes.Buffer
	require.NoError(t, httpmsg.WriteResponse(&buf, res))
	got, err := httpmsg.ReadResponse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, *res, *got)
}

func TestRoundTrip_EmptyReasonStaysEmpty(t *testing.T) {
	res := &httpmsg.Response{Proto: "HTTP/1.1", StatusCode: 599}

	var buf bytes.Buffer
	require.NoError(t, httpmsg.WriteResponse(&buf, res))
	got, err := httpmsg.ReadResponse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "", got.Reason)
	require.Equal(t, 599, got.StatusCode)
}
