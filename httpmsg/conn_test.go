package httpmsg_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqx0.com/go/httpmsg/httpmsg"
)

func TestServerConn_ReadAndRespond(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	raw := "GET / HTTP/1.1\r\n" +
		"user-agent: Dart/2.0 (dart:io)\r\n" +
		"content-length: 11\r\n" +
		"host: 10.0.2.2:8080\r\n" +
		"\r\n" +
		"Hello world"

	type result struct {
		res *httpmsg.Response
		err error
	}
	done := make(chan result, 1)
	go func() {
		if _, err := client.Write([]byte(raw)); err != nil {
			done <- result{err: err}
			return
		}
		res, err := httpmsg.ReadResponse(client)
		done <- result{res: res, err: err}
	}()

	sc := httpmsg.NewServerConn(server)
	req, err := sc.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "Hello world", string(req.Body))

	require.NoError(t, sc.Respond(&httpmsg.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Body:       []byte("hello me"),
	}))

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, 200, got.res.StatusCode)
	assert.Equal(t, "OK", got.res.Reason)
	// Respond framed the body for us.
	assert.Equal(t, "8", got.res.Header.Get("Content-Length"))
	assert.Equal(t, "hello me", string(got.res.Body))
}

func TestServerConn_RespondKeepsExistingContentLength(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	done := make(chan *httpmsg.Response, 1)
	go func() {
		res, err := httpmsg.ReadResponse(client)
		if err != nil {
			close(done)
			return
		}
		done <- res
	}()

	sc := httpmsg.NewServerConn(server)
	require.NoError(t, sc.Respond(&httpmsg.Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Header:     httpmsg.Header{{Name: "Content-Length", Value: "2"}},
		Body:       []byte("ok"),
	}))

	res, ok := <-done
	require.True(t, ok)
	assert.Equal(t, []string{"2"}, res.Header.Values("content-length"))
}
