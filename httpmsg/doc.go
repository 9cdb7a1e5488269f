// Package httpmsg converts between raw HTTP/1.x wire bytes and
// structured request/response values.
//
// Highlights
//   - Reader: parses one complete message (start line, ordered header
//     list, content-length body) from any io.Reader and leaves the
//     stream positioned at the start of the next message.
//   - Writer: serializes a Request or Response back to the exact wire
//     bytes. Header order is preserved and nothing is auto-injected;
//     the caller supplies Content-Length, Host and friends.
//   - Transport-agnostic: listening, concurrency and timeouts belong to
//     the caller. The codec holds no shared state, so independent
//     streams can be handled on independent goroutines freely.
//
// Chunked transfer encoding, keep-alive negotiation and TLS are out of
// scope: a Transfer-Encoding header passes through as an ordinary field
// and body length is resolved from Content-Length alone (absent means
// an empty body).
//
// Quick start (server side):
//
//	ln, _ := net.Listen("tcp", ":8080")
//	conn, _ := ln.Accept()
//	sc := httpmsg.NewServerConn(conn)
//	req, err := sc.ReadRequest()
//	if err != nil { log.Fatal(err) }
//	res := &httpmsg.Response{Proto: req.Proto, StatusCode: 200, Body: []byte("hello")}
//	if err := sc.Respond(res); err != nil { log.Fatal(err) }
//
// Quick start (client side):
//
//	conn, _ := net.Dial("tcp", "127.0.0.1:8080")
//	req := &httpmsg.Request{Method: "GET", Target: "/", Proto: "HTTP/1.1"}
//	if err := httpmsg.WriteRequest(conn, req); err != nil { log.Fatal(err) }
//	res, err := httpmsg.ReadResponse(conn)
package httpmsg
