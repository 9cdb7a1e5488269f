package main

import (
	"log"
	"net"
	"os"

	"github.com/joho/godotenv"

	"dqx0.com/go/httpmsg/httpmsg"
	"dqx0.com/go/httpmsg/internal/obs"
)

// Echo server: parses each incoming request and sends the body back.
// Connections are one-shot; keep-alive is out of scope for the codec.
func main() {
	_ = godotenv.Load()
	addr := os.Getenv("HTTPMSG_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logger := obs.StdLogger{L: log.New(os.Stdout, "", log.LstdFlags), Min: obs.Debug}
	meter := obs.LogMeter{L: logger}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Logf(obs.Error, "listen %s: %v", addr, err)
		os.Exit(1)
	}
	logger.Logf(obs.Info, "listening on %s", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			logger.Logf(obs.Error, "accept: %v", err)
			return
		}
		go serve(conn, logger, meter)
	}
}

func serve(conn net.Conn, logger obs.Logger, meter obs.Meter) {
	defer conn.Close()
	sc := httpmsg.NewServerConn(conn)
	req, err := sc.ReadRequest()
	if err != nil {
		logger.Logf(obs.Warn, "read %s: %v", conn.RemoteAddr(), err)
		return
	}
	meter.Counter("requests", 1, obs.Label{Key: "method", Value: req.Method})
	meter.Histogram("request_body_bytes", float64(len(req.Body)))
	logger.Logf(obs.Info, "%s %s %s (%d body bytes)", req.Method, req.Target, req.Proto, len(req.Body))

	res := &httpmsg.Response{
		Proto:      req.Proto,
		StatusCode: 200,
		Header:     httpmsg.Header{{Name: "Content-Type", Value: "text/plain; charset=utf-8"}},
		Body:       req.Body,
	}
	if err := sc.Respond(res); err != nil {
		logger.Logf(obs.Error, "respond %s: %v", conn.RemoteAddr(), err)
	}
}
