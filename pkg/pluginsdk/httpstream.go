// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// httpBodyChunkSize caps a single body frame. Larger writes are split so no
// frame approaches the transport message ceiling.
const httpBodyChunkSize = 64 * 1024

type httpStream = grpc.BidiStreamingServer[pluginv1.ServeHTTPRequest, pluginv1.ServeHTTPResponse]

func (s *hooksServer) ServeHTTP(stream grpc.BidiStreamingServer[pluginv1.ServeHTTPRequest, pluginv1.ServeHTTPResponse]) error {
	return s.serveHTTPStream(HookServeHTTP, stream)
}

func (s *hooksServer) ServeMetrics(stream grpc.BidiStreamingServer[pluginv1.ServeMetricsRequest, pluginv1.ServeMetricsResponse]) error {
	return s.serveHTTPStream(HookServeMetrics, stream)
}

// serveHTTPStream reassembles the inbound request frames, invokes the
// handler with a writer that streams the reply back, and terminates the
// stream with a body-complete frame. A malformed stream (no init frame, bad
// URL) answers with a plain 500 rather than a transport error so the host
// can relay something to its own caller.
func (s *hooksServer) serveHTTPStream(name string, stream httpStream) error {
	if s.draining.Load() {
		return status.Errorf(codes.FailedPrecondition, "plugin is deactivating, refusing %s", name)
	}
	h, ok := s.registry.handler(name)
	if !ok {
		return s.hookUnavailable(name)
	}
	fn := h.(func(*Context, http.ResponseWriter, *http.Request))

	first, err := stream.Recv()
	if err != nil {
		if err == io.EOF {
			s.log.Error("http stream closed before the init frame", slog.String("hook", name))
			return sendHTTPError(stream, http.StatusInternalServerError)
		}
		return err
	}
	init := first.GetInit()
	if init == nil {
		s.log.Error("http stream started without an init frame", slog.String("hook", name))
		return sendHTTPError(stream, http.StatusInternalServerError)
	}

	var body bytes.Buffer
	body.Write(first.GetBodyChunk())
	for done := first.GetBodyComplete(); !done; {
		frame, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		body.Write(frame.GetBodyChunk())
		done = frame.GetBodyComplete()
	}

	req, err := buildHTTPRequest(init, body.Bytes())
	if err != nil {
		s.log.Error("http stream carried an unparsable request",
			slog.String("hook", name),
			slog.String("url", init.GetUrl()),
			slog.Any("error", err))
		return sendHTTPError(stream, http.StatusInternalServerError)
	}
	c := contextFromProto(stream.Context(), init.GetPluginContext())
	req = req.WithContext(c.Context())

	w := &streamResponseWriter{stream: stream, header: make(http.Header)}
	finished := make(chan any, 1)
	s.pool.Submit(func() {
		defer func() {
			finished <- recover()
		}()
		fn(c, w, req)
	})

	select {
	case recovered := <-finished:
		if recovered != nil {
			s.log.Error("http handler panicked",
				slog.String("hook", name),
				slog.Any("panic", recovered))
			if !w.wroteInit {
				return sendHTTPError(stream, http.StatusInternalServerError)
			}
			return status.Errorf(codes.Internal, "hook %s panicked: %v", name, recovered)
		}
		return w.finish()
	case <-stream.Context().Done():
		// The handler is abandoned; it must not touch the stream once we
		// return, which the writer guarantees by checking the context.
		return status.FromContextError(stream.Context().Err()).Err()
	}
}

func buildHTTPRequest(init *pluginv1.ServeHTTPRequestInit, body []byte) (*http.Request, error) {
	u, err := url.ParseRequestURI(init.GetUrl())
	if err != nil {
		return nil, err
	}
	return &http.Request{
		Method:        init.GetMethod(),
		URL:           u,
		Proto:         init.GetProto(),
		ProtoMajor:    int(init.GetProtoMajor()),
		ProtoMinor:    int(init.GetProtoMinor()),
		Header:        headersFromProto(init.GetHeaders()),
		Host:          init.GetHost(),
		RemoteAddr:    init.GetRemoteAddr(),
		RequestURI:    init.GetRequestUri(),
		ContentLength: int64(len(body)),
		Body:          io.NopCloser(bytes.NewReader(body)),
	}, nil
}

// sendHTTPError answers a broken stream with a minimal plaintext response,
// the shape net/http produces for requests that never reach a handler.
func sendHTTPError(stream httpStream, code int) error {
	err := stream.Send(&pluginv1.ServeHTTPResponse{
		Init: &pluginv1.ServeHTTPResponseInit{
			StatusCode: int32(code),
			Headers: []*pluginv1.HTTPHeader{
				{Key: "Content-Type", Values: []string{"text/plain; charset=utf-8"}},
			},
		},
	})
	if err != nil {
		return err
	}
	if err := stream.Send(&pluginv1.ServeHTTPResponse{
		BodyChunk: []byte(http.StatusText(code) + "\n"),
	}); err != nil {
		return err
	}
	return stream.Send(&pluginv1.ServeHTTPResponse{BodyComplete: true})
}

// streamResponseWriter adapts the reply stream to http.ResponseWriter. The
// init frame goes out on the first WriteHeader or Write, after which header
// mutations are ignored, matching net/http semantics. It is used from the
// single handler goroutine only.
type streamResponseWriter struct {
	stream    httpStream
	header    http.Header
	wroteInit bool
	sendErr   error
}

var (
	_ http.ResponseWriter = (*streamResponseWriter)(nil)
	_ http.Flusher        = (*streamResponseWriter)(nil)
)

func (w *streamResponseWriter) Header() http.Header {
	return w.header
}

func (w *streamResponseWriter) WriteHeader(statusCode int) {
	if w.wroteInit {
		return
	}
	w.wroteInit = true
	w.send(&pluginv1.ServeHTTPResponse{
		Init: &pluginv1.ServeHTTPResponseInit{
			StatusCode: int32(statusCode),
			Headers:    headersToProto(w.header),
		},
	})
}

func (w *streamResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteInit {
		w.WriteHeader(http.StatusOK)
	}
	written := 0
	for len(p) > 0 {
		if w.sendErr != nil {
			return written, w.sendErr
		}
		chunk := p
		if len(chunk) > httpBodyChunkSize {
			chunk = chunk[:httpBodyChunkSize]
		}
		w.send(&pluginv1.ServeHTTPResponse{BodyChunk: chunk})
		written += len(chunk)
		p = p[len(chunk):]
	}
	return written, w.sendErr
}

func (w *streamResponseWriter) Flush() {
	if !w.wroteInit {
		w.WriteHeader(http.StatusOK)
	}
	w.send(&pluginv1.ServeHTTPResponse{Flush: true})
}

// finish emits the terminal frame. Handlers that never wrote get an implicit
// empty 200, the same as net/http.
func (w *streamResponseWriter) finish() error {
	if !w.wroteInit {
		w.WriteHeader(http.StatusOK)
	}
	w.send(&pluginv1.ServeHTTPResponse{BodyComplete: true})
	return w.sendErr
}

func (w *streamResponseWriter) send(frame *pluginv1.ServeHTTPResponse) {
	if w.sendErr != nil {
		return
	}
	if err := w.stream.Context().Err(); err != nil {
		w.sendErr = err
		return
	}
	w.sendErr = w.stream.Send(frame)
}

func headersToProto(h http.Header) []*pluginv1.HTTPHeader {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*pluginv1.HTTPHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, &pluginv1.HTTPHeader{Key: k, Values: h[k]})
	}
	return out
}

func headersFromProto(hs []*pluginv1.HTTPHeader) http.Header {
	h := make(http.Header, len(hs))
	for _, hdr := range hs {
		for _, v := range hdr.GetValues() {
			h.Add(hdr.GetKey(), v)
		}
	}
	return h
}
