// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package host

import (
	"context"
	"io"
	"net/http"
	"sort"

	"google.golang.org/grpc"

	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// httpChunkSize bounds one body frame on the plugin HTTP stream.
const httpChunkSize = 64 * 1024

type httpStream = grpc.BidiStreamingClient[pluginv1.ServeHTTPRequest, pluginv1.ServeHTTPResponse]

// HTTPHandler exposes the plugin's ServeHTTP hook as an http.Handler. The
// host mounts it under /plugins/<id>/.
func (c *HookClient) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.Has(pluginsdk.HookServeHTTP) {
			http.NotFound(w, r)
			return
		}
		c.bridge(w, r, func(ctx context.Context) (httpStream, error) {
			return c.rpc.ServeHTTP(ctx)
		})
	})
}

// MetricsHandler exposes the plugin's ServeMetrics hook, mounted under the
// host's metrics surface.
func (c *HookClient) MetricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.Has(pluginsdk.HookServeMetrics) {
			http.NotFound(w, r)
			return
		}
		c.bridge(w, r, func(ctx context.Context) (httpStream, error) {
			return c.rpc.ServeMetrics(ctx)
		})
	})
}

// bridge pumps one HTTP exchange across the plugin stream: init frame,
// request body chunks, then the plugin's response frames back out.
func (c *HookClient) bridge(w http.ResponseWriter, r *http.Request, open func(context.Context) (httpStream, error)) {
	stream, err := open(r.Context())
	if err != nil {
		c.log.Error("open plugin http stream", "error", err)
		http.Error(w, "plugin unavailable", http.StatusBadGateway)
		return
	}

	if err := c.sendRequest(stream, r); err != nil {
		c.log.Error("forward request to plugin", "error", err)
		http.Error(w, "plugin unavailable", http.StatusBadGateway)
		return
	}

	c.relayResponse(stream, w)
}

func (c *HookClient) sendRequest(stream httpStream, r *http.Request) error {
	init := &pluginv1.ServeHTTPRequestInit{
		Method:        r.Method,
		Url:           r.URL.String(),
		Proto:         r.Proto,
		ProtoMajor:    int32(r.ProtoMajor),
		ProtoMinor:    int32(r.ProtoMinor),
		Host:          r.Host,
		RemoteAddr:    r.RemoteAddr,
		RequestUri:    r.RequestURI,
		ContentLength: r.ContentLength,
		Headers:       headersToProto(r.Header),
		PluginContext: contextFromRequest(r),
	}
	if err := stream.Send(&pluginv1.ServeHTTPRequest{Init: init}); err != nil {
		return err
	}

	buf := make([]byte, httpChunkSize)
	for {
		n, readErr := r.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if err := stream.Send(&pluginv1.ServeHTTPRequest{BodyChunk: chunk}); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	if err := stream.Send(&pluginv1.ServeHTTPRequest{BodyComplete: true}); err != nil {
		return err
	}
	return stream.CloseSend()
}

func (c *HookClient) relayResponse(stream httpStream, w http.ResponseWriter) {
	wroteHeader := false
	flusher, _ := w.(http.Flusher)

	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			c.log.Error("plugin http stream failed", "error", err)
			if !wroteHeader {
				http.Error(w, "plugin request failed", http.StatusBadGateway)
			}
			return
		}

		if init := frame.GetInit(); init != nil && !wroteHeader {
			for _, h := range init.GetHeaders() {
				for _, v := range h.GetValues() {
					w.Header().Add(h.GetKey(), v)
				}
			}
			status := int(init.GetStatusCode())
			if status == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			wroteHeader = true
		}

		if chunk := frame.GetBodyChunk(); len(chunk) > 0 {
			if !wroteHeader {
				w.WriteHeader(http.StatusOK)
				wroteHeader = true
			}
			if _, err := w.Write(chunk); err != nil {
				// Client went away; drain nothing further.
				return
			}
		}

		if frame.GetFlush() && flusher != nil {
			flusher.Flush()
		}

		if frame.GetBodyComplete() {
			return
		}
	}
}

// contextFromRequest builds the plugin context carried in the init frame
// from request headers the host's session layer populated.
func contextFromRequest(r *http.Request) *pluginv1.PluginContext {
	return &pluginv1.PluginContext{
		SessionId:      r.Header.Get("Chatgrid-Session-Id"),
		RequestId:      r.Header.Get("Chatgrid-Request-Id"),
		IpAddress:      r.RemoteAddr,
		AcceptLanguage: r.Header.Get("Accept-Language"),
		UserAgent:      r.Header.Get("User-Agent"),
	}
}

// headersToProto converts an http.Header map, sorted by key so frame bytes
// are deterministic.
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
