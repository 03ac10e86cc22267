// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package logging provides structured logging with OpenTelemetry trace
// context. The host logs to stderr only; stdout belongs to the plugin
// handshake protocol.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// Options configures Setup. The zero value means JSON to stderr at info.
type Options struct {
	// Format is "json" or "text"; anything else means JSON.
	Format string
	// Level is the minimum level emitted.
	Level slog.Leveler
	// Writer overrides the destination; nil means os.Stderr.
	Writer io.Writer
}

// groupOrAttrs records one WithGroup or WithAttrs call so Handle can replay
// the chain on top of the trace attributes.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// traceHandler wraps a slog.Handler to stamp trace context onto every
// record. The base handler already carries the service identity; trace
// attributes are applied to it before any group opens, so they stay
// top-level no matter how the logger was derived.
type traceHandler struct {
	base slog.Handler
	goas []groupOrAttrs
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	handler := h.base

	spanCtx := trace.SpanContextFromContext(ctx)
	var traceAttrs []slog.Attr
	if spanCtx.HasTraceID() {
		traceAttrs = append(traceAttrs, slog.String("trace_id", spanCtx.TraceID().String()))
	}
	if spanCtx.HasSpanID() {
		traceAttrs = append(traceAttrs, slog.String("span_id", spanCtx.SpanID().String()))
	}
	if len(traceAttrs) > 0 {
		handler = handler.WithAttrs(traceAttrs)
	}

	for _, goa := range h.goas {
		if goa.group != "" {
			handler = handler.WithGroup(goa.group)
		} else {
			handler = handler.WithAttrs(goa.attrs)
		}
	}

	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return handler.Handle(ctx, r)
}

func (h *traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *traceHandler) withGroupOrAttrs(goa groupOrAttrs) *traceHandler {
	goas := make([]groupOrAttrs, len(h.goas)+1)
	copy(goas, h.goas)
	goas[len(h.goas)] = goa
	return &traceHandler{base: h.base, goas: goas}
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

// Setup creates a configured slog.Logger for the named service.
func Setup(service, version string, opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var base slog.Handler
	if opts.Format == "text" {
		base = slog.NewTextHandler(w, handlerOpts)
	} else {
		base = slog.NewJSONHandler(w, handlerOpts)
	}
	base = base.WithAttrs([]slog.Attr{
		slog.String("service", service),
		slog.String("version", version),
	})

	return slog.New(&traceHandler{base: base})
}

// SetDefault installs a logger built from opts as the process default.
func SetDefault(service, version string, opts Options) {
	slog.SetDefault(Setup(service, version, opts))
}
