// Package sloghandler masks log/slog attributes with a censor.Processor.
package sloghandler

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/zoobzio/censor"
)

// Option configures a Handler.
type Option func(*Handler)

// WithProcessor sets the processor used for attribute values. The global
// processor is used otherwise.
func WithProcessor(p *censor.Processor) Option {
	return func(h *Handler) {
		h.censor = p
	}
}

// WithMessageScrub applies the exclude patterns to record messages.
func WithMessageScrub(enabled bool) Option {
	return func(h *Handler) {
		h.scrubMessage = enabled
	}
}

// Handler masks attribute values before passing records to the next handler.
type Handler struct {
	next         slog.Handler
	censor       *censor.Processor
	scrubMessage bool
}

// NewHandler wraps next.
func NewHandler(next slog.Handler, opts ...Option) *Handler {
	h := &Handler{next: next}
	for _, o := range opts {
		o(h)
	}
	if h.censor == nil {
		h.censor = censor.Global()
	}
	return h
}

// Enabled reports whether the next handler handles level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle masks every attribute of r and forwards the copy.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	msg := r.Message
	if h.scrubMessage {
		msg = h.censor.Scrub(msg)
	}

	out := slog.NewRecord(r.Time, r.Level, msg, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.attr(a))
		return true
	})

	return h.next.Handle(ctx, out)
}

// WithAttrs masks attrs once and hands them to the next handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.attr(a)
	}
	return &Handler{
		next:         h.next.WithAttrs(masked),
		censor:       h.censor,
		scrubMessage: h.scrubMessage,
	}
}

// WithGroup opens a group on the next handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:         h.next.WithGroup(name),
		censor:       h.censor,
		scrubMessage: h.scrubMessage,
	}
}

func (h *Handler) attr(a slog.Attr) slog.Attr {
	return maskAttr(h.censor, a)
}

// ReplaceAttr returns a slog.HandlerOptions.ReplaceAttr function masking
// every attribute except the built-in time, level, source and message keys.
func ReplaceAttr(p *censor.Processor) func(groups []string, a slog.Attr) slog.Attr {
	if p == nil {
		p = censor.Global()
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 {
			switch a.Key {
			case slog.TimeKey, slog.LevelKey, slog.SourceKey, slog.MessageKey:
				return a
			}
		}
		return maskAttr(p, a)
	}
}

// maskAttr replaces the value of a with its masked rendering. Groups are
// masked member by member so their structure survives.
func maskAttr(p *censor.Processor, a slog.Attr) slog.Attr {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		members := v.Group()
		masked := make([]any, len(members))
		for i, m := range members {
			masked[i] = maskAttr(p, m)
		}
		return slog.Group(a.Key, masked...)
	}

	r := p.Process(v.Any())
	if p.OutputFormat() == censor.FormatJSON {
		return slog.Any(a.Key, json.RawMessage(r.JSON()))
	}
	return slog.String(a.Key, r.Text())
}
