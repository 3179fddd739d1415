// Package zerologhandler masks zerolog output with a censor.Processor.
//
//	h := zerologhandler.New(zerologhandler.WithProcessor(p))
//	zerolog.InterfaceMarshalFunc = h.InterfaceMarshal
//	logger := zerolog.New(h.Writer(os.Stdout))
package zerologhandler

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/zoobzio/censor"
)

// Option configures a Handler.
type Option func(*Handler)

// WithProcessor sets the processor. The global processor is used otherwise.
func WithProcessor(p *censor.Processor) Option {
	return func(h *Handler) {
		h.censor = p
	}
}

// Handler adapts a processor to zerolog's extension points.
type Handler struct {
	censor *censor.Processor
}

// New returns a configured Handler.
func New(opts ...Option) Handler {
	var h Handler
	for _, o := range opts {
		o(&h)
	}
	if h.censor == nil {
		h.censor = censor.Global()
	}
	return h
}

// InterfaceMarshal implements zerolog.InterfaceMarshalFunc. Values logged
// with Interface, Any or Fields are masked and encoded as JSON.
func (h Handler) InterfaceMarshal(v any) ([]byte, error) {
	return h.censor.Process(v).JSON(), nil
}

// Writer returns out wrapped so that every written line is scrubbed by the
// exclude patterns.
func (h Handler) Writer(out io.Writer) io.Writer {
	return writer{out: out, censor: h.censor}
}

// Logger returns a zerolog.Logger writing through Writer(out).
func (h Handler) Logger(out io.Writer) zerolog.Logger {
	return zerolog.New(h.Writer(out))
}

type writer struct {
	out    io.Writer
	censor *censor.Processor
}

// Write reports len(p) on success, as callers expect, even when scrubbing
// changed the length.
func (w writer) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.out, w.censor.Scrub(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
