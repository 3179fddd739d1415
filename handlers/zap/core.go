// Package zaphandler masks zap fields with a censor.Processor.
package zaphandler

import (
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/censor"
)

// Option configures a core.
type Option func(*core)

// WithProcessor sets the processor used for field values. The global
// processor is used otherwise.
func WithProcessor(p *censor.Processor) Option {
	return func(c *core) {
		c.censor = p
	}
}

// WithMessageScrub applies the exclude patterns to entry messages.
func WithMessageScrub(enabled bool) Option {
	return func(c *core) {
		c.scrubMessage = enabled
	}
}

type core struct {
	zapcore.Core
	censor       *censor.Processor
	scrubMessage bool
}

// NewCore wraps next so that field values are masked before they are
// encoded. Reflected and Stringer fields are masked by the engine; string
// fields are only scrubbed by the exclude patterns.
func NewCore(next zapcore.Core, opts ...Option) zapcore.Core {
	c := &core{Core: next}
	for _, o := range opts {
		o(c)
	}
	if c.censor == nil {
		c.censor = censor.Global()
	}
	return c
}

// With masks fields before adding them to the wrapped core.
func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{
		Core:         c.Core.With(c.mask(fields)),
		censor:       c.censor,
		scrubMessage: c.scrubMessage,
	}
}

// Check registers c, not the wrapped core, so Write sees every entry.
func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

// Write masks fields and forwards the entry.
func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	if c.scrubMessage {
		e.Message = c.censor.Scrub(e.Message)
	}
	return c.Core.Write(e, c.mask(fields))
}

// mask returns a masked copy; the caller's slice is left untouched.
//
//nolint:exhaustive
func (c *core) mask(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	copy(out, fields)

	for i := range out {
		f := &out[i]
		switch f.Type {
		case zapcore.StringType:
			f.String = c.censor.Scrub(f.String)
		case zapcore.ReflectType:
			f.Interface = json.RawMessage(c.censor.Process(f.Interface).JSON())
		case zapcore.StringerType:
			s, ok := f.Interface.(fmt.Stringer)
			if !ok {
				continue
			}
			f.Type = zapcore.StringType
			f.String = c.censor.Scrub(s.String())
			f.Interface = nil
		}
	}

	return out
}
