package censor

import (
	"context"
	"maps"
	"reflect"
	"sync"
	"time"
)

// Processor masks arbitrary values and renders the result.
//
// A Processor is immutable after New and safe for concurrent use. Every
// Process call owns its traversal state.
type Processor struct {
	format          Format
	maskValue       string
	timeLayout      string
	maxDepth        int
	scanner         *scanner
	handlers        map[reflect.Type]TypeHandler
	keyAnnotations  map[string]Annotation
	fieldNameMapper func(string) string
	useJSONTagName  bool

	text   textEncoder
	config Config
}

// New creates a Processor. Options are applied in order; the first invalid
// option aborts construction.
func New(opts ...Option) (*Processor, error) {
	ctx := context.Background()

	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			emitConfigRejected(ctx, err)
			return nil, err
		}
	}

	sc, err := newScanner(o.patterns, o.maskValue)
	if err != nil {
		emitConfigRejected(ctx, err)
		return nil, err
	}

	p := &Processor{
		format:          o.format,
		maskValue:       o.maskValue,
		timeLayout:      o.timeLayout,
		maxDepth:        o.maxDepth,
		scanner:         sc,
		handlers:        maps.Clone(o.handlers),
		keyAnnotations:  maps.Clone(o.keyAnnotations),
		fieldNameMapper: o.fieldNameMapper,
		useJSONTagName:  o.useJSONTagName,
		text: textEncoder{
			displayStructName:    o.displayStructName,
			displayMapType:       o.displayMapType,
			displayPointerSymbol: o.displayPointerSymbol,
		},
		config: o.config(),
	}

	if o.printConfig {
		emitConfigLoaded(ctx, p.config)
	}
	emitProcessorCreated(ctx, p.format, len(sc.patterns), len(p.handlers))
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Processor {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Process walks v once and returns its masked representation.
func (p *Processor) Process(v any) *Result {
	return p.ProcessContext(context.Background(), v)
}

// ProcessContext is Process with a context for emitted events.
func (p *Processor) ProcessContext(ctx context.Context, v any) *Result {
	start := time.Now()

	w := newWalker(p)
	root := w.walk(reflect.ValueOf(v), AnnotationNone)

	typeName := typeString(reflect.TypeOf(v))
	for _, t := range w.cycles {
		emitCycleDetected(ctx, t)
	}
	if w.maxDepth {
		emitDepthExceeded(ctx, typeName, p.maxDepth)
	}
	emitProcessComplete(ctx, typeName, time.Since(start), w.masked, len(w.cycles))

	return &Result{
		root:      root,
		text:      p.text,
		masked:    w.masked,
		cycles:    len(w.cycles),
		truncated: w.maxDepth,
	}
}

// Format processes v and renders it with the configured format.
func (p *Processor) Format(v any) string {
	r := p.Process(v)
	if p.format == FormatJSON {
		return string(r.JSON())
	}
	return r.Text()
}

// Scrub applies the exclude patterns to s.
func (p *Processor) Scrub(s string) string {
	return p.scanner.scrub(s)
}

// MaskValue returns the mask token.
func (p *Processor) MaskValue() string {
	return p.maskValue
}

// OutputFormat returns the format used by Format.
func (p *Processor) OutputFormat() Format {
	return p.format
}

// Config returns the serializable configuration the processor was built with.
func (p *Processor) Config() Config {
	c := p.config
	c.Encoder.ExcludePatterns = p.scanner.sources()
	return c
}

// fieldName returns the text key for a struct field.
func (p *Processor) fieldName(fd fieldDescriptor) string {
	name := fd.name
	if p.useJSONTagName && !fd.omitJSON {
		name = fd.jsonName
	}
	if p.fieldNameMapper != nil {
		return p.fieldNameMapper(name)
	}
	return name
}

var (
	global     *Processor
	globalMu   sync.RWMutex
	globalOnce sync.Once
)

// SetGlobal replaces the processor used by the package-level functions.
// A nil p restores the default.
func SetGlobal(p *Processor) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = p
}

// Global returns the processor used by the package-level functions.
func Global() *Processor {
	globalMu.RLock()
	p := global
	globalMu.RUnlock()
	if p != nil {
		return p
	}
	return defaultProcessor()
}

var defaultInstance *Processor

func defaultProcessor() *Processor {
	globalOnce.Do(func() {
		defaultInstance = MustNew()
	})
	return defaultInstance
}

// Process masks v with the global processor.
func Process(v any) *Result {
	return Global().Process(v)
}

// Sprint masks v with the global processor and renders it in the global
// processor's format.
func Sprint(v any) string {
	return Global().Format(v)
}
