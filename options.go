package censor

import (
	"reflect"
	"time"
)

// DefaultMaskValue replaces every masked leaf unless WithMaskValue says otherwise.
const DefaultMaskValue = "[CENSORED]"

// DefaultTimeLayout formats time.Time leaves.
const DefaultTimeLayout = time.RFC3339Nano

// TypeHandler renders a value of one concrete type. Its output is emitted
// verbatim: it is neither masked nor scanned by exclude patterns.
type TypeHandler func(v any) string

// Option configures a Processor at construction.
type Option func(*options) error

// options is the mutable builder behind New. It is never shared with a
// Processor; New copies what it needs.
type options struct {
	format               Format
	maskValue            string
	patterns             []string
	timeLayout           string
	handlers             map[reflect.Type]TypeHandler
	fieldNameMapper      func(string) string
	keyAnnotations       map[string]Annotation
	displayStructName    bool
	displayMapType       bool
	displayPointerSymbol bool
	useJSONTagName       bool
	maxDepth             int
	printConfig          bool
}

func defaultOptions() *options {
	return &options{
		format:         FormatText,
		maskValue:      DefaultMaskValue,
		timeLayout:     DefaultTimeLayout,
		handlers:       make(map[reflect.Type]TypeHandler),
		keyAnnotations: make(map[string]Annotation),
	}
}

// WithFormat selects the encoder used by Format.
func WithFormat(f Format) Option {
	return func(o *options) error {
		if !IsValidFormat(f) {
			return newConfigError(ErrInvalidFormat, "output-format", string(f), nil)
		}
		o.format = f
		return nil
	}
}

// WithMaskValue sets the token substituted for masked values and pattern
// matches.
func WithMaskValue(mask string) Option {
	return func(o *options) error {
		if mask == "" {
			return newConfigError(ErrEmptyMaskValue, "mask-value", "", nil)
		}
		o.maskValue = mask
		return nil
	}
}

// WithExcludePatterns appends regular expressions whose matches are
// replaced inside every displayed string. Patterns apply in order.
func WithExcludePatterns(patterns ...string) Option {
	return func(o *options) error {
		o.patterns = append(o.patterns, patterns...)
		return nil
	}
}

// WithTimeLayout sets the layout used to render time.Time values.
func WithTimeLayout(layout string) Option {
	return func(o *options) error {
		if layout == "" {
			return newConfigError(ErrInvalidConfig, "time-layout", "", nil)
		}
		o.timeLayout = layout
		return nil
	}
}

// WithTypeHandler registers h for values whose concrete type is exactly t.
// A later registration for the same type replaces an earlier one.
func WithTypeHandler(t reflect.Type, h TypeHandler) Option {
	return func(o *options) error {
		if t == nil || h == nil {
			return newConfigError(ErrNilHandler, "type-handler", typeString(t), nil)
		}
		o.handlers[t] = h
		return nil
	}
}

// Handle registers a typed handler for T.
//
//	censor.Handle(func(id UserID) string { return "user-" + id.Suffix() })
func Handle[T any](fn func(T) string) Option {
	t := reflect.TypeFor[T]()
	if fn == nil {
		return WithTypeHandler(t, nil)
	}
	return WithTypeHandler(t, func(v any) string {
		typed, ok := v.(T)
		if !ok {
			return ""
		}
		return fn(typed)
	})
}

// WithMasker renders every value of string type T through m.
func WithMasker[T ~string](m Masker) Option {
	if m == nil {
		return WithTypeHandler(reflect.TypeFor[T](), nil)
	}
	return Handle(func(v T) string {
		return m.Mask(string(v))
	})
}

// WithBuiltinMasker renders every value of string type T with the built-in
// masker registered for mt.
func WithBuiltinMasker[T ~string](mt MaskType) Option {
	m, ok := BuiltinMasker(mt)
	if !ok {
		return func(*options) error {
			return newConfigError(ErrUnknownMasker, "masker", string(mt), nil)
		}
	}
	return WithMasker[T](m)
}

// WithFieldNameMapper transforms struct field names in text output.
func WithFieldNameMapper(fn func(string) string) Option {
	return func(o *options) error {
		o.fieldNameMapper = fn
		return nil
	}
}

// WithKeyAnnotation applies a to map entries whose key renders as key,
// as if the entry were a struct field tagged with a.
func WithKeyAnnotation(key string, a Annotation) Option {
	return func(o *options) error {
		o.keyAnnotations[key] = a
		return nil
	}
}

// WithDisplayStructName prefixes struct text output with the Go type name.
func WithDisplayStructName(enabled bool) Option {
	return func(o *options) error {
		o.displayStructName = enabled
		return nil
	}
}

// WithDisplayMapType renders the Go map type in place of "map" in text output.
func WithDisplayMapType(enabled bool) Option {
	return func(o *options) error {
		o.displayMapType = enabled
		return nil
	}
}

// WithDisplayPointerSymbol prefixes values reached through a pointer with '&'
// in text output.
func WithDisplayPointerSymbol(enabled bool) Option {
	return func(o *options) error {
		o.displayPointerSymbol = enabled
		return nil
	}
}

// WithJSONTagName uses json tag names for struct fields in text output.
func WithJSONTagName(enabled bool) Option {
	return func(o *options) error {
		o.useJSONTagName = enabled
		return nil
	}
}

// WithMaxDepth bounds traversal depth. Zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(o *options) error {
		if depth < 0 {
			return newConfigError(ErrInvalidConfig, "max-depth", "", nil)
		}
		o.maxDepth = depth
		return nil
	}
}

// WithConfig applies a serialized configuration. Options given after it
// override its values.
func WithConfig(c Config) Option {
	return func(o *options) error {
		if err := c.Validate(); err != nil {
			return err
		}
		o.format = c.General.OutputFormat
		o.printConfig = c.General.PrintConfigOnInit
		o.maskValue = c.Encoder.MaskValue
		o.patterns = append([]string(nil), c.Encoder.ExcludePatterns...)
		if c.Encoder.TimeLayout != "" {
			o.timeLayout = c.Encoder.TimeLayout
		}
		o.displayStructName = c.Encoder.DisplayStructName
		o.displayMapType = c.Encoder.DisplayMapType
		o.displayPointerSymbol = c.Encoder.DisplayPointerSymbol
		o.useJSONTagName = c.Encoder.UseJSONTagName
		o.maxDepth = c.Encoder.MaxDepth
		return nil
	}
}

// config snapshots the serializable subset of o.
func (o *options) config() Config {
	return Config{
		General: General{
			OutputFormat:      o.format,
			PrintConfigOnInit: o.printConfig,
		},
		Encoder: EncoderConfig{
			MaskValue:            o.maskValue,
			ExcludePatterns:      append([]string(nil), o.patterns...),
			TimeLayout:           o.timeLayout,
			DisplayStructName:    o.displayStructName,
			DisplayMapType:       o.displayMapType,
			DisplayPointerSymbol: o.displayPointerSymbol,
			UseJSONTagName:       o.useJSONTagName,
			MaxDepth:             o.maxDepth,
		},
	}
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
