package censor

// Format selects the encoder used by Processor.Format.
type Format string

const (
	// FormatText renders values in a fmt-like human readable form.
	FormatText Format = "text"

	// FormatJSON renders values as JSON documents.
	FormatJSON Format = "json"
)

// Annotation is the masking directive attached to a struct field with the
// `censor` tag.
type Annotation uint8

const (
	// AnnotationNone is an untagged field. Strings are masked, other scalars shown.
	AnnotationNone Annotation = iota

	// AnnotationDisplay forces the value to be shown. Exclude patterns still apply.
	AnnotationDisplay

	// AnnotationMask forces the whole value to be replaced by the mask token.
	AnnotationMask

	// AnnotationIgnore omits the field from every output.
	AnnotationIgnore
)

// Tag values recognised in the `censor` struct tag.
const (
	TagKey     = "censor"
	TagDisplay = "display"
	TagMask    = "mask"
	TagIgnore  = "-"
)

// validFormats contains all valid output formats for config validation.
var validFormats = map[Format]bool{
	FormatText: true,
	FormatJSON: true,
}

// IsValidFormat returns true if f is a known output format.
func IsValidFormat(f Format) bool {
	return validFormats[f]
}

// ParseAnnotation converts a `censor` tag value into an Annotation.
// An empty value is AnnotationNone; anything unrecognised is treated as
// AnnotationMask so that typos never reveal data.
func ParseAnnotation(tag string) Annotation {
	switch tag {
	case "":
		return AnnotationNone
	case TagDisplay:
		return AnnotationDisplay
	case TagMask:
		return AnnotationMask
	case TagIgnore:
		return AnnotationIgnore
	default:
		return AnnotationMask
	}
}

func (a Annotation) String() string {
	switch a {
	case AnnotationDisplay:
		return TagDisplay
	case AnnotationMask:
		return TagMask
	case AnnotationIgnore:
		return TagIgnore
	default:
		return "none"
	}
}
