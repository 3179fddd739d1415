package censor

import (
	"testing"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatText, true},
		{FormatJSON, true},
		{"xml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidFormat(tt.format); got != tt.want {
			t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		tag  string
		want Annotation
	}{
		{"", AnnotationNone},
		{"display", AnnotationDisplay},
		{"mask", AnnotationMask},
		{"-", AnnotationIgnore},
		{"dispaly", AnnotationMask}, // typo fails closed
		{"DISPLAY", AnnotationMask},
	}

	for _, tt := range tests {
		if got := ParseAnnotation(tt.tag); got != tt.want {
			t.Errorf("ParseAnnotation(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestAnnotation_String(t *testing.T) {
	tests := []struct {
		ann  Annotation
		want string
	}{
		{AnnotationNone, "none"},
		{AnnotationDisplay, "display"},
		{AnnotationMask, "mask"},
		{AnnotationIgnore, "-"},
	}

	for _, tt := range tests {
		if got := tt.ann.String(); got != tt.want {
			t.Errorf("Annotation(%d).String() = %q, want %q", tt.ann, got, tt.want)
		}
	}
}
