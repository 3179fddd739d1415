// Package json provides a JSON codec for masked results.
package json

import (
	"github.com/goccy/go-json"
	"github.com/zoobzio/censor"
)

// jsonCodec implements censor.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() censor.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
