// Package yaml provides a YAML codec for masked results.
package yaml

import (
	"github.com/zoobzio/censor"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements censor.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() censor.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
