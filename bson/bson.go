// Package bson provides a BSON codec for masked results.
package bson

import (
	"github.com/zoobzio/censor"
	"go.mongodb.org/mongo-driver/bson"
)

// ValueKey wraps results that are not documents.
const ValueKey = "value"

// bsonCodec implements censor.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() censor.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document. BSON has no top-level scalars or
// arrays, so anything other than a map is stored under ValueKey.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if doc, ok := v.(map[string]any); ok {
		return bson.Marshal(doc)
	}
	return bson.Marshal(bson.M{ValueKey: v})
}
