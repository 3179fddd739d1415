// Package msgpack provides a MessagePack codec for masked results.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/censor"
)

// msgpackCodec implements censor.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() censor.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}
