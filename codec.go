package censor

// Codec provides content-type aware marshaling of masked results.
// Implementations live in the json, yaml, msgpack and bson sub-packages.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
}
