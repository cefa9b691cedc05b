package blueprint

// Codec provides content-type aware encoding of rendered output.
// The renderer is agnostic to the concrete encoding library; implementations
// live in the json, yaml, and msgpack subpackages.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
}
