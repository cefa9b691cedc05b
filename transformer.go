package blueprint

// Transformer post-processes a rendered hash in place, given the original
// object. Transformers run in the order declared by the view, after all
// fields have been written; each observes the hash as left by its
// predecessor.
type Transformer interface {
	// Transform mutates h in place. Errors propagate to the render caller
	// unmodified.
	Transform(h *Hash, obj any, locals Locals) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(h *Hash, obj any, locals Locals) error

// Transform calls fn.
func (fn TransformerFunc) Transform(h *Hash, obj any, locals Locals) error {
	return fn(h, obj, locals)
}
