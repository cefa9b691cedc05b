package blueprint

// Locals is the open-ended key/value bag forwarded verbatim to skip
// predicates, extractors, transformers, and extension hooks. Its schema is
// defined by the views that consume it, not by the renderer.
type Locals map[string]any

// renderOptions holds the resolved options for a single render call.
type renderOptions struct {
	view    string
	root    any
	hasRoot bool
	meta    any
	hasMeta bool
	locals  Locals
}

// RenderOption configures a single render call.
type RenderOption func(*renderOptions)

// newRenderOptions applies opts over the defaults.
func newRenderOptions(opts []RenderOption) renderOptions {
	ro := renderOptions{
		view:   DefaultView,
		locals: make(Locals),
	}
	for _, opt := range opts {
		opt(&ro)
	}
	return ro
}

// DefaultView is the view name used when WithView is not given.
const DefaultView = "default"

// WithView selects the view to render with.
func WithView(name string) RenderOption {
	return func(ro *renderOptions) {
		ro.view = name
	}
}

// WithRoot nests the payload under the given key. The value must be of
// string kind (plain strings and named string types both qualify); any other
// type fails the render call with ErrInvalidRoot.
func WithRoot(root any) RenderOption {
	return func(ro *renderOptions) {
		ro.root = root
		ro.hasRoot = true
	}
}

// WithMeta adds a "meta" key beside the root key. Requires WithRoot;
// meta without a root fails the render call with ErrMetaRequiresRoot.
func WithMeta(meta any) RenderOption {
	return func(ro *renderOptions) {
		ro.meta = meta
		ro.hasMeta = true
	}
}

// WithLocal adds one local option forwarded to fields, transformers, and
// extension hooks.
func WithLocal(key string, value any) RenderOption {
	return func(ro *renderOptions) {
		ro.locals[key] = value
	}
}

// WithLocals merges the given map into the local options.
func WithLocals(locals map[string]any) RenderOption {
	return func(ro *renderOptions) {
		for k, v := range locals {
			ro.locals[k] = v
		}
	}
}
