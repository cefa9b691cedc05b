package blueprint

// Extension hooks into the render pipeline. PreRender runs exactly once per
// render call, after view resolution and before any field extraction.
//
// The returned object replaces the input for all subsequent steps, so an
// extension may decorate, filter, or swap the object entirely. Extensions
// that only observe should return obj unchanged.
type Extension interface {
	PreRender(obj any, r *Renderer, view string, locals Locals) any
}

// ExtensionFunc adapts a function to the Extension interface.
type ExtensionFunc func(obj any, r *Renderer, view string, locals Locals) any

// PreRender calls fn.
func (fn ExtensionFunc) PreRender(obj any, r *Renderer, view string, locals Locals) any {
	return fn(obj, r, view, locals)
}

// preRender dispatches the hook chain in registration order. Each hook sees
// the object as left by its predecessor.
func (r *Renderer) preRender(obj any, view string, locals Locals) any {
	for _, ext := range r.extensions {
		obj = ext.PreRender(obj, r, view, locals)
	}
	return obj
}
