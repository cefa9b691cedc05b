package blueprint

import (
	"context"
	"reflect"
	"time"
)

// Renderer converts objects into view-shaped hashes and encoded output.
//
// A renderer holds its full configuration explicitly: the view source, the
// codec, registered extensions, and the collection detector. Render calls
// are pure functions of that configuration plus their inputs; the renderer
// keeps no per-call state and is safe for concurrent use once the view
// definitions are finalized.
type Renderer struct {
	views        ViewSource
	codec        Codec
	extensions   []Extension
	isCollection func(any) bool
}

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithExtension registers an extension. Extensions run in registration order.
func WithExtension(ext Extension) Option {
	return func(r *Renderer) {
		r.extensions = append(r.extensions, ext)
	}
}

// WithCollectionDetector replaces the default collection check. The default
// treats Collection implementors, slices, and arrays (except []byte) as
// collections.
func WithCollectionDetector(fn func(any) bool) Option {
	return func(r *Renderer) {
		r.isCollection = fn
	}
}

// New creates a Renderer over the given view source and codec.
func New(views ViewSource, codec Codec, opts ...Option) *Renderer {
	r := &Renderer{
		views:        views,
		codec:        codec,
		isCollection: isCollection,
	}
	for _, opt := range opts {
		opt(r)
	}

	emitRendererCreated(context.Background(), codec.ContentType())
	return r
}

// Render converts obj through the selected view and encodes the result via
// the configured codec.
func (r *Renderer) Render(ctx context.Context, obj any, opts ...RenderOption) ([]byte, error) {
	ro := newRenderOptions(opts)

	start := time.Now()
	emitRenderStart(ctx, r.codec.ContentType(), "render", ro.view)

	var retErr error
	var retData []byte
	var objects int
	defer func() {
		emitRenderComplete(ctx, r.codec.ContentType(), "render", ro.view,
			objects, len(retData), time.Since(start), retErr)
	}()

	payload, n, err := r.renderEnvelope(obj, ro)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	objects = n

	retData, err = r.codec.Marshal(payload)
	if err != nil {
		retErr = newCodecError(err)
		return nil, retErr
	}
	return retData, nil
}

// RenderAsHash converts obj through the selected view and returns the
// envelope-wrapped mapping without encoding. The result is a *Hash, or a
// []*Hash for collection input without a root.
func (r *Renderer) RenderAsHash(ctx context.Context, obj any, opts ...RenderOption) (any, error) {
	ro := newRenderOptions(opts)

	start := time.Now()
	emitRenderStart(ctx, r.codec.ContentType(), "render_hash", ro.view)

	var retErr error
	var objects int
	defer func() {
		emitRenderComplete(ctx, r.codec.ContentType(), "render_hash", ro.view,
			objects, 0, time.Since(start), retErr)
	}()

	payload, n, err := r.renderEnvelope(obj, ro)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	objects = n
	return payload, nil
}

// RenderAsJSON converts obj through the selected view and returns a deep
// JSON-safe value tree (map[string]any, []any, primitives) without
// serializing it.
func (r *Renderer) RenderAsJSON(ctx context.Context, obj any, opts ...RenderOption) (any, error) {
	ro := newRenderOptions(opts)

	start := time.Now()
	emitRenderStart(ctx, r.codec.ContentType(), "render_json", ro.view)

	var retErr error
	var objects int
	defer func() {
		emitRenderComplete(ctx, r.codec.ContentType(), "render_json", ro.view,
			objects, 0, time.Since(start), retErr)
	}()

	payload, n, err := r.renderEnvelope(obj, ro)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	objects = n
	return jsonSafe(payload), nil
}

// Hashify converts obj through the named view without envelope or encoding.
// The result is a *Hash for a single object or a []*Hash for a collection.
func (r *Renderer) Hashify(ctx context.Context, obj any, view string, locals Locals) (any, error) {
	out, _, err := r.hashify(obj, view, locals)
	return out, err
}

// renderEnvelope runs the hashify pipeline and wraps the result per the
// root/meta options. Returns the payload and the number of objects rendered.
func (r *Renderer) renderEnvelope(obj any, ro renderOptions) (any, int, error) {
	data, n, err := r.hashify(obj, ro.view, ro.locals)
	if err != nil {
		return nil, 0, err
	}

	root, hasRoot, err := handleRootAndMeta(ro)
	if err != nil {
		return nil, 0, err
	}

	return prependRootAndMeta(data, root, hasRoot, ro.meta, ro.hasMeta), n, nil
}

// hashify resolves the view, dispatches the pre-render hooks, and converts.
// The view check runs first: an undefined view fails before any hook or
// field executes.
func (r *Renderer) hashify(obj any, view string, locals Locals) (any, int, error) {
	if !r.views.Has(view) {
		return nil, 0, newViewError(view)
	}

	obj = r.preRender(obj, view, locals)
	return r.prepareData(obj, view, locals)
}

// prepareData branches on collection-ness: collections convert element-wise
// in input order, single objects convert directly.
func (r *Renderer) prepareData(obj any, view string, locals Locals) (any, int, error) {
	if r.isCollection(obj) {
		items := collectionItems(obj)
		out := make([]*Hash, 0, len(items))
		for _, item := range items {
			h, err := r.objectToHash(item, view, locals)
			if err != nil {
				return nil, 0, err
			}
			out = append(out, h)
		}
		return out, len(out), nil
	}

	h, err := r.objectToHash(obj, view, locals)
	if err != nil {
		return nil, 0, err
	}
	return h, 1, nil
}

// objectToHash converts one object through the named view.
func (r *Renderer) objectToHash(obj any, view string, locals Locals) (*Hash, error) {
	return hashFields(r.views.Fields(view), r.views.Transformers(view), obj, locals)
}

// hashFields is the per-object conversion: fields in declared order with
// skipped keys omitted entirely, then transformers in declared order.
// Association fields reuse it for nested views.
func hashFields(fields []Field, transformers []Transformer, obj any, locals Locals) (*Hash, error) {
	h := NewHash()

	for _, f := range fields {
		name := f.Name()
		if f.Skip(name, obj, locals) {
			continue
		}
		v, err := f.Extract(obj, locals)
		if err != nil {
			return nil, err
		}
		h.Set(name, v)
	}

	for _, t := range transformers {
		if err := t.Transform(h, obj, locals); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// handleRootAndMeta validates the root/meta options. A nil root counts as
// absent. The root-type check runs before the meta-requires-root rule.
func handleRootAndMeta(ro renderOptions) (string, bool, error) {
	hasRoot := ro.hasRoot && ro.root != nil

	var root string
	if hasRoot {
		rv := reflect.ValueOf(ro.root)
		if rv.Kind() != reflect.String {
			return "", false, newOptionError(ErrInvalidRoot, "root", ro.root)
		}
		root = rv.String()
	}

	if ro.hasMeta && !hasRoot {
		return "", false, newOptionError(ErrMetaRequiresRoot, "meta", nil)
	}

	return root, hasRoot, nil
}

// prependRootAndMeta wraps data in the envelope: {root: data} with an
// optional sibling "meta" key. Without a root, data passes through.
func prependRootAndMeta(data any, root string, hasRoot bool, meta any, hasMeta bool) any {
	if !hasRoot {
		return data
	}

	env := NewHash()
	env.Set(root, data)
	if hasMeta {
		env.Set("meta", meta)
	}
	return env
}
