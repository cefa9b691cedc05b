// Package blueprint provides view-based rendering of domain objects into
// ordered hashes and encoded wire formats.
//
// A view names an ordered set of fields and transformers. Given an arbitrary
// object (or collection of objects) and a view name, the renderer produces an
// insertion-ordered Hash per object, runs the view's transformers over it,
// optionally wraps the result in a root/meta envelope, and encodes it through
// a pluggable Codec.
//
// # Pipeline
//
// Every render call walks the same pipeline:
//
//  1. Resolve the view name (default "default"); fail if undefined.
//  2. Run registered extensions' PreRender hooks. A hook may return a
//     replacement object; the return value is used for all later steps.
//  3. Detect whether the input is a collection. Collections render to an
//     ordered sequence of hashes, one per member.
//  4. For each object, evaluate fields in declared order: skipped fields are
//     omitted entirely, extracted values are written under the field name.
//  5. Run the view's transformers in declared order; each may add, remove,
//     or rename keys in place.
//  6. Wrap in the root/meta envelope when requested.
//  7. Encode via the configured codec (Render only).
//
// # Basic Usage
//
//	views := blueprint.NewViewCollection(
//	    blueprint.NewView("default").
//	        Attribute("id", "ID").
//	        Attribute("title", "Title"),
//	    blueprint.NewView("extended").
//	        Attribute("id", "ID").
//	        Attribute("title", "Title").
//	        Compute("slug", func(obj any, locals blueprint.Locals) (any, error) {
//	            return slugify(obj.(Post).Title), nil
//	        }),
//	)
//
//	r := blueprint.New(views, json.New())
//
//	out, _ := r.Render(ctx, post, blueprint.WithView("extended"))
//	out, _ = r.Render(ctx, posts, blueprint.WithRoot("posts"), blueprint.WithMeta(meta))
//
// # Fields
//
// Fields are explicit Field values selected at view-definition time:
//
//   - Attribute(name, source) reads an exported struct field or niladic
//     method by name, using cached type metadata.
//   - Compute(name, fn) delegates to a function.
//   - Association(name, source, view) renders a nested object or collection
//     through another view.
//
// Field options control inclusion: OnlyIf, Unless, ExcludeIfNil, WithDefault.
//
// # Transformers
//
// Anything implementing Transformer (or a TransformerFunc) may reshape the
// hash after all fields are written. Transformers run in declared order and
// mutate the hash in place.
//
// # Envelope
//
// WithRoot("posts") nests the payload under "posts". WithMeta(v) adds a
// "meta" key beside the root key and requires a root. Root values must be of
// string kind; anything else fails with ErrInvalidRoot.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//
// All three preserve field declaration order on the wire through Hash's
// marshaler implementations.
//
// # Extensions
//
// Extensions observe and reshape the pipeline through PreRender, which runs
// exactly once per render call before any field extraction. Render lifecycle
// events are additionally emitted as capitan signals for metrics and audit
// consumers.
//
// # Concurrency
//
// A Renderer is safe for concurrent use once constructed. View, field, and
// transformer definitions are treated as immutable after the first render;
// the renderer itself performs no locking and keeps no per-call state.
package blueprint
