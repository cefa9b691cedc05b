package blueprint

// ViewSource resolves view names to their ordered fields and transformers.
// ViewCollection is the standard implementation; the renderer only depends
// on this interface.
type ViewSource interface {
	// Has reports whether a view with the given name is defined.
	Has(name string) bool

	// Fields returns the ordered field list for the named view.
	Fields(name string) []Field

	// Transformers returns the ordered transformer list for the named view.
	Transformers(name string) []Transformer
}

// View is a named, ordered set of fields and transformers. Views are built
// at declaration time and treated as immutable once rendering starts.
type View struct {
	name         string
	fields       []Field
	transformers []Transformer
}

// NewView returns an empty view with the given name.
func NewView(name string) *View {
	return &View{name: name}
}

// Name returns the view name.
func (v *View) Name() string {
	return v.name
}

// Field appends a field. Returns the view for chaining.
func (v *View) Field(f Field) *View {
	v.fields = append(v.fields, f)
	return v
}

// Attribute appends an attribute field exposing source under name.
func (v *View) Attribute(name, source string, opts ...FieldOption) *View {
	return v.Field(Attribute(name, source, opts...))
}

// Compute appends a computed field backed by fn.
func (v *View) Compute(name string, fn ExtractFunc, opts ...FieldOption) *View {
	return v.Field(Compute(name, fn, opts...))
}

// Association appends an association field rendering source through target.
func (v *View) Association(name, source string, target *View, opts ...FieldOption) *View {
	return v.Field(Association(name, source, target, opts...))
}

// Transform appends a transformer. Returns the view for chaining.
func (v *View) Transform(t Transformer) *View {
	v.transformers = append(v.transformers, t)
	return v
}

// Include appends another view's fields and transformers, preserving their
// order. Later declarations on the receiver follow the included ones.
func (v *View) Include(other *View) *View {
	v.fields = append(v.fields, other.fields...)
	v.transformers = append(v.transformers, other.transformers...)
	return v
}

// ViewCollection is a set of views addressable by name.
//
// Build the collection before the first render call; it performs no locking
// and is safe for concurrent reads only.
type ViewCollection struct {
	views map[string]*View
}

// NewViewCollection returns a collection holding the given views.
func NewViewCollection(views ...*View) *ViewCollection {
	c := &ViewCollection{views: make(map[string]*View, len(views))}
	for _, v := range views {
		c.Add(v)
	}
	return c
}

// Add registers a view under its name, replacing any previous definition.
// Returns the collection for chaining.
func (c *ViewCollection) Add(v *View) *ViewCollection {
	c.views[v.name] = v
	return c
}

// Has reports whether a view with the given name is defined.
func (c *ViewCollection) Has(name string) bool {
	_, ok := c.views[name]
	return ok
}

// Fields returns the ordered field list for the named view, or nil if the
// view is undefined.
func (c *ViewCollection) Fields(name string) []Field {
	v, ok := c.views[name]
	if !ok {
		return nil
	}
	return v.fields
}

// Transformers returns the ordered transformer list for the named view, or
// nil if the view is undefined.
func (c *ViewCollection) Transformers(name string) []Transformer {
	v, ok := c.views[name]
	if !ok {
		return nil
	}
	return v.transformers
}
