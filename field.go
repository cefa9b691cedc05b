package blueprint

// Field represents one output key. A field decides its own inclusion via
// Skip and produces its value via Extract. Fields within a view are ordered;
// that order is the key order of the rendered hash.
//
// Concrete variants are selected at view-definition time: Attribute reads a
// struct field or method by name, Compute delegates to a function, and
// Association renders a nested object through another view.
type Field interface {
	// Name returns the output key.
	Name() string

	// Skip reports whether the field should be omitted for this object.
	// Skipped fields leave no key behind, not even a null.
	Skip(name string, obj any, locals Locals) bool

	// Extract produces the field value for this object. Errors propagate
	// to the render caller unmodified.
	Extract(obj any, locals Locals) (any, error)
}

// ExtractFunc produces a field value from an object.
type ExtractFunc func(obj any, locals Locals) (any, error)

// ConditionFunc decides field inclusion for an object.
type ConditionFunc func(name string, obj any, locals Locals) bool

// fieldOptions holds declaration-time inclusion and fallback settings.
type fieldOptions struct {
	onlyIf       []ConditionFunc
	unless       []ConditionFunc
	excludeIfNil bool
	hasDefault   bool
	defaultValue any
}

// FieldOption configures a field at declaration time.
type FieldOption func(*fieldOptions)

// OnlyIf includes the field only when fn returns true. Multiple OnlyIf
// conditions must all hold.
func OnlyIf(fn ConditionFunc) FieldOption {
	return func(fo *fieldOptions) {
		fo.onlyIf = append(fo.onlyIf, fn)
	}
}

// Unless omits the field when fn returns true.
func Unless(fn ConditionFunc) FieldOption {
	return func(fo *fieldOptions) {
		fo.unless = append(fo.unless, fn)
	}
}

// ExcludeIfNil omits the field when its extracted value is nil.
func ExcludeIfNil() FieldOption {
	return func(fo *fieldOptions) {
		fo.excludeIfNil = true
	}
}

// WithDefault substitutes value when the extracted value is nil.
func WithDefault(value any) FieldOption {
	return func(fo *fieldOptions) {
		fo.hasDefault = true
		fo.defaultValue = value
	}
}

// baseField carries the name and declaration options shared by all variants.
type baseField struct {
	name string
	opts fieldOptions
}

func (f *baseField) Name() string {
	return f.name
}

// skipByConditions evaluates the declared OnlyIf/Unless conditions.
func (f *baseField) skipByConditions(name string, obj any, locals Locals) bool {
	for _, cond := range f.opts.onlyIf {
		if !cond(name, obj, locals) {
			return true
		}
	}
	for _, cond := range f.opts.unless {
		if cond(name, obj, locals) {
			return true
		}
	}
	return false
}

// applyDefault substitutes the declared default for nil values.
func (f *baseField) applyDefault(v any) any {
	if f.opts.hasDefault && isNil(v) {
		return f.opts.defaultValue
	}
	return v
}

// attributeField reads an exported struct field or niladic method by name.
type attributeField struct {
	baseField
	source string
}

// Attribute returns a field that extracts the exported struct field or
// niladic method named source, exposing it under name.
func Attribute(name, source string, opts ...FieldOption) Field {
	f := &attributeField{baseField: baseField{name: name}, source: source}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

func (f *attributeField) Skip(name string, obj any, locals Locals) bool {
	if f.skipByConditions(name, obj, locals) {
		return true
	}
	if f.opts.excludeIfNil {
		v, err := extractAttribute(obj, f.source)
		if err == nil && isNil(v) {
			return true
		}
	}
	return false
}

func (f *attributeField) Extract(obj any, locals Locals) (any, error) {
	v, err := extractAttribute(obj, f.source)
	if err != nil {
		return nil, err
	}
	return f.applyDefault(v), nil
}

// computedField delegates extraction to a function.
type computedField struct {
	baseField
	fn ExtractFunc
}

// Compute returns a field whose value is produced by fn.
func Compute(name string, fn ExtractFunc, opts ...FieldOption) Field {
	f := &computedField{baseField: baseField{name: name}, fn: fn}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

func (f *computedField) Skip(name string, obj any, locals Locals) bool {
	if f.skipByConditions(name, obj, locals) {
		return true
	}
	if f.opts.excludeIfNil {
		v, err := f.fn(obj, locals)
		if err == nil && isNil(v) {
			return true
		}
	}
	return false
}

func (f *computedField) Extract(obj any, locals Locals) (any, error) {
	v, err := f.fn(obj, locals)
	if err != nil {
		return nil, err
	}
	return f.applyDefault(v), nil
}

// associationField renders a nested object or collection through another view.
type associationField struct {
	baseField
	source string
	view   *View
}

// Association returns a field that extracts the attribute named source and
// renders it through view. Collections render element-wise; nil values stay
// nil (or the declared default).
func Association(name, source string, view *View, opts ...FieldOption) Field {
	f := &associationField{baseField: baseField{name: name}, source: source, view: view}
	for _, opt := range opts {
		opt(&f.opts)
	}
	return f
}

func (f *associationField) Skip(name string, obj any, locals Locals) bool {
	if f.skipByConditions(name, obj, locals) {
		return true
	}
	if f.opts.excludeIfNil {
		v, err := extractAttribute(obj, f.source)
		if err == nil && isNil(v) {
			return true
		}
	}
	return false
}

func (f *associationField) Extract(obj any, locals Locals) (any, error) {
	v, err := extractAttribute(obj, f.source)
	if err != nil {
		return nil, err
	}
	if isNil(v) {
		return f.applyDefault(nil), nil
	}
	if isCollection(v) {
		items := collectionItems(v)
		out := make([]*Hash, 0, len(items))
		for _, item := range items {
			h, err := hashFields(f.view.fields, f.view.transformers, item, locals)
			if err != nil {
				return nil, err
			}
			out = append(out, h)
		}
		return out, nil
	}
	return hashFields(f.view.fields, f.view.transformers, v, locals)
}
