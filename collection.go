package blueprint

import "reflect"

// Collection marks a value as an ordered collection of renderable entities.
// Implementing this interface is a capability check: it lets list-like domain
// types (query results, pages, custom containers) render element-wise without
// being slices.
type Collection interface {
	// RenderItems returns the members in render order.
	RenderItems() []any
}

// isCollection reports whether v renders element-wise. The check is by
// capability first (the Collection interface), then by shape: slices and
// arrays count, except []byte which is a scalar on the wire. An empty
// collection is still a collection.
func isCollection(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Collection); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// collectionItems returns the members of a collection value in order.
func collectionItems(v any) []any {
	if c, ok := v.(Collection); ok {
		return c.RenderItems()
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// isNil reports whether v is nil, including typed nil pointers, maps,
// slices, interfaces, funcs, and channels.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
