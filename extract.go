package blueprint

import (
	"fmt"
	"reflect"
)

// extractAttribute resolves source against obj: an exported struct field, a
// string-keyed map entry, or a niladic method, in that order. Pointers are
// dereferenced along the way. Failures surface as errors and propagate to
// the render caller.
func extractAttribute(obj any, source string) (any, error) {
	if obj == nil {
		return nil, fmt.Errorf("cannot extract %q from nil object", source)
	}

	rv := reflect.ValueOf(obj)
	base := rv
	for base.Kind() == reflect.Ptr {
		if base.IsNil() {
			return nil, fmt.Errorf("cannot extract %q from nil %s", source, base.Type())
		}
		base = base.Elem()
	}

	if base.Kind() == reflect.Struct {
		spec := metadataFor(base.Type())
		for _, fm := range spec.Fields {
			if fm.Name == source {
				return base.FieldByIndex(fm.Index).Interface(), nil
			}
		}
	}

	if base.Kind() == reflect.Map && base.Type().Key().Kind() == reflect.String {
		mv := base.MapIndex(reflect.ValueOf(source).Convert(base.Type().Key()))
		if mv.IsValid() {
			return mv.Interface(), nil
		}
	}

	m := rv.MethodByName(source)
	if !m.IsValid() {
		m = base.MethodByName(source)
	}
	if m.IsValid() {
		return callGetter(m, source)
	}

	return nil, fmt.Errorf("no attribute %q on %s", source, rv.Type())
}

// callGetter invokes a niladic getter method returning (T) or (T, error).
func callGetter(m reflect.Value, source string) (any, error) {
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() < 1 || mt.NumOut() > 2 {
		return nil, fmt.Errorf("method %q is not a getter: want func() T or func() (T, error)", source)
	}

	results := m.Call(nil)
	if len(results) == 2 {
		if err, ok := results[1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return results[0].Interface(), nil
}
