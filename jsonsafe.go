package blueprint

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// jsonSafe deep-coerces a rendered payload into the Go-idiomatic JSON value
// tree: map[string]any, []any, and primitives. Hashes become plain maps
// (key order is not preserved; ordered output is the domain of Render and
// RenderAsHash), times become RFC 3339 strings, []byte becomes base64, and
// custom json.Marshaler implementations are honored by round-tripping.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *Hash:
		out := make(map[string]any, t.Len())
		for _, k := range t.keys {
			out[k] = jsonSafe(t.values[k])
		}
		return out
	case []*Hash:
		out := make([]any, len(t))
		for i, h := range t {
			out[i] = jsonSafe(h)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	}

	if _, ok := v.(json.Marshaler); ok {
		if b, err := json.Marshal(v); err == nil {
			var out any
			if err := json.Unmarshal(b, &out); err == nil {
				return out
			}
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return jsonSafe(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = jsonSafe(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			var key string
			if k.Kind() == reflect.String {
				key = k.String()
			} else {
				key = fmt.Sprint(k.Interface())
			}
			out[key] = jsonSafe(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		return structToJSONMap(rv)
	case reflect.String:
		return rv.String()
	default:
		return v
	}
}

// structToJSONMap converts a struct value to a map keyed by json tag name,
// falling back to the Go field name. Anonymous embedded structs flatten the
// way encoding/json flattens them.
func structToJSONMap(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			for k, v := range structToJSONMap(rv.Field(i)) {
				out[k] = v
			}
			continue
		}

		if name == "" {
			name = sf.Name
		}
		out[name] = jsonSafe(rv.Field(i).Interface())
	}

	return out
}
