package blueprint

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

var (
	metadataRegistry = make(map[reflect.Type]sentinel.Metadata)
	registryMu       sync.RWMutex
)

// metadataFor returns struct metadata for rt, cached per type.
func metadataFor(rt reflect.Type) sentinel.Metadata {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if spec, ok := metadataRegistry[rt]; ok {
		registryMu.RUnlock()
		return spec
	}
	registryMu.RUnlock()

	// Slow path: scan and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if spec, ok := metadataRegistry[rt]; ok {
		return spec
	}

	spec := scanType(rt)
	metadataRegistry[rt] = spec
	return spec
}

// scanType builds metadata for a struct type, preferring a registered
// sentinel scan over a manual reflect walk.
func scanType(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// ResetMetadata clears the type metadata cache.
// This is primarily useful for test isolation.
func ResetMetadata() {
	registryMu.Lock()
	defer registryMu.Unlock()
	metadataRegistry = make(map[reflect.Type]sentinel.Metadata)
}
