package dynavec

import (
	"reflect"
)

// typeHasPointers reports whether T contains pointers the garbage
// collector would have to scan. Vector storage lives in allocator-owned
// byte blocks that carry no pointer bitmap, so references stored there are
// invisible to the collector; such element types must be rejected before
// any storage is reserved.
func typeHasPointers[T any]() bool {
	var zero T
	return kindHasPointers(reflect.TypeOf(&zero).Elem())
}

func kindHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && kindHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if kindHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer.
		return true
	}
}
