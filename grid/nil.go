package grid

import "reflect"

// IsNil reports whether r is nil or holds a nil pointer, such as
// (*dense.Map[P, T])(nil) passed as a Reader.
func IsNil[P comparable, T any](r Reader[P, T]) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}
