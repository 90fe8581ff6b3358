package parameter

import "reflect"

// IsValid reports whether p is a usable Parameter: non-nil, implementing
// Parameter and carrying a name.
func IsValid(p any) bool {
	if p == nil {
		return false
	}

	rv := reflect.ValueOf(p)
	switch rv.Kind() { // nolint: exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return false
		}
	}

	param, ok := p.(Parameter)
	if !ok {
		return false
	}

	return param.Name() != ""
}
