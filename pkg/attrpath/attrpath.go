package attrpath

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrPath is wrapped by every resolution failure.
var ErrPath = errors.New("unresolvable attribute path")

// Resolve walks path against root and returns the addressed value. An empty
// path or "." returns root unchanged.
func Resolve(root any, path string) (any, error) {
	if path == "" || path == "." {
		return root, nil
	}

	value := reflect.ValueOf(root)
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in path %q", ErrPath, path)
		}
		prefix := strings.Join(segments[:i+1], ".")

		value = indirect(value)
		if !value.IsValid() {
			return nil, fmt.Errorf("%w: nil value at %q in path %q", ErrPath, prefix, path)
		}

		var err error
		value, err = step(value, segment, prefix, path)
		if err != nil {
			return nil, err
		}
	}

	value = indirectInterface(value)
	if !value.IsValid() {
		return nil, nil
	}
	if !value.CanInterface() {
		return nil, fmt.Errorf("%w: unexported value at path %q", ErrPath, path)
	}
	return value.Interface(), nil
}

func step(value reflect.Value, segment, prefix, path string) (reflect.Value, error) {
	switch value.Kind() {
	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("%w: map at %q is not string-keyed", ErrPath, prefix)
		}
		item := value.MapIndex(reflect.ValueOf(segment).Convert(value.Type().Key()))
		if !item.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: key %q not found at %q", ErrPath, segment, prefix)
		}
		return item, nil

	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 {
			return reflect.Value{}, fmt.Errorf("%w: expect non-negative index, got %q in path %q", ErrPath, segment, path)
		}
		if idx >= value.Len() {
			return reflect.Value{}, fmt.Errorf("%w: index out of range at %q", ErrPath, prefix)
		}
		return value.Index(idx), nil

	case reflect.Struct:
		field := value.FieldByName(segment)
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: attribute %q of path %q not found on %s", ErrPath, segment, path, value.Type())
		}
		return field, nil

	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot descend into %s at %q", ErrPath, value.Kind(), prefix)
	}
}

// indirect unwraps pointers and interfaces until a concrete value is reached.
// Returns an invalid value for nil pointers and interfaces.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// indirectInterface unwraps a single interface layer so the caller gets the
// dynamic value, but keeps pointers intact.
func indirectInterface(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		return v.Elem()
	}
	return v
}
