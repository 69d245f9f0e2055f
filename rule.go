package recordkit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/attrpath"
	"github.com/dmitrymomot/recordkit/pkg/valuerepr"
	"github.com/dmitrymomot/recordkit/pkg/verr"
)

// Rule is a semantic constraint attached to a field, checked after the
// field's type conformance. Rules are immutable value objects; attaching one
// to a field never mutates it.
type Rule interface {
	// Check returns nil when value satisfies the rule. instance is the
	// whole record, available to rules that depend on another field.
	Check(value, instance any) *verr.Error

	// Describe returns a short human-readable description for rule listings.
	Describe() string
}

// SimpleRule checks the field value alone with a boolean predicate.
type SimpleRule struct {
	Fn       func(value any) bool
	Message  string
	SkipNone bool
}

func (r SimpleRule) Describe() string { return "validate " + r.Message }

func (r SimpleRule) Check(value, _ any) *verr.Error {
	if r.SkipNone && isNone(value) {
		return nil
	}
	if r.Fn(value) {
		return nil
	}
	return verr.Constraintf("Expect %s", r.Message).
		WithNotes("value " + valuerepr.Value(value))
}

// DependentRule checks the field value against another field of the same
// record instance, resolved by dotted path. An unresolvable path is a schema
// error and panics.
type DependentRule struct {
	Path     string
	Fn       func(value, other any) bool
	Message  string
	SkipNone bool
}

func (r DependentRule) Describe() string {
	return fmt.Sprintf("validate %s with %s", r.Message, r.Path)
}

func (r DependentRule) Check(value, instance any) *verr.Error {
	if r.SkipNone && isNone(value) {
		return nil
	}
	other, err := attrpath.Resolve(instance, r.Path)
	if err != nil {
		panic(err)
	}
	if r.Fn(value, other) {
		return nil
	}
	return verr.Constraintf("Expect %s with field %s", r.Message, r.Path).
		WithNotes("value "+valuerepr.Value(value), "expected value "+valuerepr.Value(other))
}

// isNone reports whether v is nil or a nil pointer/interface.
func isNone(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil()
}

// deref unwraps non-nil pointers and interfaces so rules compare the
// underlying value of optional fields.
func deref(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	return rv, true
}

// compareOrdered compares two values of ordered kinds, returning a negative,
// zero, or positive result. Mixed numeric kinds are compared as floats so an
// int8 field can be bounded by an untyped integer constant.
func compareOrdered(a, b any) (int, bool) {
	av, ok := deref(a)
	if !ok {
		return 0, false
	}
	bv, ok := deref(b)
	if !ok {
		return 0, false
	}

	an, aNum := toFloat(av)
	bn, bNum := toFloat(bv)
	if aNum && bNum {
		switch {
		case an < bn:
			return -1, true
		case an > bn:
			return 1, true
		default:
			return 0, true
		}
	}
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String()), true
	}
	return 0, false
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// lengthOf returns the length of a string, slice, array, or map value.
func lengthOf(v any) (int, bool) {
	rv, ok := deref(v)
	if !ok {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
