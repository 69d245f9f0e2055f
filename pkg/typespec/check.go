package typespec

import (
	"reflect"
	"strconv"

	"github.com/dmitrymomot/recordkit/pkg/valuerepr"
	"github.com/dmitrymomot/recordkit/pkg/verr"
)

var emptyStructType = reflect.TypeOf(struct{}{})

// Check matches value against the descriptor and returns nil on conformance
// or a validation error describing every mismatch found.
func Check(value any, d Descriptor) *verr.Error {
	return d.check(normalize(reflect.ValueOf(value)), true)
}

// normalize unwraps non-nil pointers and interfaces; nil values of any
// flavor collapse to the invalid reflect.Value, the package's None.
func normalize(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func indexNote(i int) string {
	return "index " + strconv.Itoa(i)
}

// gotName names the actual value's type for "expect X, got Y" messages.
func gotName(v reflect.Value) string {
	if !v.IsValid() {
		return "None"
	}
	return v.Type().String()
}

// valueNote renders the offending value as an error note.
func valueNote(v reflect.Value) string {
	if !v.IsValid() {
		return "value " + valuerepr.Value(nil)
	}
	return "value " + valuerepr.Value(v.Interface())
}

func (noneDesc) check(v reflect.Value, withNote bool) *verr.Error {
	if !v.IsValid() {
		return nil
	}
	err := verr.TypeMismatchf("expect None")
	if withNote {
		err.WithNotes(valueNote(v))
	}
	return err
}

func (anyDesc) check(reflect.Value, bool) *verr.Error {
	return nil
}

func (u unionDesc) check(v reflect.Value, withNote bool) *verr.Error {
	subs := make([]*verr.Error, 0, len(u.members))
	for _, m := range u.members {
		sub := m.check(v, false)
		if sub == nil {
			return nil
		}
		subs = append(subs, sub)
	}
	err := verr.NewGroup("expect "+u.String(), subs...)
	if withNote {
		err.WithNotes(valueNote(v))
	}
	return err
}

func (s scalarDesc) check(v reflect.Value, withNote bool) *verr.Error {
	if v.IsValid() && v.Type() == s.rt {
		return nil
	}
	err := verr.TypeMismatchf("expect %s, got %s", s.rt, gotName(v))
	if withNote {
		err.WithNotes(valueNote(v))
	}
	return err
}

func (l listDesc) check(v reflect.Value, _ bool) *verr.Error {
	if !v.IsValid() || v.Kind() != reflect.Slice {
		return verr.TypeMismatchf("expect list, got %s", gotName(v))
	}
	var col verr.Collector
	for i := 0; i < v.Len(); i++ {
		col.Add(l.elem.check(normalize(v.Index(i)), true), indexNote(i))
	}
	return col.Group("expect list of " + l.elem.String())
}

func (s setDesc) check(v reflect.Value, _ bool) *verr.Error {
	if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Elem() != emptyStructType {
		return verr.TypeMismatchf("expect set, got %s", gotName(v))
	}
	var col verr.Collector
	for _, key := range v.MapKeys() {
		col.Add(s.elem.check(normalize(key), true))
	}
	return col.Group("expect " + s.elem.String())
}

func (t tupleDesc) check(v reflect.Value, _ bool) *verr.Error {
	if !v.IsValid() || v.Kind() != reflect.Array {
		return verr.TypeMismatchf("expect tuple, got %s", gotName(v))
	}
	if v.Len() != len(t.elems) {
		return verr.TypeMismatchf("expect %d elements in tuple, got %d elements", len(t.elems), v.Len())
	}
	var col verr.Collector
	for i, elem := range t.elems {
		col.Add(elem.check(normalize(v.Index(i)), true), indexNote(i))
	}
	return col.Group("expect " + t.String())
}

func (t tupleVarDesc) check(v reflect.Value, _ bool) *verr.Error {
	if !v.IsValid() || v.Kind() != reflect.Array {
		return verr.TypeMismatchf("expect tuple, got %s", gotName(v))
	}
	var col verr.Collector
	for i := 0; i < v.Len(); i++ {
		col.Add(t.elem.check(normalize(v.Index(i)), true), indexNote(i))
	}
	return col.Group("expect tuple of " + t.elem.String())
}

func (tupleEmptyDesc) check(v reflect.Value, _ bool) *verr.Error {
	if !v.IsValid() || v.Kind() != reflect.Array {
		return verr.TypeMismatchf("expect tuple, got %s", gotName(v))
	}
	if v.Len() > 0 {
		return verr.TypeMismatchf("expect empty tuple, got %d elements", v.Len())
	}
	return nil
}
