package typespec

import "reflect"

// Of infers a descriptor from a Go type. This is the single reflection
// boundary of the package: it runs once per record type at schema
// registration, and the matcher never introspects Go types afterwards.
//
// Inference rules: pointers become Union(None, elem), empty interfaces become
// Any, slices become List, struct{}-valued maps become Set over the key type,
// arrays become fixed tuples of the element descriptor, and everything else
// is a nominal Scalar. Fields needing a richer shape (heterogeneous tuples,
// unions of scalars) declare an explicit descriptor instead.
func Of(t reflect.Type) Descriptor {
	if t == nil {
		panic("typespec: nil type")
	}
	switch t.Kind() {
	case reflect.Interface:
		// Interface-typed fields accept any dynamic value; method-set
		// conformance is the compiler's job, not the matcher's.
		return Any()
	case reflect.Pointer:
		return Union(None(), Of(t.Elem()))
	case reflect.Slice:
		return List(Of(t.Elem()))
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return Set(Of(t.Key()))
		}
		return ScalarOf(t)
	case reflect.Array:
		if t.Len() == 0 {
			return TupleEmpty()
		}
		elems := make([]Descriptor, t.Len())
		elem := Of(t.Elem())
		for i := range elems {
			elems[i] = elem
		}
		return Tuple(elems...)
	default:
		return ScalarOf(t)
	}
}
