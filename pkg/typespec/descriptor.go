package typespec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/verr"
)

// Descriptor describes the expected shape of a field value. The variant set
// is closed: implementations live in this package only.
type Descriptor interface {
	fmt.Stringer

	// check matches a normalized value against the descriptor. withNote
	// controls whether a terminal failure is annotated with the offending
	// value; union member probes suppress it to avoid duplicate notes.
	check(v reflect.Value, withNote bool) *verr.Error
}

type (
	noneDesc       struct{}
	anyDesc        struct{}
	unionDesc      struct{ members []Descriptor }
	scalarDesc     struct{ rt reflect.Type }
	listDesc       struct{ elem Descriptor }
	setDesc        struct{ elem Descriptor }
	tupleDesc      struct{ elems []Descriptor }
	tupleVarDesc   struct{ elem Descriptor }
	tupleEmptyDesc struct{}
)

// None matches only nil values (nil pointers and interfaces included).
func None() Descriptor { return noneDesc{} }

// Any matches every value.
func Any() Descriptor { return anyDesc{} }

// Union matches a value conforming to at least one member descriptor.
func Union(members ...Descriptor) Descriptor {
	if len(members) == 0 {
		panic("typespec: union needs at least one member")
	}
	for _, m := range members {
		if m == nil {
			panic("typespec: nil union member")
		}
	}
	return unionDesc{members: members}
}

// Scalar matches values whose dynamic type is exactly T.
func Scalar[T any]() Descriptor {
	return ScalarOf(reflect.TypeOf((*T)(nil)).Elem())
}

// ScalarOf matches values whose dynamic type is exactly rt.
func ScalarOf(rt reflect.Type) Descriptor {
	if rt == nil {
		panic("typespec: nil scalar type")
	}
	return scalarDesc{rt: rt}
}

// List matches slices whose every element conforms to elem.
func List(elem Descriptor) Descriptor {
	if elem == nil {
		panic("typespec: nil list element descriptor")
	}
	return listDesc{elem: elem}
}

// Set matches struct{}-valued maps whose every key conforms to elem.
func Set(elem Descriptor) Descriptor {
	if elem == nil {
		panic("typespec: nil set element descriptor")
	}
	return setDesc{elem: elem}
}

// Tuple matches arrays of exactly len(elems) elements, checked positionally.
// With no arguments it matches only the empty tuple.
func Tuple(elems ...Descriptor) Descriptor {
	if len(elems) == 0 {
		return tupleEmptyDesc{}
	}
	for _, e := range elems {
		if e == nil {
			panic("typespec: nil tuple element descriptor")
		}
	}
	return tupleDesc{elems: elems}
}

// TupleVariadic matches arrays of any length whose every element conforms to
// elem.
func TupleVariadic(elem Descriptor) Descriptor {
	if elem == nil {
		panic("typespec: nil tuple element descriptor")
	}
	return tupleVarDesc{elem: elem}
}

// TupleEmpty matches only zero-length arrays.
func TupleEmpty() Descriptor { return tupleEmptyDesc{} }

func (noneDesc) String() string { return "None" }

func (anyDesc) String() string { return "any" }

func (u unionDesc) String() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (s scalarDesc) String() string { return s.rt.String() }

func (l listDesc) String() string { return "list[" + l.elem.String() + "]" }

func (s setDesc) String() string { return "set[" + s.elem.String() + "]" }

func (t tupleDesc) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}
	return "tuple[" + strings.Join(parts, ", ") + "]"
}

func (t tupleVarDesc) String() string { return "tuple[" + t.elem.String() + ", ...]" }

func (tupleEmptyDesc) String() string { return "tuple[()]" }
