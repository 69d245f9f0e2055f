package typespec_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/typespec"
)

func TestDescriptor_String(t *testing.T) {
	tests := []struct {
		desc typespec.Descriptor
		want string
	}{
		{typespec.None(), "None"},
		{typespec.Any(), "any"},
		{typespec.Scalar[int](), "int"},
		{typespec.Union(typespec.Scalar[int](), typespec.Scalar[string](), typespec.None()), "int | string | None"},
		{typespec.List(typespec.Scalar[int]()), "list[int]"},
		{typespec.List(typespec.List(typespec.Scalar[string]())), "list[list[string]]"},
		{typespec.Set(typespec.Scalar[string]()), "set[string]"},
		{typespec.Tuple(typespec.Scalar[int](), typespec.Scalar[string]()), "tuple[int, string]"},
		{typespec.TupleVariadic(typespec.Scalar[bool]()), "tuple[bool, ...]"},
		{typespec.TupleEmpty(), "tuple[()]"},
		{typespec.Tuple(), "tuple[()]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.String())
		})
	}
}

func TestConstructors_Panics(t *testing.T) {
	assert.Panics(t, func() { typespec.Union() })
	assert.Panics(t, func() { typespec.Union(typespec.None(), nil) })
	assert.Panics(t, func() { typespec.List(nil) })
	assert.Panics(t, func() { typespec.Set(nil) })
	assert.Panics(t, func() { typespec.Tuple(typespec.None(), nil) })
	assert.Panics(t, func() { typespec.TupleVariadic(nil) })
	assert.Panics(t, func() { typespec.ScalarOf(nil) })
	assert.Panics(t, func() { typespec.Of(nil) })
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		rt   reflect.Type
		want string
	}{
		{name: "scalar", rt: reflect.TypeOf(0), want: "int"},
		{name: "pointer becomes optional", rt: reflect.TypeOf((*string)(nil)), want: "None | string"},
		{name: "empty interface becomes any", rt: reflect.TypeOf((*any)(nil)).Elem(), want: "any"},
		{name: "slice becomes list", rt: reflect.TypeOf([]int(nil)), want: "list[int]"},
		{name: "nested slice", rt: reflect.TypeOf([][]string(nil)), want: "list[list[string]]"},
		{name: "struct{} map becomes set", rt: reflect.TypeOf(map[string]struct{}(nil)), want: "set[string]"},
		{name: "plain map stays scalar", rt: reflect.TypeOf(map[string]int(nil)), want: "map[string]int"},
		{name: "array becomes tuple", rt: reflect.TypeOf([2]int{}), want: "tuple[int, int]"},
		{name: "empty array becomes empty tuple", rt: reflect.TypeOf([0]int{}), want: "tuple[()]"},
		{name: "slice of pointers", rt: reflect.TypeOf([]*int(nil)), want: "list[None | int]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typespec.Of(tt.rt).String())
		})
	}

	t.Run("inferred optional matches values", func(t *testing.T) {
		opt := typespec.Of(reflect.TypeOf((*int)(nil)))
		var nilP *int
		v := 5
		assert.Nil(t, typespec.Check(nilP, opt))
		assert.Nil(t, typespec.Check(&v, opt))
		assert.NotNil(t, typespec.Check("a", opt))
	})
}
