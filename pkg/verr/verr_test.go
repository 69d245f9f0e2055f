package verr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/verr"
)

func TestError_Error(t *testing.T) {
	t.Run("renders message only", func(t *testing.T) {
		err := verr.Constraintf("Expect min value %d", 10)
		assert.Equal(t, "Expect min value 10", err.Error())
	})

	t.Run("renders notes in order", func(t *testing.T) {
		err := verr.TypeMismatchf("expect int, got string").
			WithNotes("value \"a\"", "field Age")
		assert.Equal(t, `expect int, got string [value "a"] [field Age]`, err.Error())
	})

	t.Run("renders sub-error count", func(t *testing.T) {
		err := verr.NewGroup("Validation errors",
			verr.Constraintf("a"), verr.Constraintf("b"))
		assert.Equal(t, "Validation errors (2 sub-errors)", err.Error())
	})
}

func TestError_WithNotes(t *testing.T) {
	t.Run("nil receiver passes through", func(t *testing.T) {
		var err *verr.Error
		assert.Nil(t, err.WithNotes("ignored"))
	})

	t.Run("appends in call order", func(t *testing.T) {
		err := verr.Constraintf("boom").WithNotes("a").WithNotes("b", "c")
		assert.Equal(t, []string{"a", "b", "c"}, err.Notes)
	})
}

func TestError_Tree(t *testing.T) {
	err := verr.NewGroup("Validation errors",
		verr.TypeMismatchf("expect int, got string").WithNotes("field A"),
		verr.NewGroup("expect list of int",
			verr.TypeMismatchf("expect int, got bool").WithNotes("index 1"),
		).WithNotes("field B"),
	)

	tree := err.Tree()
	assert.Equal(t, "Validation errors\n"+
		"  expect int, got string\n"+
		"  | field A\n"+
		"  expect list of int\n"+
		"  | field B\n"+
		"    expect int, got bool\n"+
		"    | index 1", tree)

	t.Run("plus verb renders tree", func(t *testing.T) {
		assert.Equal(t, tree, fmt.Sprintf("%+v", err))
	})

	t.Run("plain verb renders summary", func(t *testing.T) {
		assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	})
}

func TestAs(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		_, ok := verr.As(nil)
		assert.False(t, ok)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := verr.As(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("direct validation error", func(t *testing.T) {
		want := verr.Constraintf("boom")
		got, ok := verr.As(want)
		require.True(t, ok)
		assert.Same(t, want, got)
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		want := verr.Constraintf("boom")
		got, ok := verr.As(fmt.Errorf("outer: %w", want))
		require.True(t, ok)
		assert.Same(t, want, got)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "type mismatch", verr.KindTypeMismatch.String())
	assert.Equal(t, "constraint", verr.KindConstraint.String())
	assert.Equal(t, "group", verr.KindGroup.String())
}
