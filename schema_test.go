package recordkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/pkg/typespec"
)

type account struct {
	Name  string
	Age   int
	Alias *string
	Tags  []string

	internal int
}

func descriptions(rules []recordkit.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Describe()
	}
	return out
}

func TestFor(t *testing.T) {
	t.Run("declared and inferred fields in declaration order", func(t *testing.T) {
		schema := recordkit.For[account](
			recordkit.NewField("Age", recordkit.WithRules(recordkit.Min(18))),
		)

		fields := schema.Fields()
		require.Len(t, fields, 4)
		assert.Equal(t, "Name", fields[0].Name())
		assert.Equal(t, "Age", fields[1].Name())
		assert.Equal(t, "Alias", fields[2].Name())
		assert.Equal(t, "Tags", fields[3].Name())

		assert.Equal(t, "string", fields[0].Type().String())
		assert.Equal(t, "int", fields[1].Type().String())
		assert.Equal(t, "None | string", fields[2].Type().String())
		assert.Equal(t, "list[string]", fields[3].Type().String())

		assert.Empty(t, fields[0].Rules())
		assert.Equal(t, []string{"validate min value 18"}, descriptions(fields[1].Rules()))
	})

	t.Run("explicit descriptor overrides inference", func(t *testing.T) {
		schema := recordkit.For[account](
			recordkit.NewField("Name", recordkit.WithType(
				typespec.Union(typespec.Scalar[string](), typespec.None()),
			)),
		)
		assert.Equal(t, "string | None", schema.Fields()[0].Type().String())
	})

	t.Run("unknown field panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.For[account](recordkit.NewField("Nope"))
		})
	})

	t.Run("unexported field panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.For[account](recordkit.NewField("internal"))
		})
	})

	t.Run("duplicate declaration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.For[account](recordkit.NewField("Age"), recordkit.NewField("Age"))
		})
	})

	t.Run("non-struct type panics", func(t *testing.T) {
		assert.Panics(t, func() { recordkit.For[int]() })
	})
}

func TestField_With(t *testing.T) {
	a := recordkit.Min(1)
	b := recordkit.Max(9)

	t.Run("sequential attachment equals single attachment", func(t *testing.T) {
		sequential := recordkit.NewField("Age", recordkit.WithRules(a)).
			With(recordkit.WithRules(b))
		single := recordkit.NewField("Age", recordkit.WithRules(a, b))

		assert.Equal(t,
			descriptions(single.Rules()),
			descriptions(sequential.Rules()))
		assert.Equal(t,
			[]string{"validate min value 1", "validate max value 9"},
			descriptions(sequential.Rules()))
	})

	t.Run("receiver is left untouched", func(t *testing.T) {
		base := recordkit.NewField("Age", recordkit.WithRules(a))
		_ = base.With(recordkit.WithRules(b))
		assert.Equal(t, []string{"validate min value 1"}, descriptions(base.Rules()))
	})

	t.Run("grouping does not change order", func(t *testing.T) {
		c := recordkit.Len(3)
		left := recordkit.NewField("Age", recordkit.WithRules(a)).
			With(recordkit.WithRules(b), recordkit.WithRules(c))
		right := recordkit.NewField("Age", recordkit.WithRules(a)).
			With(recordkit.WithRules(b)).
			With(recordkit.WithRules(c))
		assert.Equal(t, descriptions(left.Rules()), descriptions(right.Rules()))
	})
}

func TestFieldOption_Guards(t *testing.T) {
	t.Run("empty name panics", func(t *testing.T) {
		assert.Panics(t, func() { recordkit.NewField("") })
	})

	t.Run("nil rule panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.NewField("Age", recordkit.WithRules(nil))
		})
	})

	t.Run("double type descriptor panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.NewField("Age",
				recordkit.WithType(typespec.Any()),
				recordkit.WithType(typespec.Any()))
		})
	})

	t.Run("double default panics", func(t *testing.T) {
		assert.Panics(t, func() {
			recordkit.NewField("Age",
				recordkit.WithDefault(1),
				recordkit.WithDefaultFunc(func() any { return 2 }))
		})
	})
}

func TestApplyDefaults(t *testing.T) {
	schema := recordkit.For[account](
		recordkit.NewField("Name", recordkit.WithDefault("anonymous")),
		recordkit.NewField("Age", recordkit.WithDefault(18)),
		recordkit.NewField("Tags", recordkit.WithDefaultFunc(func() any { return []string{"new"} })),
	)

	t.Run("fills zero fields only", func(t *testing.T) {
		acc := account{Age: 30}
		schema.ApplyDefaults(&acc)

		assert.Equal(t, "anonymous", acc.Name)
		assert.Equal(t, 30, acc.Age)
		assert.Equal(t, []string{"new"}, acc.Tags)
	})

	t.Run("non-pointer panics", func(t *testing.T) {
		assert.Panics(t, func() { schema.ApplyDefaults(account{}) })
	})

	t.Run("mismatched default type panics", func(t *testing.T) {
		bad := recordkit.For[account](
			recordkit.NewField("Age", recordkit.WithDefault("not an int")),
		)
		assert.Panics(t, func() { bad.ApplyDefaults(&account{}) })
	})
}

func TestDumpRules(t *testing.T) {
	schema := recordkit.For[account](
		recordkit.NewField("Name", recordkit.WithRules(recordkit.MinLen(1))),
		recordkit.NewField("Age", recordkit.WithRules(recordkit.Min(0), recordkit.Max(150))),
	)

	dump := schema.DumpRules()
	assert.Contains(t, dump, "validators for")
	assert.Contains(t, dump, "Name: validate type string, validate min length 1")
	assert.Contains(t, dump, "Age: validate type int, validate min value 0, validate max value 150")
	assert.NotContains(t, dump, "Alias")
}
