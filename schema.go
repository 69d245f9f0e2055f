package recordkit

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/typespec"
)

// Record is the capability interface nested-record recursion dispatches on:
// a value reachable from a validated field is itself validated iff it
// implements Record. Implement RecordSchema on the value receiver so record
// values stored in slices and maps satisfy the interface too.
type Record interface {
	RecordSchema() *Schema
}

// CustomValidator is the optional cross-field hook a record may implement.
// It runs once per FullValidate call, after all declared-field checks, and
// any validation-classified error it returns is folded into the same report.
type CustomValidator interface {
	Validate() error
}

// Field describes one named slot of a record type: its type descriptor, its
// ordered rule chain, and an optional default. Fields are immutable once
// composed; With produces a new Field and never mutates a shared one.
type Field struct {
	name  string
	index int
	desc  typespec.Descriptor
	rules []Rule

	hasDefault   bool
	defaultValue any
	defaultFunc  func() any

	explicitType bool
}

// FieldOption configures a field under construction.
type FieldOption func(*Field)

// WithType overrides the descriptor inferred from the Go field type, e.g. to
// declare a union of scalars on an any-typed field. Setting it twice is a
// definition error and panics.
func WithType(d typespec.Descriptor) FieldOption {
	return func(f *Field) {
		if d == nil {
			panic("recordkit: nil type descriptor")
		}
		if f.explicitType {
			panic(fmt.Sprintf("recordkit: field %q: type descriptor already set", f.name))
		}
		f.desc = d
		f.explicitType = true
	}
}

// WithRules appends rules to the field's chain in the given order.
func WithRules(rules ...Rule) FieldOption {
	return func(f *Field) {
		for _, r := range rules {
			if r == nil {
				panic(fmt.Sprintf("recordkit: field %q: nil rule", f.name))
			}
			f.rules = append(f.rules, r)
		}
	}
}

// WithDefault sets the field's default value, applied by ApplyDefaults when
// the field is zero. Combining it with WithDefaultFunc panics.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		if f.hasDefault {
			panic(fmt.Sprintf("recordkit: field %q: default already set", f.name))
		}
		f.hasDefault = true
		f.defaultValue = v
	}
}

// WithDefaultFunc sets a default factory, called once per ApplyDefaults.
func WithDefaultFunc(fn func() any) FieldOption {
	return func(f *Field) {
		if fn == nil {
			panic(fmt.Sprintf("recordkit: field %q: nil default factory", f.name))
		}
		if f.hasDefault {
			panic(fmt.Sprintf("recordkit: field %q: default already set", f.name))
		}
		f.hasDefault = true
		f.defaultFunc = fn
	}
}

// NewField declares a field by struct field name. The name must refer to an
// exported field of the schema's struct type, checked when the schema is
// built.
func NewField(name string, opts ...FieldOption) Field {
	if name == "" {
		panic("recordkit: empty field name")
	}
	f := Field{name: name}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// With returns a copy of the field with opts applied on top. The merge is
// pure and associative: attaching rule A then rule B yields exactly the
// chain [A, B] regardless of grouping, and the receiver is left untouched.
func (f Field) With(opts ...FieldOption) Field {
	merged := f
	merged.rules = append([]Rule(nil), f.rules...)
	for _, opt := range opts {
		opt(&merged)
	}
	return merged
}

// Name returns the struct field name.
func (f Field) Name() string { return f.name }

// Type returns the field's type descriptor.
func (f Field) Type() typespec.Descriptor { return f.desc }

// Rules returns a copy of the field's ordered rule chain.
func (f Field) Rules() []Rule {
	return append([]Rule(nil), f.rules...)
}

// Schema is the validation schema of one record type: its struct type and
// its fields in declaration order. Build it once per type, typically into a
// package-level variable returned by RecordSchema.
type Schema struct {
	rt     reflect.Type
	fields []Field
}

// For builds the schema of struct type T. Explicit field declarations are
// merged in; every exported struct field without one gets an inferred
// descriptor and no rules. A declaration naming a missing or unexported
// field is a definition error and panics.
func For[T any](fields ...Field) *Schema {
	return SchemaOf(reflect.TypeOf((*T)(nil)).Elem(), fields...)
}

// SchemaOf is the non-generic form of For.
func SchemaOf(rt reflect.Type, fields ...Field) *Schema {
	if rt == nil || rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("recordkit: schema requires a struct type, got %v", rt))
	}

	explicit := make(map[string]Field, len(fields))
	for _, f := range fields {
		if _, dup := explicit[f.name]; dup {
			panic(fmt.Sprintf("recordkit: duplicate declaration of field %q", f.name))
		}
		explicit[f.name] = f
	}

	out := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			if _, ok := explicit[sf.Name]; ok {
				panic(fmt.Sprintf("recordkit: field %q of %s is unexported", sf.Name, rt))
			}
			continue
		}
		f, ok := explicit[sf.Name]
		if !ok {
			f = Field{name: sf.Name}
		}
		delete(explicit, sf.Name)
		f.index = i
		if f.desc == nil {
			f.desc = typespec.Of(sf.Type)
		}
		out = append(out, f)
	}
	if len(explicit) > 0 {
		missing := make([]string, 0, len(explicit))
		for name := range explicit {
			missing = append(missing, name)
		}
		sort.Strings(missing)
		panic(fmt.Sprintf("recordkit: fields %v not found on %s", missing, rt))
	}

	return &Schema{rt: rt, fields: out}
}

// Type returns the record's struct type.
func (s *Schema) Type() reflect.Type { return s.rt }

// Fields returns a copy of the schema's fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// ApplyDefaults sets every zero-valued field that declares a default. rec
// must be a non-nil pointer to the schema's struct type.
func (s *Schema) ApplyDefaults(rec any) {
	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Type() != s.rt {
		panic(fmt.Sprintf("recordkit: ApplyDefaults requires a non-nil *%s, got %T", s.rt, rec))
	}
	rv = rv.Elem()
	for _, f := range s.fields {
		if !f.hasDefault {
			continue
		}
		target := rv.Field(f.index)
		if !target.IsZero() {
			continue
		}
		value := f.defaultValue
		if f.defaultFunc != nil {
			value = f.defaultFunc()
		}
		if value == nil {
			continue
		}
		dv := reflect.ValueOf(value)
		if !dv.Type().AssignableTo(target.Type()) {
			panic(fmt.Sprintf("recordkit: default for field %q is %T, want %s", f.name, value, target.Type()))
		}
		target.Set(dv)
	}
}

// DumpRules renders a human-readable listing of every field that carries
// rules, with its type descriptor and rule descriptions.
func (s *Schema) DumpRules() string {
	var lines []string
	for _, f := range s.fields {
		if len(f.rules) == 0 {
			continue
		}
		parts := make([]string, 0, len(f.rules)+1)
		parts = append(parts, "validate type "+f.desc.String())
		for _, r := range f.rules {
			parts = append(parts, r.Describe())
		}
		lines = append(lines, "\t"+f.name+": "+strings.Join(parts, ", "))
	}
	return fmt.Sprintf("validators for %s:\n%s", s.rt, strings.Join(lines, "\n"))
}

// DumpRules renders the rule listing of a record's schema.
func DumpRules(rec Record) string {
	return rec.RecordSchema().DumpRules()
}
