package recordkit

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/recordkit/pkg/logkit"
	"github.com/dmitrymomot/recordkit/pkg/typespec"
	"github.com/dmitrymomot/recordkit/pkg/verr"
)

// FullValidate validates every field of rec against its schema, then runs
// the record's custom Validate hook if it has one, and reports all collected
// failures as one error: nil when the record is valid, the sole failure when
// there is exactly one, or a "Validation errors" group otherwise.
//
// The call is idempotent and reads attribute values only. rec must be an
// instance (or pointer to one) of its schema's struct type; anything else is
// a programmer error and panics. Recursion depth is bounded by the nesting
// depth of the record graph; cycles are not detected.
func (e *Engine) FullValidate(rec Record) error {
	if rec == nil {
		panic("recordkit: nil record")
	}
	schema := rec.RecordSchema()
	if schema == nil {
		panic(fmt.Sprintf("recordkit: %T has no schema", rec))
	}
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic("recordkit: nil record")
		}
		rv = rv.Elem()
	}
	if rv.Type() != schema.rt {
		panic(fmt.Sprintf("recordkit: %s is not an instance of %s", rv.Type(), schema.rt))
	}

	e.log.Info("validate record", logkit.RecordType(schema.rt.String()))

	var col verr.Collector
	for _, field := range schema.fields {
		ferr, err := e.validateField(rec, rv, field)
		if err != nil {
			return err
		}
		col.Add(ferr, "field "+field.name)
	}

	if err := col.Scoped(func() error {
		if cv, ok := rec.(CustomValidator); ok {
			e.log.Debug("run custom validator", logkit.RecordType(schema.rt.String()))
			return cv.Validate()
		}
		return nil
	}); err != nil {
		return err
	}

	e.log.Debug("validation finished",
		logkit.RecordType(schema.rt.String()), logkit.Count(col.Len()))

	gerr := col.SingleOrGroup("Validation errors")
	if gerr == nil {
		return nil
	}
	if e.deepErrors {
		e.log.Error("validation failed",
			logkit.RecordType(schema.rt.String()), slog.String("tree", gerr.Tree()))
	} else {
		e.log.Error("validation failed",
			logkit.RecordType(schema.rt.String()), logkit.Count(col.Len()))
	}
	return gerr
}

// validateField checks one field: type conformance first (rules are skipped
// when the shape is already wrong), then every rule in declared order, then
// recursion into nested validated records, direct or held in map and
// collection fields. The second return value carries non-validation errors
// surfaced by nested custom hooks, which propagate instead of being
// collected.
func (e *Engine) validateField(rec Record, rv reflect.Value, field Field) (*verr.Error, error) {
	value := rv.Field(field.index).Interface()
	e.log.Debug("validate field", logkit.FieldName(field.name))

	var col verr.Collector
	col.Add(typespec.Check(value, field.desc))
	if col.Len() > 0 {
		return col.SingleOrGroup("Field type errors"), nil
	}

	for _, rule := range field.rules {
		col.Add(rule.Check(value, rec))
	}

	if nested, ok := value.(Record); ok && !isNone(value) {
		if err := col.Scoped(func() error { return e.FullValidate(nested) }); err != nil {
			return nil, err
		}
	}

	fv := reflect.ValueOf(value)
	switch {
	case fv.IsValid() && fv.Kind() == reflect.Map:
		iter := fv.MapRange()
		for iter.Next() {
			item, ok := iter.Value().Interface().(Record)
			if !ok {
				continue
			}
			key := fmt.Sprint(iter.Key().Interface())
			if err := col.Scoped(func() error { return e.FullValidate(item) }, "key "+key); err != nil {
				return nil, err
			}
		}
	case fv.IsValid() && (fv.Kind() == reflect.Slice || fv.Kind() == reflect.Array):
		for i := 0; i < fv.Len(); i++ {
			item, ok := fv.Index(i).Interface().(Record)
			if !ok {
				continue
			}
			if err := col.Scoped(func() error { return e.FullValidate(item) }, "index "+strconv.Itoa(i)); err != nil {
				return nil, err
			}
		}
	}

	return col.SingleOrGroup("Field validation errors"), nil
}
