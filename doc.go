// Package recordkit is a field-level validation engine for structured record
// types.
//
// A record type declares, per field, a static type constraint (a descriptor
// from the typespec grammar, inferred from the Go field type or declared
// explicitly) and zero or more semantic rules attached declaratively at
// schema-definition time. FullValidate walks every field of a record
// instance, applies the type check, then the attached rules, and recurses
// into nested validated records and into map- or collection-valued fields
// whose elements are themselves validated records. Every violation across
// the whole record is collected and returned together as one structured
// error with path notes.
//
// # Usage
//
//	type User struct {
//	    Name  string
//	    Age   int
//	    Alias *string
//	}
//
//	var userSchema = recordkit.For[User](
//	    recordkit.NewField("Name", recordkit.WithRules(recordkit.MinLen(1))),
//	    recordkit.NewField("Age", recordkit.WithRules(recordkit.Range(0, 150))),
//	)
//
//	func (u User) RecordSchema() *recordkit.Schema { return userSchema }
//
//	if err := recordkit.FullValidate(user); err != nil {
//	    // err is a *verr.Error; %+v renders the full failure tree
//	}
//
// Implement RecordSchema on the value receiver so that record values stored
// in slices and maps satisfy the Record interface and are recursed into.
//
// # Error Handling
//
// Type mismatches and failed rules are always collected, never raised
// individually: a call returns at most one error, either the sole failure or
// a group whose tree mirrors the record's field/element/nesting structure.
// Malformed schemas and unresolvable dependent-rule paths are programmer
// errors and panic at definition time or first use.
//
// The engine performs no cycle detection: a self-referential record graph
// recurses without bound.
package recordkit
