// Package typespec defines the closed type-descriptor grammar used to declare
// record field shapes and the structural matcher that checks runtime values
// against it.
//
// The grammar is a small recursive variant set: None, Any, Union, Scalar,
// List, Set, Tuple (fixed arity), TupleVariadic, and TupleEmpty. Descriptors
// are immutable value objects built once per record type, either explicitly
// through the constructors or inferred from a Go type with Of. Of is the
// single reflection boundary: after it runs, matching operates purely on the
// descriptor tree.
//
// # Go value mapping
//
//	None          nil, or a nil pointer/interface
//	List          any slice
//	Set           a map with struct{} values; elements are the keys
//	Tuple         any array; arity is the array length
//	Scalar        exact dynamic-type equality (nominal, not structural)
//
// Non-nil pointers and interfaces are unwrapped before matching, so a *int
// holding 5 matches Scalar[int]() and a nil *int matches None().
//
// # Error reporting
//
// Check collects every failure, not just the first: a list with three bad
// elements yields one grouped error with three children, each annotated with
// its index. Union failures group each member's failure under a caption
// naming the union. Terminal failures carry the offending value as a note.
//
// Malformed descriptor construction (an empty union, a nil element) is a
// schema-definition error and panics at definition time; it is never
// collected as a validation failure.
package typespec
