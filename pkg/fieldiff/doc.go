// Package fieldiff compares selected fields of two object graphs and reports
// every difference at once as an aligned diff table.
//
// Fields to compare are given as a compact path schema: a single dotted path,
// a list of paths, or a nested map whose keys are path prefixes. Same checks
// the same path on both objects; Pairs maps a path on the first object to a
// different path on the second.
//
//	err := fieldiff.Same(order, snapshot, []any{
//	    "ID",
//	    map[string]any{"Customer": []string{"Name", "Email"}},
//	})
//
// Schemas are programmer input: a malformed schema or an unresolvable path
// fails loudly instead of being reported as a difference.
package fieldiff
