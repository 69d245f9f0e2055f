// Package attrpath resolves dot-separated attribute paths against arbitrary
// object graphs built from structs, maps, and ordered sequences.
//
// A path like "Profile.Addresses.0.City" walks the root value one segment at
// a time: map values are indexed by the raw segment string, slices and arrays
// by the segment parsed as a non-negative integer, and structs by exported
// field name. The empty path ("" or ".") resolves to the root itself.
//
// Resolution is a pure function with no side effects. Failures are programmer
// or schema errors, not user-input validation failures: every failure wraps
// ErrPath and names the offending segment.
package attrpath
