// Package valuerepr formats runtime values for validation diagnostics.
//
// Error notes produced by the engine embed the offending value; the formatter
// used for that rendering is a process-wide hook so hosts can swap in a
// sanitizing formatter that redacts sensitive data from error messages and
// logs. Swapping the formatter never changes validation outcomes, only their
// presentation.
//
// The default formatter is a go-spew configuration tuned for deterministic
// single-line output: map keys are sorted and pointer addresses are omitted,
// so the same value always renders the same string.
//
// The hook has plain set/get semantics with no concurrency guard: concurrent
// reads are safe, but mutating it while validations run on other goroutines
// must be serialized by the caller.
package valuerepr
