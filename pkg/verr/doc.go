// Package verr provides the structured error model used by the recordkit
// validation engine: a single Error type carrying a kind, a message, an
// ordered list of contextual notes, and optionally a list of sub-errors for
// grouped failures.
//
// The package promotes whole-record reporting: validation code never stops at
// the first failure. Instead it feeds every failure into a Collector, which
// enriches errors with path notes (field name, index, key) as they bubble up
// through nesting levels and finally collapses the collection into nothing, a
// single error, or one grouped error.
//
// # Usage
//
//	var c verr.Collector
//	c.Add(checkName(v), "field Name")
//	c.Add(checkAge(v), "field Age")
//	if err := c.SingleOrGroup("Validation errors"); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Error implements the error interface with a compact single-line rendering;
// the %+v verb (and the Tree method) render the full indented failure tree
// including notes and sub-errors. Use As to recover a *Error from a wrapped
// error chain.
package verr
