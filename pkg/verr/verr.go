package verr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindTypeMismatch marks a value that does not structurally conform to
	// its declared type descriptor.
	KindTypeMismatch Kind = iota
	// KindConstraint marks a semantic validator predicate that returned false.
	KindConstraint
	// KindGroup marks a container of one or more sub-errors sharing a scope.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindConstraint:
		return "constraint"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a single validation failure or a group of them. Notes hold ordered
// contextual path fragments ("field Name", "index 2", "key foo", "value 12")
// attached while the error propagates up through nesting levels.
type Error struct {
	Kind    Kind
	Message string
	Notes   []string
	Errs    []*Error
}

// TypeMismatchf creates a type-mismatch error with a formatted message.
func TypeMismatchf(format string, args ...any) *Error {
	return &Error{Kind: KindTypeMismatch, Message: fmt.Sprintf(format, args...)}
}

// Constraintf creates a constraint error with a formatted message.
func Constraintf(format string, args ...any) *Error {
	return &Error{Kind: KindConstraint, Message: fmt.Sprintf(format, args...)}
}

// NewGroup creates a grouped error wrapping errs under msg.
func NewGroup(msg string, errs ...*Error) *Error {
	return &Error{Kind: KindGroup, Message: msg, Errs: errs}
}

// WithNotes appends notes to the error and returns it for chaining.
// A nil receiver is passed through, so failures can be annotated without a
// nil check at every call site.
func (e *Error) WithNotes(notes ...string) *Error {
	if e == nil {
		return nil
	}
	e.Notes = append(e.Notes, notes...)
	return e
}

// Error renders a compact single-line summary. Use Tree or %+v for the full
// nested rendering.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, n := range e.Notes {
		b.WriteString(" [")
		b.WriteString(n)
		b.WriteString("]")
	}
	if len(e.Errs) > 0 {
		fmt.Fprintf(&b, " (%d sub-errors)", len(e.Errs))
	}
	return b.String()
}

// Tree renders the error as an indented tree with all notes and sub-errors.
func (e *Error) Tree() string {
	var b strings.Builder
	e.writeTree(&b, 0)
	return b.String()
}

func (e *Error) writeTree(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(e.Message)
	for _, n := range e.Notes {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString("| ")
		b.WriteString(n)
	}
	for _, sub := range e.Errs {
		b.WriteString("\n")
		sub.writeTree(b, depth+1)
	}
}

// Format implements fmt.Formatter: %+v renders the full tree, every other
// verb falls back to the compact Error string.
func (e *Error) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprint(f, e.Tree())
		return
	}
	fmt.Fprint(f, e.Error())
}

// As extracts a *Error from an error chain, reporting whether err is
// classified as a validation error.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// passThrough reports whether the error is an unannotated group with no
// message of its own, i.e. a pure container that can be flattened into its
// parent scope without losing information.
func (e *Error) passThrough() bool {
	return e.Kind == KindGroup && e.Message == "" && len(e.Notes) == 0
}
