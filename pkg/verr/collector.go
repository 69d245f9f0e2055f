package verr

// Noted pairs an error with notes to attach on collection, the unit accepted
// by Collector.Extend.
type Noted struct {
	Err   *Error
	Notes []string
}

// Collector accumulates validation failures. The zero value is ready to use.
// It is not safe for concurrent use; every validation call owns its own
// collectors.
type Collector struct {
	errs []*Error
}

// Add attaches notes to err and appends it; a nil err is a no-op. Returns the
// collector for chaining.
func (c *Collector) Add(err *Error, notes ...string) *Collector {
	if err == nil {
		return c
	}
	c.errs = append(c.errs, err.WithNotes(notes...))
	return c
}

// Extend applies Add to every item.
func (c *Collector) Extend(items []Noted) *Collector {
	for _, item := range items {
		c.Add(item.Err, item.Notes...)
	}
	return c
}

// Scoped runs fn and routes any validation-classified error it returns into
// the collector, annotated with notes. A pass-through group (one with neither
// message nor notes of its own) is flattened: its children are re-added
// individually, each with the same notes, instead of nesting one level
// deeper. Errors not classified as validation errors are returned to the
// caller for propagation.
func (c *Collector) Scoped(fn func() error, notes ...string) error {
	err := fn()
	if err == nil {
		return nil
	}
	ve, ok := As(err)
	if !ok {
		return err
	}
	if ve.passThrough() {
		for _, sub := range ve.Errs {
			c.Add(sub, notes...)
		}
		return nil
	}
	c.Add(ve, notes...)
	return nil
}

// Len reports how many errors were collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Errs exposes the collected errors in collection order.
func (c *Collector) Errs() []*Error {
	return c.errs
}

// Group returns a grouped error with msg if at least one error was collected,
// nil otherwise.
func (c *Collector) Group(msg string) *Error {
	if len(c.errs) == 0 {
		return nil
	}
	return NewGroup(msg, c.errs...)
}

// SingleOrGroup returns nil if nothing was collected, the sole error as-is if
// exactly one was (msg is discarded), and a grouped error with msg otherwise.
func (c *Collector) SingleOrGroup(msg string) *Error {
	if len(c.errs) == 1 {
		return c.errs[0]
	}
	return c.Group(msg)
}
