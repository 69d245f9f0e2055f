package valuerepr

import (
	"github.com/davecgh/go-spew/spew"
)

// Formatter renders a value for inclusion in diagnostics.
type Formatter func(v any) string

// defaultSpew keeps output deterministic: sorted map keys, no pointer
// addresses or capacities, single-line %#v rendering.
var defaultSpew = &spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func defaultFormatter(v any) string {
	return defaultSpew.Sprintf("%#v", v)
}

var formatter Formatter = defaultFormatter

// Value renders v with the configured formatter. A formatter panic is
// recovered and rendered as a placeholder so diagnostics never abort
// validation.
func Value(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = "<can't repr>"
		}
	}()
	return formatter(v)
}

// SetFormatter installs fn as the process-wide value formatter. Passing nil
// restores the default. Useful to sanitize sensitive data out of error
// messages and logs.
func SetFormatter(fn Formatter) {
	if fn == nil {
		formatter = defaultFormatter
		return
	}
	formatter = fn
}
