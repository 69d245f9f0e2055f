package recordkit

import (
	"log/slog"

	"github.com/dmitrymomot/recordkit/pkg/logkit"
	"github.com/dmitrymomot/recordkit/pkg/valuerepr"
)

// Engine runs record validation with explicit configuration instead of
// process-wide knobs. The zero configuration (New with no options) discards
// logs and renders errors compactly.
type Engine struct {
	log        *slog.Logger
	deepErrors bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithDeepErrors makes the engine log the full indented failure tree on
// validation failure instead of a one-line summary. The returned error is
// the same either way; %+v always renders its tree.
func WithDeepErrors(on bool) Option {
	return func(e *Engine) {
		e.deepErrors = on
	}
}

// WithFormatter installs fn as the diagnostic value formatter. The formatter
// is process-wide (see valuerepr.SetFormatter): it affects every engine and
// must not be swapped concurrently with running validations.
func WithFormatter(fn valuerepr.Formatter) Option {
	return func(*Engine) {
		valuerepr.SetFormatter(fn)
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{log: logkit.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// FullValidate validates rec with a default quiet engine. See
// Engine.FullValidate.
func FullValidate(rec Record) error {
	return defaultEngine.FullValidate(rec)
}
