// Package logkit provides log/slog helpers for the validation engine:
// attribute constructors for validation context (field, index, key, path) and
// a small logger factory.
//
// The factory defaults to a discard handler because recordkit is an embedded
// library: hosts that want engine diagnostics opt in explicitly, either by
// passing their own logger to the engine or by building one here.
//
//	log := logkit.New(logkit.WithLevel(slog.LevelDebug), logkit.WithTextFormat())
//	engine := recordkit.New(recordkit.WithLogger(log))
package logkit
