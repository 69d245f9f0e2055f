package logkit

import "log/slog"

// Err records a single error under the key "error". A nil err yields an
// empty Attr.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FieldName records the record field being validated under the key "field".
func FieldName(name string) slog.Attr {
	return slog.String("field", name)
}

// Index records a collection element position under the key "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Key records a mapping entry key under the key "key".
func Key(k string) slog.Attr {
	return slog.String("key", k)
}

// Path records a dotted attribute path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// RecordType records the record type under validation under the key "record".
func RecordType(name string) slog.Attr {
	return slog.String("record", name)
}

// Count records a number of collected failures under the key "errors".
func Count(n int) slog.Attr {
	return slog.Int("errors", n)
}
