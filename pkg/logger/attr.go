package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Field records the name of the validated field.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records the validated input as text.
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// ViolationCodes records the violation kinds of one validation call under
// "violations". No codes yields an empty Attr.
func ViolationCodes[T ~string](codes []T) slog.Attr {
	if len(codes) == 0 {
		return slog.Attr{}
	}
	ss := make([]string, len(codes))
	for i, c := range codes {
		ss[i] = string(c)
	}
	return slog.Any("violations", ss)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
