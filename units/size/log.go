package size

import (
	"log/slog"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

var (
	_ logr.Marshaler          = Size{}
	_ zapcore.ObjectMarshaler = Size{}
	_ slog.LogValuer          = Size{}
)

const (
	logKeyValue    = "value"
	logKeyMultiple = "multiple"
	logKeyBytes    = "bytes"
)

type logRepresentation struct {
	Value    uint64 `json:"value"`
	Multiple string `json:"multiple"`
	Bytes    string `json:"bytes,omitempty"`
}

// The byte count is only reported when it fits in 128 bits.
func (s Size) logRepresentation() logRepresentation {
	r := logRepresentation{
		Value:    s.value,
		Multiple: s.multiple.String(),
	}
	if bytes, err := s.ToUint128(); err == nil {
		r.Bytes = bytes.String()
	}
	return r
}

// MarshalLog implements logr.Marshaler.
func (s Size) MarshalLog() any {
	return s.logRepresentation()
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Size) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	r := s.logRepresentation()
	enc.AddUint64(logKeyValue, r.Value)
	enc.AddString(logKeyMultiple, r.Multiple)
	if r.Bytes != "" {
		enc.AddString(logKeyBytes, r.Bytes)
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (s Size) LogValue() slog.Value {
	r := s.logRepresentation()
	attrs := []slog.Attr{
		slog.Uint64(logKeyValue, r.Value),
		slog.String(logKeyMultiple, r.Multiple),
	}
	if r.Bytes != "" {
		attrs = append(attrs, slog.String(logKeyBytes, r.Bytes))
	}
	return slog.GroupValue(attrs...)
}
