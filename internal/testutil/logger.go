package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogBuffer collects JSON log records written by a logger from NewLogBuffer
type LogBuffer struct {
	buf bytes.Buffer
}

// NewLogBuffer returns a debug-level logger writing into the returned buffer
func NewLogBuffer() (*slog.Logger, *LogBuffer) {
	lb := &LogBuffer{}
	logger := slog.New(slog.NewJSONHandler(&lb.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, lb
}

// Records decodes every log line; lines that are not JSON are skipped
func (l *LogBuffer) Records() []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(l.buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records
}

// Messages returns the "msg" field of every record in order
func (l *LogBuffer) Messages() []string {
	var msgs []string
	for _, rec := range l.Records() {
		if msg, ok := rec[slog.MessageKey].(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
