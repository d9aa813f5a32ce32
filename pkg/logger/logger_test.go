package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestInfoCarriesServiceAndContextFields(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "inventory-api", Level: zerolog.DebugLevel, Output: &buf})

	ctx := logg.WithField(context.Background(), "record_id", 7)
	ctx = logg.WithRequestID(ctx, "req-123")
	logg.Info(ctx, "record.fetched")

	entry := decodeLine(t, &buf)
	if entry["service"] != "inventory-api" {
		t.Fatalf("missing service field: %v", entry)
	}
	if entry["record_id"] != float64(7) {
		t.Fatalf("missing record_id field: %v", entry)
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("missing request_id field: %v", entry)
	}
	if entry["message"] != "record.fetched" {
		t.Fatalf("unexpected message: %v", entry)
	}
}

func TestWarnStackToggle(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})
	logg.Warn(context.Background(), "expected failure")
	if _, ok := decodeLine(t, &buf)["stack"]; ok {
		t.Fatal("warn should not carry a stack by default")
	}

	buf.Reset()
	logg = New(Options{ServiceName: "test", Level: zerolog.DebugLevel, WarnStack: true, Output: &buf})
	logg.Warn(context.Background(), "expected failure")
	if _, ok := decodeLine(t, &buf)["stack"]; !ok {
		t.Fatal("warn should carry a stack when enabled")
	}
}

func TestErrorAlwaysCarriesStack(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})
	logg.Error(context.Background(), "request.error", errors.New("boom"))

	entry := decodeLine(t, &buf)
	if _, ok := entry["stack"]; !ok {
		t.Fatal("error entries must include a stack")
	}
	if entry["error"] != "boom" {
		t.Fatalf("missing error field: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != zerolog.DebugLevel {
		t.Fatal("debug should parse")
	}
	if ParseLevel("") != zerolog.InfoLevel {
		t.Fatal("empty should default to info")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Fatal("unknown should default to info")
	}
}
