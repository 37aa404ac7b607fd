package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/relayops/reqkit/logger"
)

func newBufferLogger(t *testing.T, level string) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(&logger.Config{
		Level:  level,
		Format: "json",
		Writer: &buf,
	}, "test-service")
	return log, &buf
}

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v (%s)", err, line)
	}
	return entry
}

func TestLogger_JSONOutput(t *testing.T) {
	log, buf := newBufferLogger(t, "info")
	log.Info("hello", map[string]interface{}{"count": 3})

	entry := decodeLine(t, buf.String())
	if entry["message"] != "hello" {
		t.Errorf("expected message hello, got %v", entry["message"])
	}
	if entry["service"] != "test-service" {
		t.Errorf("expected service tag, got %v", entry["service"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("expected count field, got %v", entry["count"])
	}
	if entry["level"] != "info" {
		t.Errorf("expected level info, got %v", entry["level"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(t, "warn")
	log.Info("suppressed")
	log.Debug("also suppressed")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %s", buf.String())
	}
	log.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("expected warn output")
	}
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	log, buf := newBufferLogger(t, "nonsense")
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug should be suppressed at the default level")
	}
	log.Info("shown")
	if buf.Len() == 0 {
		t.Error("info should pass at the default level")
	}
}

func TestLogger_WithComponent(t *testing.T) {
	log, buf := newBufferLogger(t, "info")
	log.WithComponent("server").Info("started")

	entry := decodeLine(t, buf.String())
	if entry["component"] != "server" {
		t.Errorf("expected component field, got %v", entry["component"])
	}
}

func TestLogger_WithError(t *testing.T) {
	log, buf := newBufferLogger(t, "info")
	log.WithError(errors.New("disk full")).Error("write failed")

	entry := decodeLine(t, buf.String())
	if entry["error"] != "disk full" {
		t.Errorf("expected error field, got %v", entry["error"])
	}
}

func TestLogger_WithFieldsDoesNotMutateParent(t *testing.T) {
	log, buf := newBufferLogger(t, "info")
	_ = log.WithFields(map[string]interface{}{"request": "abc"})
	log.Info("plain")

	entry := decodeLine(t, buf.String())
	if _, ok := entry["request"]; ok {
		t.Error("parent logger must not inherit derived fields")
	}
}

func TestLogger_ContextRoundTrip(t *testing.T) {
	log, buf := newBufferLogger(t, "info")
	ctx := logger.IntoContext(context.Background(), log.WithComponent("handler"))

	logger.FromContext(ctx).Info("from context")
	entry := decodeLine(t, buf.String())
	if entry["component"] != "handler" {
		t.Errorf("expected the context logger, got %v", entry)
	}
}

func TestLogger_FromContextFallsBackToNop(t *testing.T) {
	log := logger.FromContext(context.Background())
	if log == nil {
		t.Fatal("expected a usable fallback logger")
	}
	// Must not panic.
	log.Info("discarded")
}

func TestFields_PairwiseConstruction(t *testing.T) {
	fields := logger.Fields("a", 1, "b", "two")
	if fields["a"] != 1 || fields["b"] != "two" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &logger.Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	bad := &logger.Config{Level: "shout", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected invalid level to be rejected")
	}
}
