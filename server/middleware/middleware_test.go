package middleware_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/relayops/reqkit/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newCaptureLogger returns a JSON logger writing into a buffer so tests can
// assert on emitted events.
func newCaptureLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.New(&logger.Config{
		Level:  "debug",
		Format: "json",
		Writer: &buf,
	}, "test")
	return log, &buf
}

// logLines decodes each emitted JSON log line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			t.Fatalf("log line is not valid JSON: %v (%s)", err, raw)
		}
		lines = append(lines, entry)
	}
	return lines
}

// linesWithMessage filters decoded log lines by message.
func linesWithMessage(lines []map[string]any, msg string) []map[string]any {
	var out []map[string]any
	for _, l := range lines {
		if l["message"] == msg {
			out = append(out, l)
		}
	}
	return out
}
