package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Output: &buf})
	L().Debug("hidden")
	L().Info("generate.done", "shapes", 8)
	cleanup()
	L().Info("discarded")

	out := buf.String()
	if strings.Contains(out, "hidden") || strings.Contains(out, "discarded") {
		t.Fatalf("unexpected records in output:\n%s", out)
	}
	if !strings.Contains(out, "msg=generate.done") || !strings.Contains(out, "shapes=8") {
		t.Fatalf("missing info record in output:\n%s", out)
	}
}

func TestSetupDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Output: &buf, Debug: true})
	defer cleanup()
	L().Debug("render.write", "format", "svg")
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "source=") {
		t.Fatalf("expected debug record with source, got:\n%s", out)
	}
}
