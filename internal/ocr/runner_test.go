package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestExecRunnerLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	r := execRunner{log: slog.New(slog.NewTextHandler(&buf, nil))}

	_, _, err := r.Run(context.Background(), "tesseract-binary-that-does-not-exist", "bill.jpg", "stdout")
	if err == nil {
		t.Fatal("Run with a missing binary returned nil error")
	}
	if !strings.Contains(buf.String(), "ocr.exec.failed") {
		t.Errorf("log output missing failure event: %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	got := truncate(strings.Repeat("x", 20), 10)
	if got != strings.Repeat("x", 10)+"...(truncated)" {
		t.Errorf("truncate = %q", got)
	}
}
