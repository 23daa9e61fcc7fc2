package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerDebugIsOptIn(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Debug("hidden %d", 1)
	if out.Len() != 0 {
		t.Fatalf("debug output written while disabled: %q", out.String())
	}

	l.SetDebug(true)
	l.Debug("shown %d", 2)
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("expected debug line, got %q", out.String())
	}
}

func TestLoggerErrorDestination(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Error("boom: %s", "db")
	l.Info("fine")

	if !strings.Contains(errOut.String(), "boom: db") {
		t.Errorf("error output: got %q", errOut.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("error leaked into regular output: %q", out.String())
	}
}
