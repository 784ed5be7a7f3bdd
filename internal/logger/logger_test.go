package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(WarnLevel, &buf)

	log.Infow("quiet", "k", 1)
	log.Warnw("loud", "k", 2)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "WARN") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", &buf)

	log.Debugw("hidden")
	log.Infow("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestOpenWithoutPathIsNop(t *testing.T) {
	log, closeFn, err := Open(DebugLevel, "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	log.Infow("dropped")
	if err := closeFn(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmi.log")
	log, closeFn, err := Open(InfoLevel, path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	log.Infow("calculated", "bmi", "24.7")
	_ = log.Sync()
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "calculated") {
		t.Errorf("log file missing entry:\n%s", b)
	}
}

func TestOpenBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "bmi.log")
	if _, _, err := Open(InfoLevel, path); err == nil {
		t.Error("Open() into a missing dir should fail")
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	if ValidLevel("trace") {
		t.Error("ValidLevel(trace) = true")
	}
}
