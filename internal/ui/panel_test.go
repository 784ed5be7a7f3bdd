package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Makepad-fr/bmi/internal/bmi"
)

func useTheme(t *testing.T, name string) {
	t.Helper()
	SetTheme(name)
	t.Cleanup(func() { SetTheme("classic") })
}

func TestGauge(t *testing.T) {
	useTheme(t, "mono")

	tests := []struct {
		bmi  float64
		want string
	}{
		{25, "#####----- 25.0"},
		{5, "---------- 5.0"},
		{52.3, "########## 52.3"},
	}
	for _, tt := range tests {
		if got := Gauge(tt.bmi, 10); got != tt.want {
			t.Errorf("Gauge(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
	if got := Gauge(25, 1); got != "##--- 25.0" {
		t.Errorf("narrow Gauge = %q, want minimum width 5", got)
	}
}

func TestBadgeMono(t *testing.T) {
	useTheme(t, "mono")
	if got := Badge(bmi.Obese); got != "[Obese]" {
		t.Errorf("Badge = %q, want [Obese]", got)
	}
}

func TestBadgeColored(t *testing.T) {
	useTheme(t, "classic")
	if got := Badge(bmi.NormalWeight); !strings.Contains(got, "Normal Weight") {
		t.Errorf("Badge = %q", got)
	}
}

func TestPanelAndStatus(t *testing.T) {
	useTheme(t, "mono")
	var buf bytes.Buffer

	Panel(&buf, []string{"BMI 24.7", "Normal Weight"})
	OK(&buf, "done")
	Fail(&buf, "bad input")

	out := buf.String()
	for _, want := range []string{"BMI 24.7", "Normal Weight", "ok done", "error: bad input"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetThemeUnknownFallsBack(t *testing.T) {
	useTheme(t, "plaid")
	if Current().Name != "classic" {
		t.Errorf("theme = %q, want classic", Current().Name)
	}
}
