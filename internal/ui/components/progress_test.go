package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

func TestProgressBarZeroValueFill(t *testing.T) {
	// A zero-value bar carries no fill color; View must fall back to the
	// theme default instead of panicking.
	bar := ProgressBar{Percent: 0.5, Width: 20}
	out := bar.View()
	if out == "" {
		t.Fatal("expected rendered output")
	}
}

func TestProgressBarModeFill(t *testing.T) {
	for _, mode := range []string{"focus", "short_break", "long_break"} {
		c := theme.ModeColor(mode)
		if c == nil {
			t.Fatalf("ModeColor(%q) returned nil", mode)
		}
		bar := NewProgressBar("", 1, false, 10)
		bar.FillColor = c
		if bar.View() == "" {
			t.Fatalf("empty render for mode %q", mode)
		}
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	bar := NewProgressBar("xp", 1.5, true, 30)
	out := bar.View()
	if !strings.Contains(out, "150%") {
		t.Fatalf("expected percent label in %q", out)
	}
	if w := lipgloss.Width(out); w > 30 {
		t.Fatalf("bar wider than requested: %d", w)
	}
}
