package progression

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{100, 1},
		{299, 1},
		{300, 2},
		{450, 2},
		{599, 2},
		{600, 3},
		{3600, 13},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelFor_NegativeClamped(t *testing.T) {
	if got := LevelFor(-50); got != 1 {
		t.Errorf("LevelFor(-50) = %d, want 1", got)
	}
}

func TestAwardXP_MonotoneFixedStep(t *testing.T) {
	xp := 0
	for i := 1; i <= 10; i++ {
		next := AwardXP(xp)
		if next != xp+TopicXP {
			t.Fatalf("award %d: got %d, want %d", i, next, xp+TopicXP)
		}
		if next <= xp {
			t.Fatalf("XP must strictly increase, got %d after %d", next, xp)
		}
		xp = next
	}
	if LevelFor(xp) != 4 {
		t.Errorf("level after 10 topics = %d, want 4", LevelFor(xp))
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		want  float64
	}{
		{0, 1, 0},
		{150, 1, 50},
		{300, 2, 0},
		{450, 2, 50},
		{900, 2, 100}, // stale level input clamps high
		{0, 3, 0},     // stale level input clamps low
	}

	for _, tt := range tests {
		if got := LevelProgress(tt.xp, tt.level); got != tt.want {
			t.Errorf("LevelProgress(%d, %d) = %.1f, want %.1f", tt.xp, tt.level, got, tt.want)
		}
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Aprendiz"},
		{2, "Aprendiz"},
		{3, "Estudioso"},
		{5, "Estudioso"},
		{6, "Mestre"},
		{8, "Mestre"},
		{9, "Grão-Mestre"},
		{12, "Grão-Mestre"},
		{13, "Arquimago"},
		{40, "Arquimago"},
	}

	for _, tt := range tests {
		if got := TitleFor(tt.level); got != tt.want {
			t.Errorf("TitleFor(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
