package mastery

import "testing"

func TestNextReviewInDays_Bands(t *testing.T) {
	tests := []struct {
		theta   float64
		correct bool
		want    int
	}{
		{1.6, true, 14},
		{1.6, false, 7},
		{1.5, true, 14},
		{0.5, true, 7},
		{0.5, false, 3},
		{0.0, true, 4},
		{0.0, false, 2},
		{-0.5, true, 4},
		{-0.6, true, 2},
		{-2.0, true, 2},
		{-2.0, false, 1},
	}

	for _, tt := range tests {
		got := NextReviewInDays(tt.theta, tt.correct)
		if got != tt.want {
			t.Errorf("NextReviewInDays(%v, %v) = %d, want %d", tt.theta, tt.correct, got, tt.want)
		}
	}
}

// Stronger mastery never shortens the retention interval.
func TestNextReviewInDays_MonotoneInTheta(t *testing.T) {
	prev := 0
	for theta := -2.0; theta <= 2.0; theta += 0.1 {
		days := NextReviewInDays(theta, true)
		if days < prev {
			t.Fatalf("interval shrank from %d to %d at theta %v", prev, days, theta)
		}
		prev = days
	}
}

func TestNextReviewInDays_MissNeverBelowOneDay(t *testing.T) {
	for theta := -2.0; theta <= 2.0; theta += 0.25 {
		if days := NextReviewInDays(theta, false); days < 1 {
			t.Fatalf("interval %d below floor at theta %v", days, theta)
		}
	}
}

func TestReviewScale(t *testing.T) {
	if got := ReviewScale(0); got != 0.8 {
		t.Errorf("ReviewScale(0) = %v, want 0.8", got)
	}
	if got := ReviewScale(-2); got != 0.5 {
		t.Errorf("ReviewScale(-2) = %v, want floor 0.5", got)
	}
	if ReviewScale(2) <= ReviewScale(0) {
		t.Error("scale should grow with theta")
	}
}
