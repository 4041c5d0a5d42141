package mastery

// NextReviewInDays returns the retention interval for a skill after a
// practice outcome. Stronger mastery earns longer intervals; a miss
// halves the band's interval, never below one day.
func NextReviewInDays(theta float64, correct bool) int {
	var days int
	switch {
	case theta >= 1.5:
		days = 14
	case theta >= 0.5:
		days = 7
	case theta >= -0.5:
		days = 4
	default:
		days = 2
	}
	if !correct {
		days /= 2
		if days < 1 {
			days = 1
		}
	}
	return days
}

// ReviewScale converts a skill's theta to the multiplier applied to the
// spaced-review interval set. Theta 0 maps to 0.8, the never-practiced
// baseline; the floor keeps weak skills from collapsing below half pace.
func ReviewScale(theta float64) float64 {
	scale := (theta + 2) / 2.5
	if scale < 0.5 {
		return 0.5
	}
	return scale
}
