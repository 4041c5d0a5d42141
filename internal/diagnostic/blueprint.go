package diagnostic

import (
	"fmt"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
)

// Blueprint is the static per-subject configuration for a diagnostic
// session. Blueprints are validated at construction and never mutated
// while a session runs.
type Blueprint struct {
	Subject             itembank.Subject
	MinItems            int
	MaxItems            int
	BreakAfterAttempts  int
	StartDifficulty     float64
	StopStreakThreshold int
	MinDistinctSkills   int
}

// Validate checks the blueprint for configuration errors. Bad blueprints
// fail here, before any session starts.
func (b *Blueprint) Validate() error {
	if b.Subject == "" {
		return fmt.Errorf("blueprint: subject is required")
	}
	if b.MinItems < 1 {
		return fmt.Errorf("blueprint %s: minItems must be >= 1, got %d", b.Subject, b.MinItems)
	}
	if b.MaxItems < b.MinItems {
		return fmt.Errorf("blueprint %s: maxItems (%d) < minItems (%d)", b.Subject, b.MaxItems, b.MinItems)
	}
	if b.StopStreakThreshold < 1 {
		return fmt.Errorf("blueprint %s: stopStreakThreshold must be >= 1, got %d", b.Subject, b.StopStreakThreshold)
	}
	if b.MinDistinctSkills < 1 {
		return fmt.Errorf("blueprint %s: minDistinctSkills must be >= 1, got %d", b.Subject, b.MinDistinctSkills)
	}
	if b.BreakAfterAttempts < 0 || b.BreakAfterAttempts > b.MaxItems {
		return fmt.Errorf("blueprint %s: breakAfterAttempts %d outside [0, maxItems]", b.Subject, b.BreakAfterAttempts)
	}
	if b.StartDifficulty < AbilityMin || b.StartDifficulty > AbilityMax {
		return fmt.Errorf("blueprint %s: startDifficulty %.2f outside [%.0f, %.0f]", b.Subject, b.StartDifficulty, AbilityMin, AbilityMax)
	}
	return nil
}

// DefaultBlueprint returns the standard blueprint for a subject.
func DefaultBlueprint(subject itembank.Subject) Blueprint {
	return Blueprint{
		Subject:             subject,
		MinItems:            5,
		MaxItems:            12,
		BreakAfterAttempts:  8,
		StartDifficulty:     0,
		StopStreakThreshold: 3,
		MinDistinctSkills:   3,
	}
}
