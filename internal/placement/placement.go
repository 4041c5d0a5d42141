package placement

import "github.com/jkasmommy/brainpod-sub000/internal/itembank"

// DefaultStandardError is the reported standard error of measurement.
// A Fisher-information SEM would change observable values, so the
// constant stays until product confirms the change.
const DefaultStandardError = 0.25

// Placement is the human-facing recommendation produced once per
// completed diagnostic session.
type Placement struct {
	Subject          itembank.Subject `json:"subject"`
	Ability          float64          `json:"ability"`
	StandardError    float64          `json:"standard_error"`
	Label            string           `json:"label"`
	RecommendedGrade string           `json:"recommended_grade"`
	RecommendedUnit  string           `json:"recommended_unit"`
}

// Place maps a terminal ability value onto the subject's band table.
// Pure function; no I/O.
func Place(ability float64, subject itembank.Subject) Placement {
	idx := bandIndex(ability)
	gu := unitTable(subject)[idx]
	return Placement{
		Subject:          subject,
		Ability:          ability,
		StandardError:    DefaultStandardError,
		Label:            bands[idx].label,
		RecommendedGrade: gu.Grade,
		RecommendedUnit:  gu.Unit,
	}
}

// LevelRecord is the durable summary consumed by plan generation.
type LevelRecord struct {
	Subject    itembank.Subject `json:"subject"`
	Grade      string           `json:"grade"`
	Unit       string           `json:"unit"`
	Ability    float64          `json:"ability"`
	Confidence string           `json:"confidence"` // low, medium, high
}

// DeriveLevel builds the level record from a placement and the session's
// coverage. Confidence reflects how much evidence the estimate rests on.
func DeriveLevel(p Placement, attempts, distinctSkills int) LevelRecord {
	confidence := "low"
	switch {
	case attempts >= 8 && distinctSkills >= 4:
		confidence = "high"
	case attempts >= 5 && distinctSkills >= 3:
		confidence = "medium"
	}
	return LevelRecord{
		Subject:    p.Subject,
		Grade:      p.RecommendedGrade,
		Unit:       p.RecommendedUnit,
		Ability:    p.Ability,
		Confidence: confidence,
	}
}
