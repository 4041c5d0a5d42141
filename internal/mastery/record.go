package mastery

import "time"

// Mastery theta lives on a [-2, 2] scale, moved by a fixed step per
// practice outcome.
const (
	ThetaMin  = -2.0
	ThetaMax  = 2.0
	ThetaStep = 0.2
)

// Level is the qualitative mastery band derived from theta.
type Level string

const (
	LevelBeginning  Level = "beginning"
	LevelDeveloping Level = "developing"
	LevelProficient Level = "proficient"
	LevelAdvanced   Level = "advanced"
)

// LevelForTheta maps a theta to its mastery level.
func LevelForTheta(theta float64) Level {
	switch {
	case theta >= 1.5:
		return LevelAdvanced
	case theta >= 0.5:
		return LevelProficient
	case theta >= -0.5:
		return LevelDeveloping
	default:
		return LevelBeginning
	}
}

// Record tracks one skill's mastery for a learner.
type Record struct {
	SkillID         string
	Theta           float64
	Attempts        int
	Level           Level
	LastPracticedAt time.Time
	NextReviewAt    time.Time
}

// NewRecord returns the never-practiced default for a skill.
func NewRecord(skillID string) *Record {
	return &Record{
		SkillID: skillID,
		Level:   LevelForTheta(0),
	}
}

// Due reports whether the skill's review date has arrived. Skills that
// were never practiced have no review date and are never due.
func (r *Record) Due(now time.Time) bool {
	return !r.NextReviewAt.IsZero() && !r.NextReviewAt.After(now)
}

func clampTheta(theta float64) float64 {
	if theta < ThetaMin {
		return ThetaMin
	}
	if theta > ThetaMax {
		return ThetaMax
	}
	return theta
}
