package store

import (
	"context"
	"time"
)

// SnapshotData captures the full learner state at a point in time as one
// JSON document. Its fields realize the conceptual key space of the
// persistence surface, keyed by subject:
//
//	Sessions   ~ session:{subject}    (transient diagnostic state)
//	Placements ~ placement:{subject}  (placement + raw attempt log)
//	Levels     ~ level:{subject}      (durable summary for planning)
//	Mastery    ~ mastery:{subject}    (skillID -> mastery record)
//	Plans      ~ plan:{subject}       (ordered plan items)
type SnapshotData struct {
	Version    int                                      `json:"version"`
	Sessions   map[string]*SessionStateData             `json:"sessions,omitempty"`
	Placements map[string]*PlacementData                `json:"placements,omitempty"`
	Levels     map[string]*LevelRecordData              `json:"levels,omitempty"`
	Mastery    map[string]map[string]*MasteryRecordData `json:"mastery,omitempty"`
	Plans      map[string][]*PlanItemData               `json:"plans,omitempty"`
}

// SessionStateData is the persisted form of an in-flight diagnostic.
type SessionStateData struct {
	Subject        string   `json:"subject"`
	Ability        float64  `json:"ability"`
	ItemsAsked     []string `json:"items_asked"`
	SkillsSeen     []string `json:"skills_seen"`
	CorrectCount   int      `json:"correct_count"`
	Attempts       int      `json:"attempts"`
	Streak         int      `json:"streak"`
	Mood           int      `json:"mood"`
	NeedsBreak     bool     `json:"needs_break"`
	BreakTriggered bool     `json:"break_triggered"`
}

// AttemptData is one entry of a placement's raw attempt log.
type AttemptData struct {
	ItemID        string  `json:"item_id"`
	Skill         string  `json:"skill"`
	Difficulty    float64 `json:"difficulty"`
	Response      string  `json:"response"`
	Correct       bool    `json:"correct"`
	AbilityBefore float64 `json:"ability_before"`
	AbilityAfter  float64 `json:"ability_after"`
}

// PlacementData is the persisted placement plus its attempt log.
type PlacementData struct {
	Subject       string        `json:"subject"`
	Ability       float64       `json:"ability"`
	StandardError float64       `json:"standard_error"`
	Label         string        `json:"label"`
	Grade         string        `json:"grade"`
	Unit          string        `json:"unit"`
	CompletedAt   string        `json:"completed_at"` // RFC3339
	Attempts      []AttemptData `json:"attempts,omitempty"`
}

// LevelRecordData is the durable grade/unit/ability/confidence summary.
type LevelRecordData struct {
	Subject    string  `json:"subject"`
	Grade      string  `json:"grade"`
	Unit       string  `json:"unit"`
	Ability    float64 `json:"ability"`
	Confidence string  `json:"confidence"`
}

// MasteryRecordData is the persisted form of one learner x skill record.
type MasteryRecordData struct {
	SkillID         string  `json:"skill_id"`
	Theta           float64 `json:"theta"`
	Attempts        int     `json:"attempts"`
	LastPracticedAt string  `json:"last_practiced_at,omitempty"` // RFC3339
	NextReviewAt    string  `json:"next_review_at,omitempty"`    // RFC3339
	Level           string  `json:"level"`
}

// PlanItemData is the persisted form of one plan item.
type PlanItemData struct {
	LessonID     string   `json:"lesson_id"`
	Skills       []string `json:"skills"`
	ScheduledFor string   `json:"scheduled_for"` // RFC3339
	Status       string   `json:"status"`
	Priority     int      `json:"priority"`
	CompletedAt  *string  `json:"completed_at,omitempty"` // RFC3339
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one scored diagnostic response.
type AnswerEventData struct {
	SessionID     string
	Subject       string
	ItemID        string
	Skill         string
	Difficulty    float64
	Correct       bool
	AbilityBefore float64
	AbilityAfter  float64
}

// PlacementEventData captures a completed placement.
type PlacementEventData struct {
	Subject       string
	Ability       float64
	StandardError float64
	Label         string
	Grade         string
	Unit          string
	Attempts      int
}

// MasteryEventData captures one mastery update.
type MasteryEventData struct {
	Subject      string
	SkillID      string
	Correct      bool
	ThetaBefore  float64
	ThetaAfter   float64
	Level        string
	NextReviewAt string // RFC3339
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records a scored diagnostic response.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendPlacementEvent records a completed placement.
	AppendPlacementEvent(ctx context.Context, data PlacementEventData) error

	// AppendMasteryEvent records a mastery update.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// RecentAnswerAccuracy returns accuracy over the last N answers for
	// a subject's skill, and how many answers were found.
	RecentAnswerAccuracy(ctx context.Context, subject, skillID string, lastN int) (float64, int, error)
}
