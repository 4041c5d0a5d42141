package planner

import "time"

// Status is a plan item's lifecycle state. The todo -> inprogress -> done
// transitions belong to the caller; locked items wait on prerequisites.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
	StatusLocked     Status = "locked"
)

// ReviewPriorityFloor marks review items: any item with priority at or
// above it is a spaced review, never a freshly introduced lesson.
const ReviewPriorityFloor = 1000

// PlanItem is one scheduled lesson in a learner's plan. Priority is
// owned by the scheduler and recomputed on every playlist build.
type PlanItem struct {
	LessonID     string     `json:"lesson_id"`
	Skills       []string   `json:"skills"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	Status       Status     `json:"status"`
	Priority     int        `json:"priority"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// IsReview reports whether the item is a spaced review by the priority
// convention.
func (p *PlanItem) IsReview() bool {
	return p.Priority >= ReviewPriorityFloor
}

// MarkDone records completion; the timestamp feeds spaced-review
// synthesis on later playlist builds.
func (p *PlanItem) MarkDone(now time.Time) {
	p.Status = StatusDone
	p.CompletedAt = &now
}
