package mastery

import (
	"context"
	"sort"
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// Service manages mastery records for all skills, keyed by subject.
// State loads from the snapshot and exports back to it; a missing record
// is "never practiced" (theta 0), never an error.
type Service struct {
	subjects map[string]map[string]*Record
	events   store.EventRepo
}

// NewService creates a mastery service from snapshot state.
func NewService(snap *store.SnapshotData, events store.EventRepo) *Service {
	s := &Service{
		subjects: make(map[string]map[string]*Record),
		events:   events,
	}
	if snap == nil || snap.Mastery == nil {
		return s
	}
	for subject, skills := range snap.Mastery {
		bySkill := make(map[string]*Record, len(skills))
		for id, rd := range skills {
			r := &Record{
				SkillID:  id,
				Theta:    clampTheta(rd.Theta),
				Attempts: rd.Attempts,
				Level:    LevelForTheta(rd.Theta),
			}
			if t, err := time.Parse(time.RFC3339, rd.LastPracticedAt); err == nil {
				r.LastPracticedAt = t
			}
			if t, err := time.Parse(time.RFC3339, rd.NextReviewAt); err == nil {
				r.NextReviewAt = t
			}
			bySkill[id] = r
		}
		s.subjects[subject] = bySkill
	}
	return s
}

// Get returns the mastery record for a skill, creating the
// never-practiced default if the skill hasn't been seen.
func (s *Service) Get(subject itembank.Subject, skillID string) *Record {
	bySkill, ok := s.subjects[string(subject)]
	if !ok {
		bySkill = make(map[string]*Record)
		s.subjects[string(subject)] = bySkill
	}
	if r, ok := bySkill[skillID]; ok {
		return r
	}
	r := NewRecord(skillID)
	bySkill[skillID] = r
	return r
}

// BySkill returns all records for a subject.
func (s *Service) BySkill(subject itembank.Subject) map[string]*Record {
	result := make(map[string]*Record, len(s.subjects[string(subject)]))
	for id, r := range s.subjects[string(subject)] {
		result[id] = r
	}
	return result
}

// RecordPractice folds one practice outcome into a skill's record:
// theta moves by the fixed step, the level and next review date are
// recomputed from the adjusted theta, and a mastery event is appended.
func (s *Service) RecordPractice(ctx context.Context, subject itembank.Subject, skillID string, correct bool, now time.Time) *Record {
	r := s.Get(subject, skillID)

	before := r.Theta
	step := ThetaStep
	if !correct {
		step = -ThetaStep
	}
	r.Theta = clampTheta(r.Theta + step)
	r.Attempts++
	r.LastPracticedAt = now
	r.Level = LevelForTheta(r.Theta)
	r.NextReviewAt = now.AddDate(0, 0, NextReviewInDays(r.Theta, correct))

	if s.events != nil {
		_ = s.events.AppendMasteryEvent(ctx, store.MasteryEventData{
			Subject:      string(subject),
			SkillID:      skillID,
			Correct:      correct,
			ThetaBefore:  before,
			ThetaAfter:   r.Theta,
			Level:        string(r.Level),
			NextReviewAt: r.NextReviewAt.Format(time.RFC3339),
		})
	}
	return r
}

// DueSkills returns the subject's skills due for review at now, most
// overdue first.
func (s *Service) DueSkills(subject itembank.Subject, now time.Time) []string {
	type dueSkill struct {
		id      string
		overdue float64
	}
	var due []dueSkill
	for id, r := range s.subjects[string(subject)] {
		if r.Due(now) {
			due = append(due, dueSkill{id: id, overdue: now.Sub(r.NextReviewAt).Hours()})
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})
	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// SnapshotData exports all mastery state for persistence.
func (s *Service) SnapshotData() map[string]map[string]*store.MasteryRecordData {
	out := make(map[string]map[string]*store.MasteryRecordData, len(s.subjects))
	for subject, bySkill := range s.subjects {
		skills := make(map[string]*store.MasteryRecordData, len(bySkill))
		for id, r := range bySkill {
			rd := &store.MasteryRecordData{
				SkillID:  id,
				Theta:    r.Theta,
				Attempts: r.Attempts,
				Level:    string(r.Level),
			}
			if !r.LastPracticedAt.IsZero() {
				rd.LastPracticedAt = r.LastPracticedAt.Format(time.RFC3339)
			}
			if !r.NextReviewAt.IsZero() {
				rd.NextReviewAt = r.NextReviewAt.Format(time.RFC3339)
			}
			skills[id] = rd
		}
		out[subject] = skills
	}
	return out
}
