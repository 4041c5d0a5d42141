package diagnostic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// AttemptRecord is one entry in the raw attempt log persisted alongside
// the placement.
type AttemptRecord struct {
	ItemID        string  `json:"item_id"`
	Skill         string  `json:"skill"`
	Difficulty    float64 `json:"difficulty"`
	Response      string  `json:"response"`
	Correct       bool    `json:"correct"`
	AbilityBefore float64 `json:"ability_before"`
	AbilityAfter  float64 `json:"ability_after"`
}

// Session drives one diagnostic attempt through the
// select -> answer -> update -> stop-check loop. It is strictly
// sequential: one item in flight at a time, per learner.
type Session struct {
	ID    string
	state *SessionState
	bp    Blueprint
	bank  []itembank.Item
	log   []AttemptRecord
	// current is the in-flight item between Next and Submit.
	current   *itembank.Item
	exhausted bool
	events    store.EventRepo
}

// NewSession validates the blueprint and creates a session over the
// given bank. The event repo may be nil (no durable event log).
func NewSession(bp Blueprint, bank []itembank.Item, events store.EventRepo) (*Session, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:     uuid.NewString(),
		state:  NewSessionState(bp),
		bp:     bp,
		bank:   bank,
		events: events,
	}, nil
}

// ResumeSession continues a previously persisted session state.
func ResumeSession(bp Blueprint, state *SessionState, bank []itembank.Item, events store.EventRepo) (*Session, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if state == nil {
		return NewSession(bp, bank, events)
	}
	if state.SkillsSeen == nil {
		state.SkillsSeen = make(map[string]bool)
	}
	return &Session{
		ID:     uuid.NewString(),
		state:  state,
		bp:     bp,
		bank:   bank,
		events: events,
	}, nil
}

// State exposes the session state for persistence between turns.
func (s *Session) State() *SessionState {
	return s.state
}

// AttemptLog returns the raw per-item log accumulated so far.
func (s *Session) AttemptLog() []AttemptRecord {
	return s.log
}

// Next returns the item to present, or nil when the session is complete.
// Bank exhaustion forces completion with the current ability estimate.
func (s *Session) Next() *itembank.Item {
	if s.current != nil {
		return s.current
	}
	if ShouldStop(s.state, s.bp) {
		return nil
	}
	item := SelectNext(s.state, s.bank)
	if item == nil {
		s.exhausted = true
		return nil
	}
	s.current = item
	return item
}

// Submit scores the learner's response to the in-flight item, updates
// the ability estimate, and checks the break trigger.
func (s *Session) Submit(ctx context.Context, response string) (bool, error) {
	if s.current == nil {
		return false, fmt.Errorf("no item in flight; call Next first")
	}
	item := s.current
	s.current = nil

	correct := itembank.CheckAnswer(item, response)
	before := s.state.Ability

	s.state.ItemsAsked = append(s.state.ItemsAsked, item.ID)
	UpdateAbility(s.state, correct, item.Difficulty, item.Skill)
	CheckBreak(s.state, s.bp)

	s.log = append(s.log, AttemptRecord{
		ItemID:        item.ID,
		Skill:         item.Skill,
		Difficulty:    item.Difficulty,
		Response:      response,
		Correct:       correct,
		AbilityBefore: before,
		AbilityAfter:  s.state.Ability,
	})

	if s.events != nil {
		_ = s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     s.ID,
			Subject:       string(s.state.Subject),
			ItemID:        item.ID,
			Skill:         item.Skill,
			Difficulty:    item.Difficulty,
			Correct:       correct,
			AbilityBefore: before,
			AbilityAfter:  s.state.Ability,
		})
	}
	return correct, nil
}

// Done reports whether the session has reached a stop condition or
// exhausted the bank.
func (s *Session) Done() bool {
	return s.exhausted || (s.current == nil && ShouldStop(s.state, s.bp))
}

// Exhausted reports whether completion was forced by an empty bank.
func (s *Session) Exhausted() bool {
	return s.exhausted
}
