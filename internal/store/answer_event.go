package store

import (
	"context"
	"fmt"

	"github.com/jkasmommy/brainpod-sub000/ent"
	"github.com/jkasmommy/brainpod-sub000/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubject(data.Subject).
		SetItemID(data.ItemID).
		SetSkill(data.Skill).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetAbilityBefore(data.AbilityBefore).
		SetAbilityAfter(data.AbilityAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswerAccuracy(ctx context.Context, subject, skillID string, lastN int) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.Subject(subject),
			answerevent.Skill(skillID),
		).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query recent answers: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}
