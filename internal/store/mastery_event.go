package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSubject(data.Subject).
		SetSkillID(data.SkillID).
		SetCorrect(data.Correct).
		SetThetaBefore(data.ThetaBefore).
		SetThetaAfter(data.ThetaAfter).
		SetLevel(data.Level)

	if data.NextReviewAt != "" {
		builder = builder.SetNextReviewAt(data.NextReviewAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
