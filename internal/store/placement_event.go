package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlacementEvent(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlacementEvent.Create().
		SetSequence(seqNum).
		SetSubject(data.Subject).
		SetAbility(data.Ability).
		SetStandardError(data.StandardError).
		SetLabel(data.Label).
		SetGrade(data.Grade).
		SetUnit(data.Unit).
		SetAttempts(data.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}
