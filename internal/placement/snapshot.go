package placement

import (
	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// Data exports a placement for persistence. The attempt log is attached
// by the caller, which owns the session it came from.
func (p Placement) Data() *store.PlacementData {
	return &store.PlacementData{
		Subject:       string(p.Subject),
		Ability:       p.Ability,
		StandardError: p.StandardError,
		Label:         p.Label,
		Grade:         p.RecommendedGrade,
		Unit:          p.RecommendedUnit,
	}
}

// Data exports a level record for persistence.
func (l LevelRecord) Data() *store.LevelRecordData {
	return &store.LevelRecordData{
		Subject:    string(l.Subject),
		Grade:      l.Grade,
		Unit:       l.Unit,
		Ability:    l.Ability,
		Confidence: l.Confidence,
	}
}

// LevelFromData rebuilds a level record from its persisted form.
func LevelFromData(d *store.LevelRecordData) *LevelRecord {
	if d == nil {
		return nil
	}
	return &LevelRecord{
		Subject:    itembank.Subject(d.Subject),
		Grade:      d.Grade,
		Unit:       d.Unit,
		Ability:    d.Ability,
		Confidence: d.Confidence,
	}
}
