package placement

import (
	"testing"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
)

func TestPlace_BandEdges(t *testing.T) {
	tests := []struct {
		ability float64
		label   string
	}{
		{-3.0, "Foundation"},
		{-2.5, "Foundation"},
		{-2.49, "Emerging"},
		{-0.6, "Developing"},
		{0.0, "On Track"},
		{1.5, "Progressing"},
		{2.3, "Advanced"},
		{2.31, "College/Advanced"},
		{3.0, "College/Advanced"},
	}

	for _, tt := range tests {
		p := Place(tt.ability, itembank.SubjectMath)
		if p.Label != tt.label {
			t.Errorf("Place(%v) label = %q, want %q", tt.ability, p.Label, tt.label)
		}
	}
}

func TestPlace_SubjectSpecificUnits(t *testing.T) {
	math := Place(0, itembank.SubjectMath)
	reading := Place(0, itembank.SubjectReading)

	if math.RecommendedUnit == reading.RecommendedUnit {
		t.Error("expected subject-specific units for the same ability")
	}
	if math.RecommendedGrade != reading.RecommendedGrade {
		t.Errorf("grades differ for the same band: %s vs %s", math.RecommendedGrade, reading.RecommendedGrade)
	}
}

func TestPlace_ConstantStandardError(t *testing.T) {
	for _, ability := range []float64{-3, -1, 0, 2, 3} {
		p := Place(ability, itembank.SubjectScience)
		if p.StandardError != DefaultStandardError {
			t.Errorf("StandardError = %v, want %v", p.StandardError, DefaultStandardError)
		}
	}
}

func TestPlace_EveryBandHasRecommendation(t *testing.T) {
	for _, subject := range itembank.AllSubjects() {
		for _, ability := range []float64{-3, -2.6, -2, -1, 0, 1, 2, 2.5, 3} {
			p := Place(ability, subject)
			if p.RecommendedGrade == "" || p.RecommendedUnit == "" || p.Label == "" {
				t.Errorf("Place(%v, %s) missing fields: %+v", ability, subject, p)
			}
		}
	}
}

func TestDeriveLevel_Confidence(t *testing.T) {
	p := Place(0.4, itembank.SubjectMath)

	if got := DeriveLevel(p, 10, 5).Confidence; got != "high" {
		t.Errorf("Confidence = %q, want high", got)
	}
	if got := DeriveLevel(p, 6, 3).Confidence; got != "medium" {
		t.Errorf("Confidence = %q, want medium", got)
	}
	if got := DeriveLevel(p, 3, 1).Confidence; got != "low" {
		t.Errorf("Confidence = %q, want low", got)
	}
}

func TestLevelRecord_DataRoundTrip(t *testing.T) {
	level := DeriveLevel(Place(1.0, itembank.SubjectReading), 9, 4)
	restored := LevelFromData(level.Data())
	if restored == nil || *restored != level {
		t.Errorf("round trip mismatch: %+v vs %+v", restored, level)
	}
	if LevelFromData(nil) != nil {
		t.Error("LevelFromData(nil) should be nil")
	}
}
