package itembank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMCQ() Item {
	return Item{
		ID:            "m1",
		Subject:       SubjectMath,
		Skill:         "addition",
		Difficulty:    0.5,
		Type:          TypeMCQ,
		Prompt:        "What is 3 + 4?",
		Choices:       []string{"6", "7", "8"},
		CorrectAnswer: "7",
	}
}

func TestValidItem(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Item)
		want   bool
	}{
		{"valid mcq", func(*Item) {}, true},
		{"blank id", func(i *Item) { i.ID = "  " }, false},
		{"subject mismatch", func(i *Item) { i.Subject = SubjectReading }, false},
		{"difficulty NaN", func(i *Item) { i.Difficulty = math.NaN() }, false},
		{"difficulty above range", func(i *Item) { i.Difficulty = 2.1 }, false},
		{"difficulty below range", func(i *Item) { i.Difficulty = -2.1 }, false},
		{"difficulty at edge", func(i *Item) { i.Difficulty = 2.0 }, true},
		{"empty prompt", func(i *Item) { i.Prompt = "" }, false},
		{"empty answer", func(i *Item) { i.CorrectAnswer = "" }, false},
		{"unknown type", func(i *Item) { i.Type = "essay" }, false},
		{"mcq one choice", func(i *Item) { i.Choices = []string{"7"} }, false},
		{"mcq answer not a choice", func(i *Item) { i.CorrectAnswer = "9" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validMCQ()
			tt.mutate(&item)
			assert.Equal(t, tt.want, ValidItem(&item, SubjectMath))
		})
	}
}

func TestValidItem_CountVariant(t *testing.T) {
	item := Item{
		ID: "c1", Subject: SubjectMath, Skill: "counting",
		Difficulty: -1, Type: TypeCount, Prompt: "How many apples?",
		CorrectAnswer: "4",
	}
	assert.True(t, ValidItem(&item, SubjectMath))

	item.CorrectAnswer = "four"
	assert.False(t, ValidItem(&item, SubjectMath), "count answers must be integers")
}

func TestValidItem_Nil(t *testing.T) {
	assert.False(t, ValidItem(nil, SubjectMath))
}

func TestCheckAnswer_Normalization(t *testing.T) {
	item := validMCQ()
	assert.True(t, CheckAnswer(&item, "7"))
	assert.True(t, CheckAnswer(&item, "  7  "))
	assert.False(t, CheckAnswer(&item, "8"))

	phoneme := Item{
		ID: "p1", Subject: SubjectReading, Skill: "phonics",
		Difficulty: 0, Type: TypePhoneme, Prompt: "First sound in 'ship'?",
		Choices: []string{"SH", "S", "CH"}, CorrectAnswer: "sh",
	}
	assert.True(t, CheckAnswer(&phoneme, "Sh"), "case should not matter")
}

func TestCheckAnswer_ChoiceIndex(t *testing.T) {
	item := validMCQ() // choices 6, 7, 8; answer 7
	assert.True(t, CheckAnswer(&item, "2"), "1-based index of the right choice")
	assert.False(t, CheckAnswer(&item, "1"))
	assert.False(t, CheckAnswer(&item, "4"), "index out of range")
}

func TestCheckAnswer_CountNumericEquality(t *testing.T) {
	item := Item{
		ID: "c1", Subject: SubjectMath, Skill: "counting",
		Difficulty: -1, Type: TypeCount, Prompt: "?", CorrectAnswer: "7",
	}
	assert.True(t, CheckAnswer(&item, "07"))
	assert.True(t, CheckAnswer(&item, " 7 "))
	assert.False(t, CheckAnswer(&item, "seven"))
}
