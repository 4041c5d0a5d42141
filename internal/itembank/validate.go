package itembank

import (
	"math"
	"strconv"
	"strings"
)

// ValidItem reports whether a raw bank record is usable for the requested
// subject. Records that fail are dropped at the boundary rather than
// propagated as errors, so one bad record never poisons a bank load.
func ValidItem(item *Item, subject Subject) bool {
	if item == nil {
		return false
	}
	if strings.TrimSpace(item.ID) == "" {
		return false
	}
	if item.Subject != subject {
		return false
	}
	if math.IsNaN(item.Difficulty) || math.IsInf(item.Difficulty, 0) {
		return false
	}
	if item.Difficulty < -2 || item.Difficulty > 2 {
		return false
	}
	if strings.TrimSpace(item.Prompt) == "" {
		return false
	}
	if strings.TrimSpace(item.CorrectAnswer) == "" {
		return false
	}
	return validVariant(item)
}

// validVariant checks the per-variant required fields.
func validVariant(item *Item) bool {
	switch item.Type {
	case TypeMCQ, TypePhoneme, TypeMap:
		if len(item.Choices) < 2 {
			return false
		}
		return containsChoice(item.Choices, item.CorrectAnswer)
	case TypeCount:
		_, err := strconv.Atoi(strings.TrimSpace(item.CorrectAnswer))
		return err == nil
	default:
		return false
	}
}

func containsChoice(choices []string, answer string) bool {
	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(answer)) {
			return true
		}
	}
	return false
}

// CheckAnswer compares a learner response against the item's answer.
// Responses are normalized (trimmed, case-folded) so that input quirks
// never surface as incorrect scores.
func CheckAnswer(item *Item, response string) bool {
	got := strings.ToLower(strings.TrimSpace(response))
	want := strings.ToLower(strings.TrimSpace(item.CorrectAnswer))
	if got == want {
		return true
	}
	// Count items accept numerically equal answers ("07" == "7").
	if item.Type == TypeCount {
		g, errG := strconv.Atoi(got)
		w, errW := strconv.Atoi(want)
		return errG == nil && errW == nil && g == w
	}
	// MCQ-style items accept a 1-based choice index as a response.
	if len(item.Choices) > 0 {
		if idx, err := strconv.Atoi(got); err == nil && idx >= 1 && idx <= len(item.Choices) {
			return strings.EqualFold(strings.TrimSpace(item.Choices[idx-1]), want)
		}
	}
	return false
}
