package itembank

// Subject identifies a content area with its own item bank.
type Subject string

const (
	SubjectMath          Subject = "math"
	SubjectReading       Subject = "reading"
	SubjectScience       Subject = "science"
	SubjectSocialStudies Subject = "social-studies"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectMath,
		SubjectReading,
		SubjectScience,
		SubjectSocialStudies,
	}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectReading:
		return "Reading"
	case SubjectScience:
		return "Science"
	case SubjectSocialStudies:
		return "Social Studies"
	default:
		return string(s)
	}
}

// ItemType is the variant tag for a diagnostic item.
// Each variant carries its own required fields, checked at load time.
type ItemType string

const (
	TypeMCQ     ItemType = "mcq"     // Multiple choice, requires >= 2 choices
	TypeCount   ItemType = "count"   // Count-the-objects, numeric answer
	TypePhoneme ItemType = "phoneme" // Sound identification, requires choices
	TypeMap     ItemType = "map"     // Region identification, requires choices
)

// Item is a single diagnostic question sourced from the item bank.
// Items are immutable; the id is unique within a subject's bank.
type Item struct {
	ID            string   `json:"id"`
	Subject       Subject  `json:"subject"`
	Skill         string   `json:"skill"`
	Difficulty    float64  `json:"difficulty"` // Calibrated to [-2, 2]
	Type          ItemType `json:"type"`
	Prompt        string   `json:"prompt"`
	Choices       []string `json:"choices,omitempty"`
	CorrectAnswer string   `json:"answer"`
}

// Provider supplies the item bank for a subject.
type Provider interface {
	// LoadItemBank returns the validated items for a subject.
	// Malformed records are dropped, never returned as errors.
	LoadItemBank(subject Subject) ([]Item, error)
}
