package catalog

// LessonMeta is the display metadata for a lesson. The catalog is a
// read-only lookup used to decorate plan items.
type LessonMeta struct {
	LessonID   string   `json:"lesson_id"`
	Title      string   `json:"title"`
	Minutes    int      `json:"minutes"`
	Standards  []string `json:"standards"`
	Difficulty float64  `json:"difficulty"`
	Skills     []string `json:"skills"`
}

// Fallback defaults for lessons absent from the catalog.
const DefaultMinutes = 10

// Find returns the metadata for a lesson, or nil if unknown.
func Find(lessonID string) *LessonMeta {
	if m, ok := lessons[lessonID]; ok {
		return &m
	}
	return nil
}

// FindOrDefault returns the metadata for a lesson, substituting
// documented defaults (10 minutes, no standards) when it is unknown.
// Absence is never an error.
func FindOrDefault(lessonID string) LessonMeta {
	if m := Find(lessonID); m != nil {
		return *m
	}
	return LessonMeta{
		LessonID:  lessonID,
		Title:     lessonID,
		Minutes:   DefaultMinutes,
		Standards: []string{},
	}
}

// UnitLessons returns the ordered lesson ids for a subject unit, or nil
// if the unit has no authored lessons yet.
func UnitLessons(subject, unit string) []string {
	return units[subject+"/"+unit]
}
