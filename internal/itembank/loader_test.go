package itembank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mathBankJSON = `{
  "subject": "math",
  "items": [
    {"id": "m1", "subject": "math", "skill": "addition", "difficulty": 0.0, "type": "mcq", "prompt": "3 + 4?", "choices": ["6", "7"], "answer": "7"},
    {"id": "m2", "subject": "math", "skill": "counting", "difficulty": -1.5, "type": "count", "prompt": "How many?", "answer": "4"},
    {"id": "m1", "subject": "math", "skill": "addition", "difficulty": 0.2, "type": "mcq", "prompt": "duplicate id", "choices": ["1", "2"], "answer": "2"},
    {"id": "m3", "subject": "math", "skill": "fractions", "difficulty": 5.0, "type": "mcq", "prompt": "out of range", "choices": ["a", "b"], "answer": "a"},
    {"id": "m4", "subject": "reading", "skill": "phonics", "difficulty": 0.0, "type": "mcq", "prompt": "wrong subject", "choices": ["a", "b"], "answer": "a"}
  ]
}`

func TestParseBank_DropsBadRecords(t *testing.T) {
	items, err := ParseBank([]byte(mathBankJSON), SubjectMath)
	require.NoError(t, err)

	// m1 survives once, m2 survives; the duplicate, the out-of-range
	// difficulty and the wrong-subject record are dropped.
	require.Len(t, items, 2)
	assert.Equal(t, "m1", items[0].ID)
	assert.Equal(t, "3 + 4?", items[0].Prompt)
	assert.Equal(t, "m2", items[1].ID)
}

func TestParseBank_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseBank([]byte(`{"subject": "math",`), SubjectMath)
	assert.Error(t, err)
}

func TestParseBank_RejectsSchemaViolations(t *testing.T) {
	// Missing required item fields fails the whole file, unlike semantic
	// per-record checks.
	bad := `{"subject": "math", "items": [{"id": "m1"}]}`
	_, err := ParseBank([]byte(bad), SubjectMath)
	assert.Error(t, err)

	unknown := `{"subject": "math", "items": [], "extra": true}`
	_, err = ParseBank([]byte(unknown), SubjectMath)
	assert.Error(t, err)
}

func TestParseBank_RejectsSubjectMismatch(t *testing.T) {
	_, err := ParseBank([]byte(mathBankJSON), SubjectReading)
	assert.Error(t, err)
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "math.json")
	require.NoError(t, os.WriteFile(path, []byte(mathBankJSON), 0o644))

	p := &FileProvider{Paths: map[Subject]string{SubjectMath: path}}

	items, err := p.LoadItemBank(SubjectMath)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = p.LoadItemBank(SubjectReading)
	assert.Error(t, err, "unconfigured subject")

	p.Paths[SubjectScience] = filepath.Join(dir, "missing.json")
	_, err = p.LoadItemBank(SubjectScience)
	assert.Error(t, err, "unreadable file")
}

func TestSeedProvider_AllSubjects(t *testing.T) {
	var p SeedProvider
	for _, subject := range AllSubjects() {
		items, err := p.LoadItemBank(subject)
		require.NoError(t, err, subject)
		assert.NotEmpty(t, items, subject)

		skills := make(map[string]bool)
		for _, item := range items {
			assert.True(t, ValidItem(&item, subject), "seed item %s", item.ID)
			skills[item.Skill] = true
		}
		// The default blueprint requires three distinct skills before a
		// session may stop; the seed banks must be able to satisfy it.
		assert.GreaterOrEqual(t, len(skills), 3, "seed bank for %s too narrow", subject)
	}
}
