package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExtractedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extracted.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadExtracted_BareArray(t *testing.T) {
	path := writeExtractedFile(t, `[
		{"title": "Essay 1", "task_type": "Assignment", "due_date": "2025-04-01"},
		{"title": "Lab 1", "task_type": "Lab", "due_date": "2025-04-03", "due_time": "14:30"}
	]`)

	rows, err := readExtracted(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Essay 1", rows[0].Title)
	assert.Equal(t, "14:30", rows[1].DueTime)
}

func TestReadExtracted_Envelope(t *testing.T) {
	path := writeExtractedFile(t, `{
		"tasks": [
			{"title": "Quiz 2", "task_type": "Quiz", "due_date": "2025-04-10",
			 "grade_percentage": 5, "instructor_keywords": ["required"]}
		]
	}`)

	rows, err := readExtracted(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Quiz 2", rows[0].Title)
	assert.Equal(t, 5.0, rows[0].GradePercentage)
	assert.Equal(t, []string{"required"}, rows[0].Keywords)
}

func TestReadExtracted_Malformed(t *testing.T) {
	path := writeExtractedFile(t, `{"tasks": "nope"`)

	_, err := readExtracted(path)
	assert.Error(t, err)
}

func TestReadExtracted_MissingFile(t *testing.T) {
	_, err := readExtracted(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
