package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCode(t *testing.T) {
	tests := []struct {
		name   string
		course string
		want   string
	}{
		{name: "letters and digits kept", course: "CS 101", want: "CS101"},
		{name: "lower case raised", course: "intro to go", want: "INTROTOGO"},
		{name: "punctuation dropped", course: "Math: Linear Algebra!", want: "MATHLINEAR"},
		{name: "truncated to ten", course: "Introduction to Computer Science", want: "INTRODUCTI"},
		{name: "empty falls back", course: "", want: CodeFallback},
		{name: "only punctuation falls back", course: "---  !!", want: CodeFallback},
		{name: "digits only", course: "101", want: "101"},
		{name: "shared prefix is expected", course: "Calculus II", want: "CALCULUSII"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveCode(tt.course))
		})
	}
}

func TestDeriveCodeNotUnique(t *testing.T) {
	// Collisions are allowed: the code is a display hint, not an identity.
	assert.Equal(t, DeriveCode("Calculus I extended"), DeriveCode("CALCULUSIE"))
}

func TestCourseValidate(t *testing.T) {
	tests := []struct {
		name    string
		course  Course
		wantErr error
	}{
		{
			name:   "valid course",
			course: Course{ID: "c1", Name: "Biology", Code: "BIOLOGY", Owner: Guest()},
		},
		{
			name:    "empty name",
			course:  Course{ID: "c1", Code: "X", Owner: Guest()},
			wantErr: ErrInvalidCourseName,
		},
		{
			name:    "whitespace name",
			course:  Course{ID: "c1", Name: "  ", Owner: Guest()},
			wantErr: ErrInvalidCourseName,
		},
		{
			name:    "zero owner",
			course:  Course{ID: "c1", Name: "Biology"},
			wantErr: ErrInvalidOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCourseJSONRoundTrip(t *testing.T) {
	want := Course{
		ID:          "c-3",
		Name:        "Data Structures",
		Code:        "DATASTRUCT",
		Description: "Second year core",
		Owner:       Registered("acct-1"),
		CreatedAt:   time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(want)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "Data Structures", wire["name"])
	assert.Equal(t, "DATASTRUCT", wire["code"])
	assert.Equal(t, "acct-1", wire["owner"])

	var got Course
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Owner, got.Owner)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
}
