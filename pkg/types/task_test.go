package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TaskType
	}{
		{name: "exact match", raw: "assignment", want: TaskAssignment},
		{name: "plural", raw: "assignments", want: TaskAssignment},
		{name: "mixed case", raw: "EXAM", want: TaskExam},
		{name: "midterm classifies as exam", raw: "midterm", want: TaskExam},
		{name: "final classifies as exam", raw: "Final", want: TaskExam},
		{name: "test classifies as quiz", raw: "test", want: TaskQuiz},
		{name: "quiz plural", raw: "quizzes", want: TaskQuiz},
		{name: "project", raw: "project", want: TaskProject},
		{name: "reading plural", raw: "readings", want: TaskReading},
		{name: "lab", raw: "Lab", want: TaskLab},
		{name: "surrounding whitespace", raw: "  exam  ", want: TaskExam},
		{name: "unknown defaults to assignment", raw: "homework", want: TaskAssignment},
		{name: "empty defaults to assignment", raw: "", want: TaskAssignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTaskType(tt.raw))
		})
	}
}

func TestTaskTypeValid(t *testing.T) {
	for _, valid := range []TaskType{TaskAssignment, TaskExam, TaskQuiz, TaskProject, TaskReading, TaskLab} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, TaskType("homework").Valid())
	assert.False(t, TaskType("").Valid())
	assert.False(t, TaskType("assignment").Valid(), "canonical values are capitalized")
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, NormalizeStatus("completed"))
	assert.Equal(t, StatusCompleted, NormalizeStatus(" Completed "))
	assert.Equal(t, StatusPending, NormalizeStatus("pending"))
	assert.Equal(t, StatusPending, NormalizeStatus("in_progress"))
	assert.Equal(t, StatusPending, NormalizeStatus(""))
}

func TestParseDueTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr error
	}{
		{
			name: "rfc3339 with zone",
			raw:  "2026-03-15T10:30:00Z",
			want: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 fractional seconds",
			raw:  "2026-03-15T10:30:00.250Z",
			want: time.Date(2026, 3, 15, 10, 30, 0, 250000000, time.UTC),
		},
		{
			name: "naive timestamp is local",
			raw:  "2026-03-15T10:30:00",
			want: time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local),
		},
		{
			name: "space separated timestamp",
			raw:  "2026-03-15 10:30:00",
			want: time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local),
		},
		{
			name: "date only defaults to end of day",
			raw:  "2026-03-15",
			want: time.Date(2026, 3, 15, 23, 59, 0, 0, time.Local),
		},
		{
			name: "empty yields zero without error",
			raw:  "",
		},
		{
			name: "whitespace yields zero without error",
			raw:  "   ",
		},
		{
			name:    "garbage rejected",
			raw:     "next tuesday",
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "partial date rejected",
			raw:     "2026-03",
			wantErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueTimestamp(tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero(), "failed parse must yield zero time")
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestTaskValidate(t *testing.T) {
	base := func() *Task {
		return &Task{
			ID:              "t1",
			Title:           "Problem set 3",
			Type:            TaskAssignment,
			Status:          StatusPending,
			GradePercentage: 15,
			PredictedHours:  4,
			Owner:           Guest(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{
			name:   "valid task",
			mutate: func(*Task) {},
		},
		{
			name:    "empty title",
			mutate:  func(task *Task) { task.Title = "" },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "whitespace title",
			mutate:  func(task *Task) { task.Title = "   " },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "unknown type",
			mutate:  func(task *Task) { task.Type = "Homework" },
			wantErr: ErrInvalidTaskType,
		},
		{
			name:    "unknown status",
			mutate:  func(task *Task) { task.Status = "archived" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "grade above range",
			mutate:  func(task *Task) { task.GradePercentage = 101 },
			wantErr: ErrInvalidGrade,
		},
		{
			name:    "negative grade",
			mutate:  func(task *Task) { task.GradePercentage = -1 },
			wantErr: ErrInvalidGrade,
		},
		{
			name:    "negative hours",
			mutate:  func(task *Task) { task.PredictedHours = -0.5 },
			wantErr: ErrInvalidHours,
		},
		{
			name:    "zero owner",
			mutate:  func(task *Task) { task.Owner = Owner{} },
			wantErr: ErrInvalidOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := base()
			tt.mutate(task)

			err := task.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskComplete(t *testing.T) {
	task := &Task{
		ID:        "t1",
		Title:     "Reading week 5",
		Status:    StatusPending,
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	before := task.UpdatedAt

	task.Complete()
	assert.Equal(t, StatusCompleted, task.Status)
	assert.True(t, task.UpdatedAt.After(before), "UpdatedAt should advance")

	task.Complete()
	assert.Equal(t, StatusCompleted, task.Status, "completing twice stays completed")
}

func TestTaskJSONRoundTrip(t *testing.T) {
	due := time.Date(2026, 4, 2, 23, 59, 0, 0, time.UTC)
	want := &Task{
		ID:              "t-77",
		Title:           "Lab report 2",
		Description:     "Spectroscopy writeup",
		Type:            TaskLab,
		DueDate:         due,
		GradePercentage: 10,
		PredictedHours:  3.5,
		Status:          StatusPending,
		Owner:           Guest(),
		CourseID:        "c-12",
		WeightScore:     0.62,
		PriorityScore:   0.48,
		Extra:           map[string]any{"source_page": float64(4)},
		CreatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(want)
	assert.NoError(t, err)

	var got Task
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.Owner, got.Owner)
	assert.Equal(t, want.Extra, got.Extra)
	assert.True(t, got.DueDate.Equal(due), "due date must survive the round trip")
}

func TestTaskJSONWireNames(t *testing.T) {
	task := &Task{
		ID:      "t-1",
		Title:   "Essay draft",
		Type:    TaskAssignment,
		DueDate: time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC),
		Status:  StatusPending,
		Owner:   Guest(),
	}

	data, err := json.Marshal(task)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, "Assignment", wire["task_type"])
	assert.Equal(t, "2026-05-01T23:59:00Z", wire["due_date"])
	assert.Equal(t, "guest", wire["owner"])
	assert.Contains(t, wire, "grade_percentage")
	assert.Contains(t, wire, "predicted_hours")
	assert.NotContains(t, wire, "DueDate", "Go field names must not leak to the wire")
}

func TestTaskUnmarshalToleratesBadDueDate(t *testing.T) {
	raw := `{"id":"t-9","title":"Quiz prep","task_type":"Quiz","due_date":"whenever","status":"pending","owner":"guest"}`

	var task Task
	assert.NoError(t, json.Unmarshal([]byte(raw), &task), "bad due_date must not fail the record")
	assert.True(t, task.DueDate.IsZero())
	assert.Equal(t, "Quiz prep", task.Title)
}

func TestTaskUnmarshalMissingDueDate(t *testing.T) {
	raw := `{"id":"t-10","title":"Untimed","task_type":"Assignment","status":"pending","owner":"guest"}`

	var task Task
	assert.NoError(t, json.Unmarshal([]byte(raw), &task))
	assert.True(t, task.DueDate.IsZero())
}
