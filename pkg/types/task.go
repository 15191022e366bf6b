package types

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Task types. Incoming labels are normalized to these values.
const (
	TaskAssignment TaskType = "Assignment"
	TaskExam       TaskType = "Exam"
	TaskQuiz       TaskType = "Quiz"
	TaskProject    TaskType = "Project"
	TaskReading    TaskType = "Reading"
	TaskLab        TaskType = "Lab"
)

// Task statuses.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task validation errors.
var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidTaskType = errors.New("invalid task type")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidGrade    = errors.New("grade percentage out of range")
	ErrInvalidHours    = errors.New("predicted hours must not be negative")
	ErrInvalidDueDate  = errors.New("unparsable due timestamp")
)

// TaskType is the closed enumeration of academic task kinds.
type TaskType string

// Status is the completion state of a task.
type Status string

// validTaskTypes is the set of recognized task type values.
var validTaskTypes = map[TaskType]bool{
	TaskAssignment: true,
	TaskExam:       true,
	TaskQuiz:       true,
	TaskProject:    true,
	TaskReading:    true,
	TaskLab:        true,
}

// taskTypeAliases maps lower-cased incoming labels to canonical types.
// Midterms and finals classify as exams; tests classify as quizzes.
var taskTypeAliases = map[string]TaskType{
	"assignment":  TaskAssignment,
	"assignments": TaskAssignment,
	"exam":        TaskExam,
	"exams":       TaskExam,
	"midterm":     TaskExam,
	"final":       TaskExam,
	"quiz":        TaskQuiz,
	"quizzes":     TaskQuiz,
	"test":        TaskQuiz,
	"project":     TaskProject,
	"projects":    TaskProject,
	"reading":     TaskReading,
	"readings":    TaskReading,
	"lab":         TaskLab,
	"labs":        TaskLab,
}

// NormalizeTaskType maps a raw label to a canonical TaskType.
// Unknown labels default to Assignment.
func NormalizeTaskType(raw string) TaskType {
	if t, ok := taskTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t
	}
	return TaskAssignment
}

// Valid reports whether the task type is one of the canonical values.
func (t TaskType) Valid() bool {
	return validTaskTypes[t]
}

// NormalizeStatus maps a raw status label to a canonical Status.
// Anything other than "completed" counts as pending.
func NormalizeStatus(raw string) Status {
	if strings.EqualFold(strings.TrimSpace(raw), string(StatusCompleted)) {
		return StatusCompleted
	}
	return StatusPending
}

// Valid reports whether the status is one of the canonical values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents an academic work item: an assignment, exam, quiz, project,
// reading, or lab. A task lives either in the device-local guest store or in
// the remote account store; its Owner tag must match the store holding it.
type Task struct {
	// ID is unique within a store. Locally created tasks carry a UUID v7;
	// the remote store assigns its own identities.
	ID string `json:"id"`

	// Title is required.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Type is the canonical task kind.
	Type TaskType `json:"task_type"`

	// DueDate is the normalized due timestamp. The zero value means the
	// stored timestamp was absent or unparsable; such a task counts as
	// pending but is never due-soon.
	DueDate time.Time `json:"-"`

	// GradePercentage is the grade weight in the range 0-100.
	GradePercentage float64 `json:"grade_percentage"`

	// PredictedHours is the estimated effort, non-negative.
	PredictedHours float64 `json:"predicted_hours"`

	// Status is pending or completed.
	Status Status `json:"status"`

	// Owner ties the record to the store that holds it.
	Owner Owner `json:"owner"`

	// CourseID references the owning course; empty means none.
	CourseID string `json:"course_id,omitempty"`

	// WeightScore and PriorityScore are deterministic heuristics computed
	// at creation; see the scoring package.
	WeightScore   float64 `json:"weight_score"`
	PriorityScore float64 `json:"priority_score"`

	// Extra carries pass-through metadata from the extraction pipeline.
	Extra map[string]any `json:"extra_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Complete marks the task completed. Idempotent.
func (t *Task) Complete() {
	t.Status = StatusCompleted
	t.UpdatedAt = time.Now()
}

// Validate checks the writable fields of a task.
// Returns a sentinel error from this package on the first violation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrInvalidTitle
	}
	if !t.Type.Valid() {
		return ErrInvalidTaskType
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if t.GradePercentage < 0 || t.GradePercentage > 100 {
		return ErrInvalidGrade
	}
	if t.PredictedHours < 0 {
		return ErrInvalidHours
	}
	if !t.Owner.Valid() {
		return ErrInvalidOwner
	}
	return nil
}

// taskAlias strips Task's methods so the JSON helpers below can reuse the
// field tags without recursing.
type taskAlias Task

// MarshalJSON emits the wire form with due_date as an RFC 3339 string
// (empty when the due timestamp is unset).
func (t Task) MarshalJSON() ([]byte, error) {
	var due string
	if !t.DueDate.IsZero() {
		due = t.DueDate.Format(time.RFC3339)
	}
	return json.Marshal(struct {
		taskAlias
		DueDate string `json:"due_date"`
	}{taskAlias(t), due})
}

// UnmarshalJSON parses the wire form. An absent or unparsable due_date is
// tolerated and leaves a zero DueDate; every other malformed field fails
// the whole record.
func (t *Task) UnmarshalJSON(data []byte) error {
	aux := struct {
		*taskAlias
		DueDate string `json:"due_date"`
	}{taskAlias: (*taskAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.DueDate, _ = ParseDueTimestamp(aux.DueDate)
	return nil
}

// Layouts accepted by ParseDueTimestamp, tried in order. Layouts without a
// zone are interpreted in local time.
var dueLayouts = []struct {
	layout   string
	hasZone  bool
	dateOnly bool
}{
	{layout: time.RFC3339Nano, hasZone: true},
	{layout: "2006-01-02T15:04:05", hasZone: false},
	{layout: "2006-01-02 15:04:05", hasZone: false},
	{layout: "2006-01-02", hasZone: false, dateOnly: true},
}

// ParseDueTimestamp normalizes a raw due string to a concrete timestamp.
// Date-only input gets an explicit time-of-day of 23:59:00 local. The empty
// string yields a zero time with no error; any other unparsable input yields
// a zero time and ErrInvalidDueDate.
func ParseDueTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, l := range dueLayouts {
		var (
			ts  time.Time
			err error
		)
		if l.hasZone {
			ts, err = time.Parse(l.layout, raw)
		} else {
			ts, err = time.ParseInLocation(l.layout, raw, time.Local)
		}
		if err != nil {
			continue
		}
		if l.dateOnly {
			ts = time.Date(ts.Year(), ts.Month(), ts.Day(), 23, 59, 0, 0, time.Local)
		}
		return ts, nil
	}
	return time.Time{}, ErrInvalidDueDate
}
