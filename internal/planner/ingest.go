package planner

import (
	"context"
	"strings"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// ExtractedTask is one row from the document-extraction collaborator:
// a syllabus line item with a split date/time pair and the instructor's
// emphasis words. Field names match the collaborator's JSON contract.
type ExtractedTask struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	TaskType        string   `json:"task_type"`
	DueDate         string   `json:"due_date"`
	DueTime         string   `json:"due_time"`
	GradePercentage float64  `json:"grade_percentage"`
	Keywords        []string `json:"instructor_keywords"`
	Notes           string   `json:"notes"`
	PredictedHours  float64  `json:"predicted_hours"`
}

// IngestExtractedTasks stores a batch of extracted tasks against a course.
// Rows without a title or a usable due date are dropped, and rows the
// store rejects are skipped with a warning; the whole batch fails with
// ErrNoTasksExtracted only when nothing could be stored.
func (s *Service) IngestExtractedTasks(ctx context.Context, courseID string, extracted []ExtractedTask) ([]*types.Task, error) {
	stored := make([]*types.Task, 0, len(extracted))
	for _, raw := range extracted {
		task, ok := s.buildExtracted(courseID, raw)
		if !ok {
			continue
		}
		created, err := s.createTask(ctx, task)
		if err != nil {
			s.log.Warn("skipping extracted task", "title", raw.Title, "error", err)
			continue
		}
		stored = append(stored, created)
	}
	if len(stored) == 0 {
		return nil, ErrNoTasksExtracted
	}
	return stored, nil
}

// buildExtracted normalizes one extracted row into a scored pending task.
// Reports false for rows that cannot become a task.
func (s *Service) buildExtracted(courseID string, raw ExtractedTask) (*types.Task, bool) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return nil, false
	}
	due, err := types.ParseDueTimestamp(dueTimestamp(raw))
	if err != nil || due.IsZero() {
		s.log.Debug("extracted task has no usable due date", "title", title, "due_date", raw.DueDate)
		return nil, false
	}

	task := &types.Task{
		Title:           title,
		Description:     raw.Description,
		Type:            types.NormalizeTaskType(raw.TaskType),
		DueDate:         due,
		CourseID:        courseID,
		GradePercentage: raw.GradePercentage,
		PredictedHours:  raw.PredictedHours,
		Status:          types.StatusPending,
	}
	if task.PredictedHours == 0 {
		task.PredictedHours = DefaultPredictedHours
	}
	if raw.Notes != "" || len(raw.Keywords) > 0 {
		task.Extra = map[string]any{}
		if raw.Notes != "" {
			task.Extra["notes"] = raw.Notes
		}
		if len(raw.Keywords) > 0 {
			task.Extra["instructor_keywords"] = raw.Keywords
		}
	}
	s.score(task, raw.Keywords)
	return task, true
}

// dueTimestamp folds the collaborator's split date and time fields into one
// parseable stamp. A bare date keeps the end-of-day default downstream.
func dueTimestamp(raw ExtractedTask) string {
	date := strings.TrimSpace(raw.DueDate)
	clock := strings.TrimSpace(raw.DueTime)
	if date == "" || clock == "" {
		return date
	}
	if strings.Count(clock, ":") == 1 {
		clock += ":00"
	}
	return date + "T" + clock
}
