package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/scoring"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// DefaultPredictedHours seeds the effort estimate when neither the caller
// nor the extraction collaborator provides one.
const DefaultPredictedHours = 4.0

// TaskInput is a manual task-creation request. TaskType is free-form and
// normalized before storage; Due accepts RFC 3339, "YYYY-MM-DD HH:MM:SS",
// or a bare date, which defaults to end of day.
type TaskInput struct {
	Title           string
	Description     string
	TaskType        string
	Due             string
	CourseID        string
	GradePercentage float64
	PredictedHours  float64
}

// AddTask normalizes, scores, and stores a manually entered task in the
// authoritative store for the current auth state.
func (s *Service) AddTask(ctx context.Context, in TaskInput) (*types.Task, error) {
	due, err := types.ParseDueTimestamp(in.Due)
	if err != nil {
		return nil, fmt.Errorf("parsing due date %q: %w", in.Due, err)
	}

	task := &types.Task{
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Type:            types.NormalizeTaskType(in.TaskType),
		DueDate:         due,
		CourseID:        in.CourseID,
		GradePercentage: in.GradePercentage,
		PredictedHours:  in.PredictedHours,
		Status:          types.StatusPending,
	}
	if task.PredictedHours == 0 {
		task.PredictedHours = DefaultPredictedHours
	}
	s.score(task, nil)

	return s.createTask(ctx, task)
}

// AddCourse stores a manually added course in the authoritative store.
func (s *Service) AddCourse(ctx context.Context, name, description string) (*types.Course, error) {
	course := &types.Course{
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	if !s.session.IsAuthenticated() {
		if _, err := s.session.GetOrCreate(ctx); err != nil {
			return nil, fmt.Errorf("ensuring guest session: %w", err)
		}
		course.Owner = types.Guest()
		if err := s.store.PutCourse(course); err != nil {
			return nil, fmt.Errorf("storing course: %w", err)
		}
		return course, nil
	}

	course.Owner = s.accountOwner()
	course.Code = types.DeriveCode(course.Name)
	if err := course.Validate(); err != nil {
		return nil, err
	}
	created, err := s.gateway.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("creating remote course: %w", err)
	}
	return created, nil
}

// CompleteTask marks a task done in whichever store owns it.
func (s *Service) CompleteTask(ctx context.Context, id string) (*types.Task, error) {
	if s.session.IsAuthenticated() {
		task, err := s.gateway.CompleteTask(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("completing remote task %s: %w", id, err)
		}
		return task, nil
	}

	task, err := s.store.Task(id)
	if err != nil {
		return nil, err
	}
	task.Complete()
	if err := s.store.PutTask(task); err != nil {
		return nil, fmt.Errorf("storing completed task: %w", err)
	}
	return task, nil
}

// score stamps the creation-time heuristics onto the record.
func (s *Service) score(task *types.Task, keywords []string) {
	task.WeightScore = scoring.WeightScore(task.Type, task.GradePercentage, keywords)
	task.PriorityScore = scoring.PriorityScore(task.WeightScore, task.DueDate, task.PredictedHours, s.now())
}

// createTask routes the write. Guest writes mint a session first so the
// record is never stored without an owning session token.
func (s *Service) createTask(ctx context.Context, task *types.Task) (*types.Task, error) {
	if s.session.IsAuthenticated() {
		task.Owner = s.accountOwner()
		created, err := s.gateway.CreateTask(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("creating remote task: %w", err)
		}
		return created, nil
	}

	if _, err := s.session.GetOrCreate(ctx); err != nil {
		return nil, fmt.Errorf("ensuring guest session: %w", err)
	}
	task.Owner = types.Guest()
	if err := s.store.PutTask(task); err != nil {
		return nil, fmt.Errorf("storing task: %w", err)
	}
	return task, nil
}

// accountOwner tags a record with the signed-in account identity.
func (s *Service) accountOwner() types.Owner {
	if creds, ok := s.session.Credentials(); ok && creds.UserID != "" {
		return types.Registered(creds.UserID)
	}
	return types.Registered("")
}
