// Package remotetest provides an in-memory Gateway fake for tests: an
// authoritative backend in miniature, with per-call failure injection for
// exercising fallback and rollback paths.
package remotetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Compile-time interface check: Fake must implement Gateway.
var _ types.Gateway = (*Fake)(nil)

// Fake is a Gateway backed by in-memory slices. Zero value is usable.
// Failure injection: set the Err fields to fail whole operations, or the
// FailCreate*At fields to fail the N-th create call (1-based).
type Fake struct {
	mu sync.Mutex

	// Remote state, readable after the fact by tests.
	TaskRecords   []*types.Task
	CourseRecords []*types.Course
	Registered    []string

	// Server-side guest rows reported by MigrateGuestSession.
	MigrateCounts types.MigrationCounts

	// Failure injection.
	RegisterErr        error
	TasksErr           error
	CoursesErr         error
	MigrateErr         error
	FailCreateTaskAt   int
	FailCreateCourseAt int

	// Call counters.
	TasksCalls        int
	CoursesCalls      int
	CreateTaskCalls   int
	CreateCourseCalls int
	MigrateCalls      int

	nextID int
}

// New returns an empty fake backend.
func New() *Fake {
	return &Fake{}
}

func (f *Fake) assignID(kind string) string {
	f.nextID++
	return fmt.Sprintf("remote-%s-%d", kind, f.nextID)
}

// RegisterGuestSession records the announced session ID.
func (f *Fake) RegisterGuestSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.Registered = append(f.Registered, sessionID)
	return nil
}

// MigrateGuestSession reports the configured server-side counts.
func (f *Fake) MigrateGuestSession(_ context.Context, sessionID, userID string) (types.MigrationCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.MigrateCalls++
	if f.MigrateErr != nil {
		return types.MigrationCounts{}, f.MigrateErr
	}
	return f.MigrateCounts, nil
}

// Tasks returns the remote task list.
func (f *Fake) Tasks(_ context.Context) ([]*types.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.TasksCalls++
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	out := make([]*types.Task, len(f.TaskRecords))
	copy(out, f.TaskRecords)
	return out, nil
}

// Courses returns the remote course list.
func (f *Fake) Courses(_ context.Context) ([]*types.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CoursesCalls++
	if f.CoursesErr != nil {
		return nil, f.CoursesErr
	}
	out := make([]*types.Course, len(f.CourseRecords))
	copy(out, f.CourseRecords)
	return out, nil
}

// CreateTask stores a copy with a server-assigned identity.
func (f *Fake) CreateTask(_ context.Context, task *types.Task) (*types.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CreateTaskCalls++
	if f.FailCreateTaskAt > 0 && f.CreateTaskCalls == f.FailCreateTaskAt {
		return nil, types.ErrRemoteUnavailable
	}

	stored := *task
	stored.ID = f.assignID("task")
	f.TaskRecords = append(f.TaskRecords, &stored)

	out := stored
	return &out, nil
}

// CreateCourse stores a copy with a server-assigned identity.
func (f *Fake) CreateCourse(_ context.Context, course *types.Course) (*types.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CreateCourseCalls++
	if f.FailCreateCourseAt > 0 && f.CreateCourseCalls == f.FailCreateCourseAt {
		return nil, types.ErrRemoteUnavailable
	}

	stored := *course
	stored.ID = f.assignID("course")
	f.CourseRecords = append(f.CourseRecords, &stored)

	out := stored
	return &out, nil
}

// CompleteTask marks a stored task completed.
func (f *Fake) CompleteTask(_ context.Context, taskID string) (*types.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, task := range f.TaskRecords {
		if task.ID == taskID {
			task.Complete()
			out := *task
			return &out, nil
		}
	}
	return nil, types.ErrNotFound
}
