package resolver

import (
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// DueSoonWindowDays is the dashboard's look-ahead horizon.
const DueSoonWindowDays = 7

// Stats summarizes a task list for the dashboard.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	DueSoon   int `json:"due_soon"`
}

// ComputeStats counts a task list against a reference time. A task counts
// completed only with an explicit completed status; everything else is
// pending. Due-soon means pending with a due timestamp inside [now,
// now+7d], bounds inclusive; the window is calendar-accurate across DST
// changes. Overdue tasks and tasks without a due timestamp stay plain
// pending.
func ComputeStats(tasks []*types.Task, now time.Time) Stats {
	horizon := now.AddDate(0, 0, DueSoonWindowDays)

	var s Stats
	for _, task := range tasks {
		s.Total++
		if task.Status == types.StatusCompleted {
			s.Completed++
			continue
		}
		s.Pending++
		if task.DueDate.IsZero() {
			continue
		}
		if !task.DueDate.Before(now) && !task.DueDate.After(horizon) {
			s.DueSoon++
		}
	}
	return s
}
