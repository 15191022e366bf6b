package remote

import (
	"encoding/json"
	"fmt"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// The backend's task and course rows carry a user_id column instead of an
// owner tag. The decoders below hydrate wire records into domain entities
// and derive the Registered owner from user_id when the record has no
// owner of its own. Remote records are by definition account-owned.

func decodeTask(raw json.RawMessage) (*types.Task, error) {
	var task types.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, fmt.Errorf("decoding task record: %w", err)
	}
	if !task.Owner.Valid() {
		task.Owner = types.Registered(wireUserID(raw))
	}
	return &task, nil
}

func decodeTasks(raws []json.RawMessage) ([]*types.Task, error) {
	tasks := make([]*types.Task, 0, len(raws))
	for _, raw := range raws {
		task, err := decodeTask(raw)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func decodeCourse(raw json.RawMessage) (*types.Course, error) {
	var course types.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, fmt.Errorf("decoding course record: %w", err)
	}
	if !course.Owner.Valid() {
		course.Owner = types.Registered(wireUserID(raw))
	}
	return &course, nil
}

func decodeCourses(raws []json.RawMessage) ([]*types.Course, error) {
	courses := make([]*types.Course, 0, len(raws))
	for _, raw := range raws {
		course, err := decodeCourse(raw)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func wireUserID(raw json.RawMessage) string {
	var aux struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return ""
	}
	return aux.UserID
}
