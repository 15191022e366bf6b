package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Course task indexes are JSON string arrays stored under CourseTasksKey.
// The helpers below assume the store mutex is held.

// indexRead returns the ordered task IDs for a course. An absent index is
// an empty list; a malformed one is logged and treated as empty rather than
// failing the read.
func (s *Store) indexRead(courseID string) ([]string, error) {
	raw, ok, err := s.kv.Get(types.CourseTasksKey(courseID))
	if err != nil {
		return nil, fmt.Errorf("reading index for course %s: %w", courseID, err)
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Debug("resetting malformed course index", "course_id", courseID, "error", err)
		return nil, nil
	}
	return ids, nil
}

// indexWrite replaces the ordered task IDs for a course.
func (s *Store) indexWrite(courseID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("serializing index for course %s: %w", courseID, err)
	}
	if err := s.kv.Set(types.CourseTasksKey(courseID), string(data)); err != nil {
		return fmt.Errorf("writing index for course %s: %w", courseID, err)
	}
	return nil
}

// indexAdd appends a task ID to a course index if not already present.
func (s *Store) indexAdd(courseID, taskID string) error {
	ids, err := s.indexRead(courseID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == taskID {
			return nil
		}
	}
	return s.indexWrite(courseID, append(ids, taskID))
}

// indexRemove drops a task ID from a course index if present.
func (s *Store) indexRemove(courseID, taskID string) error {
	ids, err := s.indexRead(courseID)
	if err != nil {
		return err
	}
	for i, id := range ids {
		if id == taskID {
			return s.indexWrite(courseID, append(ids[:i], ids[i+1:]...))
		}
	}
	return nil
}
