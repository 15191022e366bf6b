// Package localstore implements the device-local entity store used in guest
// mode: task and course records serialized as JSON into a flat KeyValue
// namespace, plus an explicit per-course task index maintained alongside
// task writes. Scans filter by owner tag, never by key naming, and tolerate
// malformed records by skipping them.
package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Store persists tasks and courses on the device. All compound sequences
// (scan, put-with-index, predicate delete) run under one store-level mutex
// so concurrent callers never observe a torn view of record plus index.
type Store struct {
	mu  sync.Mutex
	kv  types.KeyValue
	log *slog.Logger
}

// New wraps a KeyValue backend. A nil logger falls back to slog.Default.
func New(kv types.KeyValue, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, log: log}
}

// newUUID generates a UUID v7 for entity IDs, falling back to v4 if v7
// generation fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// PutTask validates and persists a task record, then adds the task to its
// course's index if it references one and is not already listed. A task
// with an empty ID is assigned a fresh UUID and creation timestamps; the
// argument is updated in place.
func (s *Store) PutTask(task *types.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if task.ID == "" {
		task.ID = newUUID()
		task.CreatedAt = now
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	if err := task.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("serializing task %s: %w", task.ID, err)
	}
	if err := s.kv.Set(types.TaskKey(task.ID), string(data)); err != nil {
		return fmt.Errorf("writing task %s: %w", task.ID, err)
	}

	if task.CourseID != "" {
		if err := s.indexAdd(task.CourseID, task.ID); err != nil {
			return err
		}
	}
	return nil
}

// Task retrieves one task by ID. Returns ErrNotFound for an absent record
// and ErrMalformedRecord for one that fails to parse.
func (s *Store) Task(id string) (*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskLocked(id)
}

func (s *Store) taskLocked(id string) (*types.Task, error) {
	raw, ok, err := s.kv.Get(types.TaskKey(id))
	if err != nil {
		return nil, fmt.Errorf("reading task %s: %w", id, err)
	}
	if !ok {
		return nil, types.ErrNotFound
	}
	var task types.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, fmt.Errorf("task %s: %w: %v", id, types.ErrMalformedRecord, err)
	}
	return &task, nil
}

// GuestTasks returns every guest-owned task in insertion order. Records
// that fail to parse or carry a non-guest owner are skipped; parse failures
// are logged at debug level and never propagate.
func (s *Store) GuestTasks() ([]*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}

	var tasks []*types.Task
	for _, key := range keys {
		id, ok := types.TaskIDFromKey(key)
		if !ok {
			continue
		}
		task, err := s.taskLocked(id)
		if err != nil {
			s.log.Debug("skipping unreadable task record", "key", key, "error", err)
			continue
		}
		if !task.Owner.IsGuest() {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// DeleteTask removes a task record and drops its ID from its course index.
// Returns ErrNotFound if no record exists. When the record itself is
// unreadable the key is still deleted; the course index entry goes stale
// and reads filter it out.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.taskLocked(id)
	if err == types.ErrNotFound {
		return types.ErrNotFound
	}

	if err := s.kv.Delete(types.TaskKey(id)); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	if task != nil && task.CourseID != "" {
		if err := s.indexRemove(task.CourseID, id); err != nil {
			return err
		}
	}
	return nil
}

// PutCourse validates and persists a course record. A course with an empty
// ID is assigned a fresh UUID, a derived code when none is set, and
// creation timestamps; the argument is updated in place.
func (s *Store) PutCourse(course *types.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if course.ID == "" {
		course.ID = newUUID()
		course.CreatedAt = now
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now
	if course.Code == "" {
		course.Code = types.DeriveCode(course.Name)
	}

	if err := course.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("serializing course %s: %w", course.ID, err)
	}
	if err := s.kv.Set(types.CourseKey(course.ID), string(data)); err != nil {
		return fmt.Errorf("writing course %s: %w", course.ID, err)
	}
	return nil
}

// Course retrieves one course by ID. Returns ErrNotFound for an absent
// record and ErrMalformedRecord for one that fails to parse.
func (s *Store) Course(id string) (*types.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courseLocked(id)
}

func (s *Store) courseLocked(id string) (*types.Course, error) {
	raw, ok, err := s.kv.Get(types.CourseKey(id))
	if err != nil {
		return nil, fmt.Errorf("reading course %s: %w", id, err)
	}
	if !ok {
		return nil, types.ErrNotFound
	}
	var course types.Course
	if err := json.Unmarshal([]byte(raw), &course); err != nil {
		return nil, fmt.Errorf("course %s: %w: %v", id, types.ErrMalformedRecord, err)
	}
	return &course, nil
}

// GuestCourses returns every guest-owned course in insertion order, with
// the same skip-and-log policy as GuestTasks.
func (s *Store) GuestCourses() ([]*types.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("scanning courses: %w", err)
	}

	var courses []*types.Course
	for _, key := range keys {
		id, ok := types.CourseIDFromKey(key)
		if !ok {
			continue
		}
		course, err := s.courseLocked(id)
		if err != nil {
			s.log.Debug("skipping unreadable course record", "key", key, "error", err)
			continue
		}
		if !course.Owner.IsGuest() {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// TasksForCourse returns the course's tasks in index order. Stale index
// entries (IDs whose record is gone, unreadable, or no longer references
// the course) are filtered out, never an error.
func (s *Store) TasksForCourse(courseID string) ([]*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.indexRead(courseID)
	if err != nil {
		return nil, err
	}

	var tasks []*types.Task
	for _, id := range ids {
		task, err := s.taskLocked(id)
		if err != nil {
			s.log.Debug("filtering stale index entry", "course_id", courseID, "task_id", id, "error", err)
			continue
		}
		if task.CourseID != courseID {
			s.log.Debug("filtering reassigned index entry", "course_id", courseID, "task_id", id)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// SetCourseTaskIndex overwrites a course's ordered task index wholesale.
// PutTask and DeleteTask maintain the index incrementally; this exists for
// repair and import flows.
func (s *Store) SetCourseTaskIndex(courseID string, taskIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexWrite(courseID, taskIDs)
}

// DeleteWhere removes every key matching pred and reports how many went.
func (s *Store) DeleteWhere(pred func(key string) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return 0, fmt.Errorf("scanning keys: %w", err)
	}

	deleted := 0
	for _, key := range keys {
		if !pred(key) {
			continue
		}
		if err := s.kv.Delete(key); err != nil {
			return deleted, fmt.Errorf("deleting key %q: %w", key, err)
		}
		deleted++
	}
	return deleted, nil
}

// PurgeGuestData removes the whole guest namespace: task records, course
// records, course indexes, and the session token key. Foreign keys, the
// auth collaborator's among them, are never touched.
func (s *Store) PurgeGuestData() (int, error) {
	return s.DeleteWhere(types.IsGuestDataKey)
}

// SnapshotKeys returns all keys matching any of the given prefixes, in
// insertion order. With no prefixes it returns every key. Used by cleanup
// verification and tests.
func (s *Store) SnapshotKeys(prefixes ...string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("scanning keys: %w", err)
	}
	if len(prefixes) == 0 {
		return keys, nil
	}

	var matched []string
	for _, key := range keys {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				matched = append(matched, key)
				break
			}
		}
	}
	return matched, nil
}
