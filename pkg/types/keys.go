package types

import "strings"

// Well-known store keys. The auth keys belong to the sign-in flow; the
// persistence core reads them to answer "is this device authenticated" but
// never writes or deletes them.
const (
	KeyGuestSession = "guest_session_id"
	KeyAccessToken  = "access_token"
	KeyUserEmail    = "user_email"
	KeyUserID       = "user_id"
)

// Entity key prefixes. Task and course records serialize to JSON under
// prefixed keys; each course additionally owns an index key listing its
// task IDs in insertion order.
const (
	TaskKeyPrefix        = "task_"
	CourseKeyPrefix      = "course_"
	CourseTasksKeySuffix = "_tasks"
)

// TaskKey returns the store key for a task record.
func TaskKey(id string) string {
	return TaskKeyPrefix + id
}

// CourseKey returns the store key for a course record.
func CourseKey(id string) string {
	return CourseKeyPrefix + id
}

// CourseTasksKey returns the store key for a course's ordered task index.
func CourseTasksKey(id string) string {
	return CourseKeyPrefix + id + CourseTasksKeySuffix
}

// TaskIDFromKey extracts the task ID from a task record key.
func TaskIDFromKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, TaskKeyPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// CourseIDFromKey extracts the course ID from a course record key. Index
// keys (CourseTasksKey) are not course record keys and report false.
// Entity IDs are UUIDs, so an ID can never itself end in the index suffix.
func CourseIDFromKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, CourseKeyPrefix)
	if !ok || id == "" || strings.HasSuffix(id, CourseTasksKeySuffix) {
		return "", false
	}
	return id, true
}

// CourseIDFromTasksKey extracts the course ID from an index key.
func CourseIDFromTasksKey(key string) (string, bool) {
	id, ok := strings.CutPrefix(key, CourseKeyPrefix)
	if !ok || !strings.HasSuffix(id, CourseTasksKeySuffix) {
		return "", false
	}
	id = strings.TrimSuffix(id, CourseTasksKeySuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// IsGuestDataKey reports whether a key belongs to the guest namespace:
// the session token, task records, course records, and course indexes.
// Logout cleanup removes exactly these keys and nothing else.
func IsGuestDataKey(key string) bool {
	return key == KeyGuestSession ||
		strings.HasPrefix(key, TaskKeyPrefix) ||
		strings.HasPrefix(key, CourseKeyPrefix)
}

// IsAuthKey reports whether a key belongs to the sign-in collaborator.
func IsAuthKey(key string) bool {
	return key == KeyAccessToken || key == KeyUserEmail || key == KeyUserID
}
