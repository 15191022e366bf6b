package types

import (
	"context"
	"errors"
)

// Gateway is the call contract against the authoritative backend. The
// persistence core never deletes remote entities; the backend owns their
// lifecycle. The HTTP implementation lives in internal/remote; tests
// substitute fakes.
type Gateway interface {
	// RegisterGuestSession announces a freshly minted guest token to the
	// backend so server-side guest endpoints can accept it. Best-effort
	// from the caller's perspective: the token is valid locally either way.
	RegisterGuestSession(ctx context.Context, sessionID string) error

	// MigrateGuestSession asks the backend to adopt its own guest-session
	// rows into the given account and returns how many it moved. Returns
	// ErrNotFound when the backend never saw this session.
	MigrateGuestSession(ctx context.Context, sessionID, userID string) (MigrationCounts, error)

	// Tasks lists the authenticated account's tasks.
	Tasks(ctx context.Context) ([]*Task, error)

	// Courses lists the authenticated account's courses.
	Courses(ctx context.Context) ([]*Course, error)

	// CreateTask stores a task remotely and returns the record as the
	// backend persisted it, including its server-assigned identity.
	CreateTask(ctx context.Context, task *Task) (*Task, error)

	// CreateCourse stores a course remotely and returns the record as the
	// backend persisted it, including its server-assigned identity.
	CreateCourse(ctx context.Context, course *Course) (*Course, error)

	// CompleteTask marks a remote task completed and returns the updated
	// record. Returns ErrNotFound for an unknown task ID.
	CompleteTask(ctx context.Context, taskID string) (*Task, error)
}

// MigrationCounts reports how many rows a server-side migration moved.
type MigrationCounts struct {
	Tasks   int `json:"migrated_tasks"`
	Courses int `json:"migrated_courses"`
}

// Gateway error kinds. Implementations wrap these so callers can branch on
// the kind with errors.Is while keeping the transport detail in the message.
// A missing remote entity (HTTP 404) maps to the shared ErrNotFound.
var (
	// ErrUnauthorized covers rejected credentials (HTTP 401/403).
	ErrUnauthorized = errors.New("remote rejected credentials")

	// ErrRemoteUnavailable covers transport failures and server faults
	// (network errors, HTTP 5xx). Callers treat it as "try local".
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)
