// Package migrate moves a guest's local tasks and courses into the remote
// backend exactly once, on login. The coordinator drains the local store,
// replays every entity through the gateway under the new account identity,
// sweeps any server-resident rows tied to the guest session, and only then
// purges local state. A failure at any point leaves the local copy intact
// so the next login can retry from scratch.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/localstore"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/session"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// State names the coordinator's position in the migration lifecycle.
type State string

// Lifecycle states. Failed is reachable from Draining and Committing;
// a Failed or Cleared coordinator accepts a fresh Run.
const (
	StateIdle       State = "idle"
	StateDraining   State = "draining"
	StateCommitting State = "committing"
	StateCleared    State = "cleared"
	StateFailed     State = "failed"
)

// Errors returned by Run.
var (
	// ErrMigrationInProgress rejects a Run while another is still draining
	// or committing. Concurrent runs would duplicate remote entities.
	ErrMigrationInProgress = errors.New("migration already in progress")

	// ErrMigrationFailed wraps any drain or commit failure. Local guest
	// data is untouched when Run returns it.
	ErrMigrationFailed = errors.New("migration failed")
)

// Result reports what a completed migration moved. Local counts cover
// entities replayed from the device store; server counts cover rows the
// backend already held for the guest session and reassigned in place.
type Result struct {
	MigratedTasks   int `json:"migrated_tasks"`
	MigratedCourses int `json:"migrated_courses"`
	ServerTasks     int `json:"server_tasks"`
	ServerCourses   int `json:"server_courses"`
}

// Coordinator owns the local-to-remote migration state machine.
type Coordinator struct {
	mu    sync.Mutex
	state State

	local   *localstore.Store
	session *session.Manager
	gateway types.Gateway
	log     *slog.Logger
}

// NewCoordinator returns an idle coordinator. A nil logger falls back to
// slog.Default().
func NewCoordinator(local *localstore.Store, sess *session.Manager, gateway types.Gateway, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{
		state:   StateIdle,
		local:   local,
		session: sess,
		gateway: gateway,
		log:     log,
	}
}

// State reports the current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// begin claims the state machine for a new run, rejecting overlap with
// ErrMigrationInProgress.
func (c *Coordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateDraining, StateCommitting:
		return ErrMigrationInProgress
	}
	c.state = StateDraining
	return nil
}

// Run migrates everything the current guest owns to the account identified
// by accountID. With no guest token, or nothing stored locally, it settles
// back to Idle and reports a zero Result with no error. On failure it
// returns a zero Result wrapped in ErrMigrationFailed and leaves every
// local key exactly as it was. On success local guest data, the session
// token included, is purged.
func (c *Coordinator) Run(ctx context.Context, accountID string) (Result, error) {
	if err := c.begin(); err != nil {
		return Result{}, err
	}

	token, ok := c.session.Current()
	if !ok {
		c.setState(StateIdle)
		return Result{}, nil
	}

	tasks, err := c.local.GuestTasks()
	if err != nil {
		return c.fail("draining local tasks", err)
	}
	courses, err := c.local.GuestCourses()
	if err != nil {
		return c.fail("draining local courses", err)
	}
	if len(tasks) == 0 && len(courses) == 0 {
		c.setState(StateIdle)
		return Result{}, nil
	}

	c.setState(StateCommitting)

	// Courses go first so task references can be remapped to the identities
	// the remote assigns.
	courseIDs := make(map[string]string, len(courses))
	for _, course := range courses {
		out := *course
		out.ID = ""
		out.Owner = types.Registered(accountID)

		created, err := c.gateway.CreateCourse(ctx, &out)
		if err != nil {
			return c.fail(fmt.Sprintf("creating remote course %q", course.Name), err)
		}
		courseIDs[course.ID] = created.ID
	}

	for _, task := range tasks {
		out := *task
		out.ID = ""
		out.Owner = types.Registered(accountID)
		// References to courses that were never stored locally cannot be
		// remapped and are dropped rather than sent dangling.
		out.CourseID = courseIDs[task.CourseID]

		if _, err := c.gateway.CreateTask(ctx, &out); err != nil {
			return c.fail(fmt.Sprintf("creating remote task %q", task.Title), err)
		}
	}

	// Sweep rows the backend accumulated under the guest session itself.
	// An unknown session means nothing to sweep, not a failure.
	var server types.MigrationCounts
	switch counts, err := c.gateway.MigrateGuestSession(ctx, token, accountID); {
	case err == nil:
		server = counts
	case errors.Is(err, types.ErrNotFound):
	default:
		return c.fail("migrating server-side session data", err)
	}

	purged, err := c.local.PurgeGuestData()
	if err != nil {
		// Remote writes have landed; only local cleanup is incomplete.
		// Surface it loudly instead of reporting a clean migration.
		c.setState(StateFailed)
		return Result{}, fmt.Errorf("%w: purging migrated local data: %w", ErrMigrationFailed, err)
	}

	c.setState(StateCleared)
	c.log.Info("migration complete",
		"account", accountID,
		"tasks", len(tasks),
		"courses", len(courses),
		"server_tasks", server.Tasks,
		"server_courses", server.Courses,
		"purged_keys", purged)

	return Result{
		MigratedTasks:   len(tasks),
		MigratedCourses: len(courses),
		ServerTasks:     server.Tasks,
		ServerCourses:   server.Courses,
	}, nil
}

// fail records the failed state and wraps the cause in ErrMigrationFailed.
func (c *Coordinator) fail(stage string, err error) (Result, error) {
	c.setState(StateFailed)
	c.log.Warn("migration failed, local data preserved", "stage", stage, "error", err)
	return Result{}, fmt.Errorf("%w: %s: %w", ErrMigrationFailed, stage, err)
}
