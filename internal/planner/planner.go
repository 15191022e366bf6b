// Package planner is the application facade: one Service wiring the local
// store, guest session, remote gateway, source resolution, and migration
// behind the operations the UI layer calls. Every read and write routes by
// auth state: authenticated traffic goes to the backend and guest traffic
// stays on the device, so callers never pick a store themselves.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/localstore"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/migrate"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/resolver"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/session"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Errors returned by Service operations.
var (
	// ErrNotAuthenticated rejects operations that need a signed-in account.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoTasksExtracted reports an ingestion batch where no row could be
	// normalized and stored.
	ErrNoTasksExtracted = errors.New("no tasks could be extracted")
)

// Config carries the Service dependencies. Gateway and KV are required.
// A nil Logger falls back to slog.Default(), a nil Clock to time.Now.
type Config struct {
	Gateway types.Gateway
	KV      types.KeyValue
	Logger  *slog.Logger
	Clock   func() time.Time
}

// Service exposes the planner operations over one pair of stores.
type Service struct {
	kv      types.KeyValue
	gateway types.Gateway
	store   *localstore.Store
	session *session.Manager
	resolve *resolver.Resolver
	coord   *migrate.Coordinator
	log     *slog.Logger
	now     func() time.Time
}

// New wires a Service from its dependencies.
func New(cfg Config) (*Service, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if cfg.KV == nil {
		return nil, errors.New("key-value store is required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	store := localstore.New(cfg.KV, log)
	sess := session.NewManager(cfg.KV, cfg.Gateway, log)
	return &Service{
		kv:      cfg.KV,
		gateway: cfg.Gateway,
		store:   store,
		session: sess,
		resolve: resolver.New(sess, store, cfg.Gateway, log),
		coord:   migrate.NewCoordinator(store, sess, cfg.Gateway, log),
		log:     log,
		now:     now,
	}, nil
}

// Session exposes the session manager for callers that present auth state.
func (s *Service) Session() *session.Manager {
	return s.session
}

// MigrationState reports where the login migration currently stands.
func (s *Service) MigrationState() migrate.State {
	return s.coord.State()
}

// Tasks returns the authoritative task list and which store served it.
func (s *Service) Tasks(ctx context.Context) ([]*types.Task, resolver.Source) {
	return s.resolve.Tasks(ctx)
}

// Courses returns the authoritative course list and which store served it.
func (s *Service) Courses(ctx context.Context) ([]*types.Course, resolver.Source) {
	return s.resolve.Courses(ctx)
}

// Stats summarizes the authoritative task list at the service clock.
func (s *Service) Stats(ctx context.Context) resolver.Stats {
	tasks, _ := s.resolve.Tasks(ctx)
	return resolver.ComputeStats(tasks, s.now())
}

// MigrateOnLogin drains local guest data into the signed-in account.
// Returns ErrNotAuthenticated when no credentials are stored.
func (s *Service) MigrateOnLogin(ctx context.Context) (migrate.Result, error) {
	creds, ok := s.session.Credentials()
	if !ok || creds.UserID == "" {
		return migrate.Result{}, ErrNotAuthenticated
	}
	return s.coord.Run(ctx, creds.UserID)
}

// Logout removes every guest-scoped key and reports how many were deleted.
// Foreign auth keys belong to the sign-in collaborator and are left alone.
func (s *Service) Logout() (int, error) {
	removed, err := s.store.PurgeGuestData()
	if err != nil {
		return removed, fmt.Errorf("purging guest data: %w", err)
	}
	s.log.Info("guest data cleared", "removed_keys", removed)
	return removed, nil
}
