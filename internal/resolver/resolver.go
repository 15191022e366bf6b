// Package resolver answers "whose list is authoritative right now". An
// authenticated device with a reachable, non-empty remote store reads
// remote; everything else reads the device-local guest store. Remote
// trouble degrades to local with a warning, never a hard error.
package resolver

import (
	"context"
	"log/slog"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Source names the store a list came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// AuthState is the single routing question. session.Manager satisfies it.
type AuthState interface {
	IsAuthenticated() bool
}

// LocalLister is the read side of the local store the resolver needs.
type LocalLister interface {
	GuestTasks() ([]*types.Task, error)
	GuestCourses() ([]*types.Course, error)
}

// Resolver picks between the remote and local stores per read.
type Resolver struct {
	auth    AuthState
	local   LocalLister
	gateway types.Gateway
	log     *slog.Logger
}

// New wires a Resolver. A nil logger falls back to slog.Default.
func New(auth AuthState, local LocalLister, gateway types.Gateway, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{auth: auth, local: local, gateway: gateway, log: log}
}

// Tasks returns the authoritative task list and where it came from. The
// remote list is returned verbatim when the device is authenticated, the
// call succeeds, and the list is non-empty; an empty remote list falls
// back to local so a fresh account still sees its pre-signup guest data.
func (r *Resolver) Tasks(ctx context.Context) ([]*types.Task, Source) {
	if r.auth.IsAuthenticated() {
		tasks, err := r.gateway.Tasks(ctx)
		switch {
		case err != nil:
			r.log.Warn("remote task list unavailable, serving local", "error", err)
		case len(tasks) > 0:
			return tasks, SourceRemote
		default:
			r.log.Debug("remote task list empty, serving local")
		}
	}

	tasks, err := r.local.GuestTasks()
	if err != nil {
		r.log.Warn("local task scan failed", "error", err)
		return nil, SourceLocal
	}
	return tasks, SourceLocal
}

// Courses mirrors Tasks for course lists.
func (r *Resolver) Courses(ctx context.Context) ([]*types.Course, Source) {
	if r.auth.IsAuthenticated() {
		courses, err := r.gateway.Courses(ctx)
		switch {
		case err != nil:
			r.log.Warn("remote course list unavailable, serving local", "error", err)
		case len(courses) > 0:
			return courses, SourceRemote
		default:
			r.log.Debug("remote course list empty, serving local")
		}
	}

	courses, err := r.local.GuestCourses()
	if err != nil {
		r.log.Warn("local course scan failed", "error", err)
		return nil, SourceLocal
	}
	return courses, SourceLocal
}
