package mcptools

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/calscroll/internal/session"
)

// ErrUnknownSession is returned when a tool names a session that was never
// opened or has been closed.
var ErrUnknownSession = errors.New("unknown calendar session")

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// calendarSession serialises the events of one session.
type calendarSession struct {
	mu   sync.Mutex
	sess *session.Session
}

// Registry holds the calendar sessions opened over MCP. Tool calls may arrive
// concurrently; calls against one session are applied one at a time.
type Registry struct {
	mu       sync.Mutex
	base     session.Options
	sessions map[string]*calendarSession
}

// NewRegistry creates a registry whose sessions start from base.
func NewRegistry(base session.Options) *Registry {
	return &Registry{
		base:     base,
		sessions: make(map[string]*calendarSession),
	}
}

// Base returns the options new sessions start from.
func (r *Registry) Base() session.Options { return r.base }

// Open creates a session and returns its id.
func (r *Registry) Open(opts session.Options) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &calendarSession{sess: session.New(opts)}
	return id, nil
}

// With runs fn against the session while holding its lock.
func (r *Registry) With(id string, fn func(*session.Session) error) error {
	r.mu.Lock()
	cs, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSession, id)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	return fn(cs.sess)
}

// Mount starts the loading sequence of a session. Each phase advances on a
// timer under the session lock; closing the session drops the pending step.
func (r *Registry) Mount(id string) error {
	return r.With(id, func(s *session.Session) error {
		r.schedule(id, s.OnMounted())
		return nil
	})
}

func (r *Registry) schedule(id string, step session.LoadStep) {
	time.AfterFunc(step.Delay, func() {
		_ = r.With(id, func(s *session.Session) error {
			if next, ok := s.AdvanceLoad(step.Gen); ok {
				r.schedule(id, next)
			}
			return nil
		})
	})
}

// Close removes a session.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	cs, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSession, id)
	}

	cs.mu.Lock()
	cs.sess.Teardown()
	cs.mu.Unlock()
	return nil
}

// IDs returns the open session ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
