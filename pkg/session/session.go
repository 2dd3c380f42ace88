// Package session keeps editor state for clients of the HTTP editor.
//
// Each browser gets a [Session] holding its current [editor.Model]. Sessions
// expire after a TTL of inactivity and live only in memory; nothing is
// written to disk.
//
// # Usage
//
//	store := session.NewMemoryStore(session.DefaultTTL)
//
//	sess, err := session.New(grid.Default(), store.TTL())
//	if err != nil {
//	    return err
//	}
//	store.Set(ctx, sess)
//
//	// Apply an event atomically
//	err = store.Update(ctx, sess.ID, func(s *session.Session) error {
//	    s.Model, redraw = editor.Reduce(s.Model, ev)
//	    return nil
//	})
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/editor"
	"github.com/matzehuels/hexrail/pkg/errors"
)

// Session stores one client's editor state.
type Session struct {
	ID        string       `json:"id"`
	Model     editor.Model `json:"-"`
	ExpiresAt time.Time    `json:"expires_at"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsExpired returns true if the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns a SESSION_NOT_FOUND error if it is missing or expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, s *Session) error

	// Update runs fn on the stored session while holding it exclusively,
	// and extends its lifetime if fn succeeds.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions and reports how many were dropped.
	Cleanup(ctx context.Context) (int, error)
}

// DefaultTTL is the default session lifetime.
const DefaultTTL = 30 * time.Minute

// GenerateID returns a random session ID.
func GenerateID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an ID from [GenerateID].
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// New creates a session editing g.
func New(g *grid.Grid, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "session ttl must be positive, got %s", ttl)
	}
	now := time.Now()
	return &Session{
		ID:        GenerateID(),
		Model:     editor.New(g),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id)
}
