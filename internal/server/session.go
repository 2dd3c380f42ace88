package server

import (
	"context"
	"net/http"

	"github.com/matzehuels/hexrail/pkg/errors"
	"github.com/matzehuels/hexrail/pkg/observability"
	"github.com/matzehuels/hexrail/pkg/session"
)

type sessionKey struct{}

// withSession resolves the session cookie, starting a new session when it is
// missing, malformed or expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if c, err := r.Cookie(cookieName); err == nil && session.ValidID(c.Value) {
			if _, err := s.store.Get(ctx, c.Value); err == nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey{}, c.Value)))
				return
			}
		}

		id, err := s.startSession(ctx)
		if err != nil {
			s.writeError(w, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		s.logger.Debug("session started", "id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey{}, id)))
	})
}

func (s *Server) startSession(ctx context.Context) (string, error) {
	g, err := s.newGrid()
	if err != nil {
		return "", err
	}
	sess, err := session.New(g, s.cfg.Server.SessionTTL)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, sess); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "store session")
	}
	observability.Session().OnSessionStart(ctx)
	return sess.ID, nil
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey{}).(string)
	return id
}

// current returns the caller's session.
func (s *Server) current(r *http.Request) (*session.Session, error) {
	return s.store.Get(r.Context(), sessionID(r))
}
