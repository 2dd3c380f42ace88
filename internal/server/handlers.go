package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matzehuels/hexrail/pkg/buildinfo"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/render/sink"
	"github.com/matzehuels/hexrail/pkg/editor"
	"github.com/matzehuels/hexrail/pkg/errors"
	"github.com/matzehuels/hexrail/pkg/observability"
	"github.com/matzehuels/hexrail/pkg/session"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"
	formatPNG  = "png"
)

var contentTypes = map[string]string{
	formatSVG:  "image/svg+xml",
	formatJSON: "application/json",
	formatPNG:  "image/png",
}

type pointerRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type eventResponse struct {
	Redraw    bool            `json:"redraw"`
	Highlight *hittest.Target `json:"highlight"`
	Count     int             `json:"count"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func decodePointer(r *http.Request) (float64, float64, error) {
	var req pointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode pointer")
	}
	if req.X == nil || req.Y == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "pointer needs x and y")
	}
	if err := errors.ValidatePoint(*req.X, *req.Y); err != nil {
		return 0, 0, err
	}
	return *req.X, *req.Y, nil
}

func response(m editor.Model, redraw bool) eventResponse {
	resp := eventResponse{Redraw: redraw, Count: m.Count()}
	if hl := m.Highlight(); hl.Active {
		t := hl.Target
		resp.Highlight = &t
	}
	return resp
}

// eventName labels ev for the editor hooks.
func eventName(ev editor.Event) string {
	switch ev.(type) {
	case editor.PointerMove:
		return "move"
	case editor.PointerLeave:
		return "leave"
	case editor.Click:
		return "click"
	default:
		return "unknown"
	}
}

// dispatch applies ev to the caller's session and answers with the result.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev editor.Event) {
	start := time.Now()
	var resp eventResponse
	err := s.store.Update(r.Context(), sessionID(r), func(sess *session.Session) error {
		var redraw bool
		sess.Model, redraw = editor.Reduce(sess.Model, ev)
		resp = response(sess.Model, redraw)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	observability.Editor().OnEvent(r.Context(), eventName(ev), resp.Redraw, time.Since(start))
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	x, y, err := decodePointer(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dispatch(w, r, editor.PointerMove{X: x, Y: y})
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, editor.PointerLeave{})
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	x, y, err := decodePointer(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.dispatch(w, r, editor.Click{X: x, Y: y})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	g, err := s.newGrid()
	if err != nil {
		s.writeError(w, err)
		return
	}
	var resp eventResponse
	err = s.store.Update(r.Context(), sessionID(r), func(sess *session.Session) error {
		sess.Model = editor.New(g)
		resp = response(sess.Model, true)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("board reset", "session", sessionID(r))
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.current(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, response(sess.Model, false))
}

// sceneHandler draws the caller's board and answers in format.
func (s *Server) sceneHandler(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.current(r)
		if err != nil {
			s.writeError(w, err)
			return
		}

		start := time.Now()
		sc := editor.Render(sess.Model, s.cfg.BoardOptions()...)
		var data []byte
		switch format {
		case formatSVG:
			data = sink.RenderSVG(sc, sink.WithID("board"))
		case formatJSON:
			data, err = sink.RenderJSON(sc)
		case formatPNG:
			data, err = sink.RenderPNG(sc, sink.WithScale(s.cfg.Render.Scale))
		default:
			err = errors.New(errors.ErrCodeUnsupported, "format %s", format)
		}
		observability.Render().OnRender(r.Context(), format, len(data), time.Since(start), err)
		if err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
			}
			s.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	for k, v := range buildinfo.Fields() {
		resp[k] = v
	}
	if st, ok := observability.Editor().(interface{ Snapshot() map[string]int64 }); ok {
		resp["stats"] = st.Snapshot()
	}
	s.writeJSON(w, http.StatusOK, resp)
}
