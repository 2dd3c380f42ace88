package server

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/matzehuels/hexrail/pkg/buildinfo"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("index").Parse(pageHTML))

type pageData struct {
	OriginX, OriginY float64
	Version          string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		OriginX: s.cfg.Canvas.Width / 2,
		OriginY: s.cfg.Canvas.Height / 2,
		Version: buildinfo.Version,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Warn("render page", "error", err)
	}
}
