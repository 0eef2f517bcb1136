package server

import (
	"net/http"

	"github.com/jrsteele09/dept-console/routegate"
	"github.com/rs/zerolog/log"
)

// RequireSession gates protected views. While the startup resume is still
// running the waiting page is shown instead of the view.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			s.applyDecision(w, r, s.gate.Protected(s.session.Snapshot().Gate()), next)
		}
	}
}

// RequireNoSession gates the credential-entry view: signed in visitors are sent
// to the default view.
func (s *Server) RequireNoSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			s.applyDecision(w, r, s.gate.CredentialEntry(s.session.Snapshot().Gate()), next)
		}
	}
}

func (s *Server) applyDecision(w http.ResponseWriter, r *http.Request, d routegate.Decision, next http.HandlerFunc) {
	if s.env == "DEV" && d.Action != routegate.Render {
		log.Debug().Msgf("[%s] %s %s", colourAction(d.Action), r.URL.Path, d.Location)
	}
	switch d.Action {
	case routegate.Wait:
		s.renderWaiting(w, r)
	case routegate.Redirect:
		redirectSuccess(w, r, d.Location)
	default:
		next(w, r)
	}
}
