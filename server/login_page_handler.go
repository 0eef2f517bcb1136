package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName  string
	Error    string
	Notice   string
	Username string // Preserve username on error
}

// LoginPageUIHandler displays the login page (GET /login)
func (s *Server) LoginPageUIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderTemplate(w, http.StatusOK, loginTemplate, LoginPageData{
			AppName:  s.config.GetAppName(),
			Error:    r.URL.Query().Get("error"),
			Notice:   r.URL.Query().Get("notice"),
			Username: r.URL.Query().Get("username"),
		})
	}
}

// LoginSubmissionHandler processes the login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		res := s.session.Establish(r.Context(), username, password)
		if !res.Success {
			s.renderTemplate(w, statusFor(res.Err), loginTemplate, LoginPageData{
				AppName:  s.config.GetAppName(),
				Error:    res.Message,
				Username: username,
			})
			return
		}

		redirectSuccess(w, r, RouteDashboard)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := s.session.User(); user != nil {
			log.Info().Str("username", user.Username).Msg("Logout")
		}
		s.session.Terminate()
		redirectWithMessage(w, r, RouteLogin, "notice", "You have been signed out")
	}
}
