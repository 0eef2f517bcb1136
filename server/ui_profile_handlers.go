package server

import (
	"net/http"
	"time"

	"github.com/jrsteele09/dept-console/internal/utils"
	"github.com/jrsteele09/dept-console/session"
	"github.com/jrsteele09/dept-console/users"
	"github.com/rs/zerolog/log"
)

const (
	msgPasswordsDoNotMatch = "passwords do not match"
	msgNothingToUpdate     = "nothing to update"
)

type ProfilePageData struct {
	User      *users.User
	ExpiresAt string

	ProfileNotice string
	ProfileError  string

	PasswordNotice string
	PasswordError  string
}

func (s *Server) profileData(r *http.Request) ProfilePageData {
	data := ProfilePageData{
		User:           s.session.User(),
		ProfileNotice:  r.URL.Query().Get("profile"),
		PasswordNotice: r.URL.Query().Get("password"),
	}
	if exp, ok := s.session.Expiry(); ok {
		data.ExpiresAt = exp.Local().Format(time.DateTime)
	}
	return data
}

func (s *Server) ProfileGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, http.StatusOK, "profile", "Profile", profileContent, s.profileData(r))
	}
}

// ProfilePostHandler submits the editable profile fields. Fields missing from
// the form are left out of the update.
func (s *Server) ProfilePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		update := users.ProfileUpdate{
			FullName: utils.FormField(r.PostForm, "full_name"),
			Email:    utils.FormField(r.PostForm, "email"),
			Phone:    utils.FormField(r.PostForm, "phone"),
		}
		if update.IsEmpty() {
			data := s.profileData(r)
			data.ProfileError = msgNothingToUpdate
			s.renderPage(w, http.StatusBadRequest, "profile", "Profile", profileContent, data)
			return
		}

		res, err := s.session.RefreshIdentity(r.Context(), update)
		if err != nil {
			s.sessionGone(w, r, "RefreshIdentity", err)
			return
		}
		if !res.Success {
			data := s.profileData(r)
			data.ProfileError = res.Message
			s.renderPage(w, statusFor(res.Err), "profile", "Profile", profileContent, data)
			return
		}

		redirectWithMessage(w, r, RouteProfile, "profile", res.Message)
	}
}

// ChangePasswordPostHandler processes change password form
func (s *Server) ChangePasswordPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		current := r.PostFormValue("current_password")
		next := r.PostFormValue("new_password")
		confirm := r.PostFormValue("confirm_password")

		if next != confirm {
			data := s.profileData(r)
			data.PasswordError = msgPasswordsDoNotMatch
			s.renderPage(w, http.StatusBadRequest, "profile", "Profile", profileContent, data)
			return
		}

		res, err := s.session.ChangeCredential(r.Context(), current, next)
		if err != nil {
			s.sessionGone(w, r, "ChangeCredential", err)
			return
		}
		if !res.Success {
			data := s.profileData(r)
			data.PasswordError = res.Message
			s.renderPage(w, statusFor(res.Err), "profile", "Profile", profileContent, data)
			return
		}

		redirectWithMessage(w, r, RouteProfile, "password", res.Message)
	}
}

// sessionGone handles an authorized operation that found no token, as when a
// logout lands between the gate and the call. The visitor is sent to sign in.
func (s *Server) sessionGone(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Info().Err(err).Str("operation", op).Msg("Session ended before the operation ran")
	redirectSuccess(w, r, RouteLogin)
}

// SessionState is the JSON view of the session for scripts
type SessionState struct {
	Loading       bool        `json:"loading"`
	Authenticated bool        `json:"authenticated"`
	User          *users.User `json:"user,omitempty"`
	ExpiresAt     *time.Time  `json:"expires_at,omitempty"`
}

func newSessionState(store *session.Store) SessionState {
	snap := store.Snapshot()
	state := SessionState{
		Loading:       snap.Loading,
		Authenticated: snap.Authenticated(),
		User:          snap.User,
	}
	if exp, ok := store.Expiry(); ok {
		state.ExpiresAt = &exp
	}
	return state
}
