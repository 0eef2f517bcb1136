package fakeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/dept-console/api"
	"github.com/jrsteele09/dept-console/internal/utils"
	"github.com/jrsteele09/dept-console/users"
)

const (
	MsgCredentialsRequired = "username and password are required"
	MsgInvalidCredentials  = "invalid credentials"
	MsgAccountInactive     = "account is not active"
	MsgLoggedIn            = "logged in successfully"
	MsgTokenRequired       = "token is required"
	MsgTokenInvalid        = "token is invalid"
	MsgForbidden           = "you do not have permission to access this resource"
	MsgProfileUpdated      = "profile updated successfully"
	MsgPasswordsRequired   = "current and new password are required"
	MsgWrongPassword       = "current password is incorrect"
	MsgPasswordChanged     = "password changed successfully"
	MsgBadRequest          = "invalid request body"
)

type accountCtxKey struct{}

func accountFrom(ctx context.Context) *users.Account {
	account, _ := ctx.Value(accountCtxKey{}).(*users.Account)
	return account
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, MsgCredentialsRequired)
		return
	}

	account, err := s.accounts.GetByUsername(req.Username)
	if err != nil || !users.CheckPasswordHash(req.Password, account.PasswordHash) {
		writeMessage(w, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}
	if !account.User.IsActive {
		writeMessage(w, http.StatusUnauthorized, MsgAccountInactive)
		return
	}

	account.User.LastLogin = utils.NewTimestamp(time.Now().UTC())
	if err := s.accounts.Upsert(account); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	raw, err := s.issuer.Issue(account.User.ID, account.User.Username)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{
		Token:   raw,
		User:    &account.User,
		Message: MsgLoggedIn,
	})
}

// tokenRequired resolves the bearer token to an active account.
func (s *Server) tokenRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			writeMessage(w, http.StatusUnauthorized, MsgTokenRequired)
			return
		}
		if s.isRevoked(raw) {
			writeMessage(w, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}
		claims, err := s.issuer.Verify(raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}
		account, err := s.accounts.GetByID(claims.UserID)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}
		if !account.User.IsActive {
			writeMessage(w, http.StatusUnauthorized, MsgAccountInactive)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountCtxKey{}, account)))
	})
}

func (s *Server) permissionRequired(permission users.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := accountFrom(r.Context())
			if account == nil || !account.User.HasPermission(string(permission)) {
				writeMessage(w, http.StatusForbidden, MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	account := accountFrom(r.Context())
	writeJSON(w, http.StatusOK, api.ProfileResponse{User: &account.User})
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update users.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgBadRequest)
		return
	}

	account, err := s.accounts.UpdateProfile(accountFrom(r.Context()).User.ID, update)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, api.ProfileResponse{User: &account.User, Message: MsgProfileUpdated})
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	var req api.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, MsgBadRequest)
		return
	}
	if strings.TrimSpace(req.CurrentPassword) == "" || strings.TrimSpace(req.NewPassword) == "" {
		writeMessage(w, http.StatusBadRequest, MsgPasswordsRequired)
		return
	}

	account := accountFrom(r.Context())
	if !users.CheckPasswordHash(req.CurrentPassword, account.PasswordHash) {
		writeMessage(w, http.StatusBadRequest, MsgWrongPassword)
		return
	}
	if err := users.ValidatePasswordStrength(req.NewPassword); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := users.HashPassword(req.NewPassword)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.accounts.SetPasswordHash(account.User.ID, hash); err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeMessage(w, http.StatusOK, MsgPasswordChanged)
}
