// Package fakeapi is an in-process stand-in for the department API. It serves
// the login, profile, change-password and list endpoints with the same JSON
// shapes and status codes, backed by an in-memory account repo.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jrsteele09/dept-console/api"
	"github.com/jrsteele09/dept-console/reports"
	"github.com/jrsteele09/dept-console/token"
	"github.com/jrsteele09/dept-console/users"
	fakeuserrepo "github.com/jrsteele09/dept-console/users/repofake"
	"github.com/pkg/errors"
)

type Server struct {
	accounts users.AccountRepo
	issuer   *token.HMACIssuer
	router   chi.Router

	requests      atomic.Int64
	lastRequestID atomic.Value

	mu      sync.RWMutex
	revoked map[string]struct{}
	data    Fixtures
}

// Fixtures are the rows served by the list endpoints.
type Fixtures struct {
	KPIs            reports.KPIs
	Statistics      reports.Statistics
	QualityReports  []reports.QualityReport
	Initiatives     []reports.Initiative
	BehaviorRecords []reports.BehaviorRecord
	Surveys         []reports.Survey
}

type Option func(*Server)

func WithAccountRepo(repo users.AccountRepo) Option {
	return func(s *Server) {
		s.accounts = repo
	}
}

func WithFixtures(f Fixtures) Option {
	return func(s *Server) {
		s.data = f
	}
}

func New(secret []byte, tokenExpiry time.Duration, opts ...Option) (*Server, error) {
	issuer, err := token.NewHMACIssuer(secret, tokenExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "fake api token issuer")
	}

	s := &Server{
		accounts: fakeuserrepo.NewFakeUserRepo(),
		issuer:   issuer,
		revoked:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Post(api.LoginPath, s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.tokenRequired)
		r.Get(api.ProfilePath, s.getProfile)
		r.Put(api.ProfilePath, s.updateProfile)
		r.Post(api.ChangePasswordPath, s.changePassword)

		r.Get(reports.KPIsPath, s.kpis)
		r.Get(reports.StatisticsPath, s.statistics)
		r.With(s.permissionRequired(users.PermViewReports)).Get(reports.QualityReportsPath, s.qualityReports)
		r.Get(reports.InitiativesPath, s.initiatives)
		r.Get(reports.BehaviorRecordsPath, s.behaviorRecords)
		r.Get(reports.SurveysPath, s.surveys)
	})
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddAccount stores user with a bcrypt hash of password and returns the stored
// identity. Permissions default to those of the user's roles.
func (s *Server) AddAccount(user users.User, password string) (*users.User, error) {
	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	if user.Permissions == nil {
		user.Permissions = users.PermissionsForRoles(user.Roles)
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}
	account := &users.Account{User: user, PasswordHash: hash}
	if err := s.accounts.Upsert(account); err != nil {
		return nil, errors.Wrap(err, "store account")
	}
	return account.User.Clone(), nil
}

// IssueToken signs a token for an existing account without a login round trip.
func (s *Server) IssueToken(username string) (string, error) {
	account, err := s.accounts.GetByUsername(username)
	if err != nil {
		return "", err
	}
	return s.issuer.Issue(account.User.ID, account.User.Username)
}

// Revoke makes every later request with raw answer 401.
func (s *Server) Revoke(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[raw] = struct{}{}
}

// Requests is the number of requests served so far.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// LastRequestID is the X-Request-ID of the most recent request.
func (s *Server) LastRequestID() string {
	id, _ := s.lastRequestID.Load().(string)
	return id
}

func (s *Server) SetFixtures(f Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = f
}

func (s *Server) fixtures() Fixtures {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Server) isRevoked(raw string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[raw]
	return ok
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.lastRequestID.Store(r.Header.Get(api.RequestIDHeader))
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	raw := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"message": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.MessageResponse{Message: message})
}
