// Package session holds the console's single authenticated session: the
// current identity, its bearer token and the startup loading flag. The token
// is mirrored into a tokenstore.Repo so a restarted console can resume it.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jrsteele09/dept-console/api"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/jrsteele09/dept-console/routegate"
	"github.com/jrsteele09/dept-console/session/tokenstore"
	"github.com/jrsteele09/dept-console/token"
	"github.com/jrsteele09/dept-console/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	MsgMissingCredentials = "please enter your username and password"
	MsgConnectionFailed   = "could not connect to the server"
	MsgRejected           = "the request was rejected"
	MsgSessionNotSaved    = "could not save the session"
)

// Backend is the part of the department API the session drives.
type Backend interface {
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
	Profile(ctx context.Context, src oauth2.TokenSource) (*users.User, error)
	UpdateProfile(ctx context.Context, src oauth2.TokenSource, update users.ProfileUpdate) (*api.ProfileResponse, error)
	ChangePassword(ctx context.Context, src oauth2.TokenSource, current, next string) (*api.MessageResponse, error)
}

var _ Backend = (*api.Client)(nil)

// Result is the outcome of an operation that talks to the API. Err is nil on
// success and otherwise wraps ErrValidation, ErrAuthRejected or ErrTransport.
type Result struct {
	Success bool
	Message string
	Err     error
}

// State is a point in time copy of the session.
type State struct {
	User    *users.User
	Token   string
	Loading bool
}

func (s State) Authenticated() bool {
	return s.User != nil
}

func (s State) Gate() routegate.State {
	return routegate.State{Loading: s.Loading, Authenticated: s.Authenticated()}
}

type Store struct {
	backend Backend
	repo    tokenstore.Repo

	keepOnTransportFailure bool

	mu      sync.RWMutex
	user    *users.User
	token   string
	loading bool
	// generation changes whenever establish or terminate replace the session,
	// so a slower resume can tell that its result is stale.
	generation uint64

	resumeOnce sync.Once
	ready      chan struct{}
}

var _ oauth2.TokenSource = (*Store)(nil)

type Option func(*Store)

// WithKeepTokenOnTransportFailure keeps the stored token when resume cannot
// reach the API, so the next start can try again. The session still starts
// empty.
func WithKeepTokenOnTransportFailure(keep bool) Option {
	return func(s *Store) {
		s.keepOnTransportFailure = keep
	}
}

func New(backend Backend, repo tokenstore.Repo, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		repo:    repo,
		loading: true,
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resume validates a previously stored token against the API. Only the first
// call does anything. It never fails: any problem leaves the session empty.
func (s *Store) Resume(ctx context.Context) {
	s.resumeOnce.Do(func() {
		defer s.finishLoading()
		s.resume(ctx)
	})
}

func (s *Store) resume(ctx context.Context) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	stored, err := s.repo.Load(ctx)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			log.Err(err).Msg("Resume: failed to read stored token")
		}
		return
	}

	user, err := s.backend.Profile(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: stored}))
	if ctx.Err() != nil {
		log.Info().Err(ctx.Err()).Msg("Resume: cancelled before the api answered, stored token kept")
		return
	}
	if err == nil && user == nil {
		err = fmt.Errorf("%w: profile response carried no user", apperrors.ErrTransport)
	}
	if err == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen {
			log.Debug().Msg("Resume: session replaced while validating, result ignored")
			return
		}
		s.user = user
		s.token = stored
		log.Info().Str("username", user.Username).Msg("Resume: session restored")
		return
	}

	if apperrors.Is(err, apperrors.ErrTransport) && s.keepOnTransportFailure {
		log.Warn().Err(err).Msg("Resume: api unreachable, keeping stored token for the next start")
		return
	}

	log.Info().Err(err).Msg("Resume: stored token not accepted, discarding")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return
	}
	if err := s.repo.Clear(ctx); err != nil {
		log.Err(err).Msg("Resume: failed to clear stored token")
	}
}

func (s *Store) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	close(s.ready)
}

// Establish submits credentials and, when the API accepts them, stores the
// returned token and identity. Failure leaves the session as it was.
func (s *Store) Establish(ctx context.Context, username, password string) Result {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return Result{
			Message: MsgMissingCredentials,
			Err:     fmt.Errorf("%w: username and password are required", apperrors.ErrValidation),
		}
	}

	resp, err := s.backend.Login(ctx, username, password)
	if err == nil && (resp.Token == "" || resp.User == nil) {
		err = fmt.Errorf("%w: login response carried no token or user", apperrors.ErrTransport)
	}
	if err != nil {
		log.Info().Err(err).Str("username", username).Msg("Establish: login failed")
		return failure(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, resp.Token); err != nil {
		log.Err(err).Msg("Establish: failed to store token")
		return Result{Message: MsgSessionNotSaved, Err: apperrors.Wrapf(err, "store token")}
	}
	s.user = resp.User
	s.token = resp.Token
	s.generation++

	log.Info().Str("username", resp.User.Username).Msg("Establish: signed in")
	return Result{Success: true, Message: resp.Message}
}

// Terminate clears the session and the stored token. It cannot fail; a storage
// error is logged.
func (s *Store) Terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.generation++

	if err := s.repo.Clear(context.Background()); err != nil {
		log.Err(err).Msg("Terminate: failed to clear stored token")
	}
}

// RefreshIdentity sends a profile update and replaces the identity with the one
// the API returns. Calling it without a session returns ErrNoToken.
func (s *Store) RefreshIdentity(ctx context.Context, update users.ProfileUpdate) (Result, error) {
	gen, err := s.requireToken()
	if err != nil {
		return Result{}, err
	}

	resp, err := s.backend.UpdateProfile(ctx, s, update)
	if err == nil && resp.User == nil {
		err = fmt.Errorf("%w: profile response carried no user", apperrors.ErrTransport)
	}
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoToken) {
			return Result{}, err
		}
		log.Info().Err(err).Msg("RefreshIdentity: update failed")
		return failure(err), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.user = resp.User
	}
	return Result{Success: true, Message: resp.Message}, nil
}

// ChangeCredential sends a password change. The session and token are left
// as they are whatever the outcome.
func (s *Store) ChangeCredential(ctx context.Context, current, next string) (Result, error) {
	if _, err := s.requireToken(); err != nil {
		return Result{}, err
	}

	resp, err := s.backend.ChangePassword(ctx, s, current, next)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoToken) {
			return Result{}, err
		}
		log.Info().Err(err).Msg("ChangeCredential: change failed")
		return failure(err), nil
	}
	return Result{Success: true, Message: resp.Message}, nil
}

func (s *Store) requireToken() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return 0, apperrors.ErrNoToken
	}
	return s.generation, nil
}

func failure(err error) Result {
	msg := api.MessageOf(err)
	if msg == "" {
		if apperrors.Is(err, apperrors.ErrTransport) {
			msg = MsgConnectionFailed
		} else {
			msg = MsgRejected
		}
	}
	return Result{Message: msg, Err: err}
}

// Token implements oauth2.TokenSource so authorized requests read the current
// token when they are sent.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, apperrors.ErrNoToken
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

func (s *Store) HasPermission(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.HasPermission(name)
}

func (s *Store) HasRole(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.HasRole(name)
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{User: s.user.Clone(), Token: s.token, Loading: s.loading}
}

func (s *Store) User() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Ready is closed once the first resume has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Expiry reports the exp claim of the current token when it is a JWT. The
// token stays opaque to the session; this is only for display.
func (s *Store) Expiry() (time.Time, bool) {
	s.mu.RLock()
	raw := s.token
	s.mu.RUnlock()
	if raw == "" {
		return time.Time{}, false
	}
	exp, err := token.ExpiryOf(raw)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}
