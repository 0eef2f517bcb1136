package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jrsteele09/dept-console/api"
	"github.com/jrsteele09/dept-console/api/fakeapi"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/jrsteele09/dept-console/internal/utils"
	"github.com/jrsteele09/dept-console/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type noTokenSource struct{}

func (noTokenSource) Token() (*oauth2.Token, error) {
	return nil, apperrors.ErrNoToken
}

func newFake(t *testing.T) (*fakeapi.Server, *httptest.Server) {
	t.Helper()
	fake, err := fakeapi.New([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	_, err = fake.AddAccount(users.User{
		Username: "admin",
		FullName: "Admin",
		IsActive: true,
		Roles:    []string{"manager"},
	}, "correct")
	require.NoError(t, err)

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return fake, srv
}

func staticSource(raw string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: raw})
}

func TestClient_Login(t *testing.T) {
	_, srv := newFake(t)
	client := api.New(srv.URL)

	t.Run("accepted", func(t *testing.T) {
		resp, err := client.Login(context.Background(), "admin", "correct")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User)
		require.Equal(t, "admin", resp.User.Username)
		require.Equal(t, []string{"manager"}, resp.User.Roles)
		require.Equal(t, fakeapi.MsgLoggedIn, resp.Message)
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := client.Login(context.Background(), "admin", "wrong")
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
		require.NotErrorIs(t, err, apperrors.ErrTransport)

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "invalid credentials", api.MessageOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.Login(context.Background(), "nobody", "correct")
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
	})
}

func TestClient_ProfileCarriesBearer(t *testing.T) {
	fake, srv := newFake(t)
	client := api.New(srv.URL)

	raw, err := fake.IssueToken("admin")
	require.NoError(t, err)

	user, err := client.Profile(context.Background(), staticSource(raw))
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)

	t.Run("revoked token", func(t *testing.T) {
		fake.Revoke(raw)
		_, err := client.Profile(context.Background(), staticSource(raw))
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
		require.Equal(t, fakeapi.MsgTokenInvalid, api.MessageOf(err))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := client.Profile(context.Background(), staticSource("abc"))
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
	})
}

func TestClient_NoTokenSendsNothing(t *testing.T) {
	fake, srv := newFake(t)
	client := api.New(srv.URL)

	_, err := client.Profile(context.Background(), noTokenSource{})
	require.ErrorIs(t, err, apperrors.ErrNoToken)
	require.NotErrorIs(t, err, apperrors.ErrTransport)
	require.Zero(t, fake.Requests())
}

func TestClient_TransportFailure(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := api.New(url).Login(context.Background(), "admin", "correct")
		require.ErrorIs(t, err, apperrors.ErrTransport)
		require.NotErrorIs(t, err, apperrors.ErrAuthRejected)
		require.Empty(t, api.MessageOf(err))
	})

	t.Run("unreadable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html>proxy page</html>"))
		}))
		t.Cleanup(srv.Close)

		_, err := api.New(srv.URL).Login(context.Background(), "admin", "correct")
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		_, err := api.New(srv.URL, api.WithTimeout(50*time.Millisecond)).Login(context.Background(), "admin", "correct")
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := api.New(srv.URL).Login(context.Background(), "admin", "correct")
	require.ErrorIs(t, err, apperrors.ErrAuthRejected)
	require.Empty(t, api.MessageOf(err))
}

func TestClient_RequestID(t *testing.T) {
	fake, srv := newFake(t)
	client := api.New(srv.URL)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-123")
	_, err := client.Login(ctx, "admin", "correct")
	require.NoError(t, err)
	require.Equal(t, "req-123", fake.LastRequestID())

	_, err = client.Login(context.Background(), "admin", "correct")
	require.NoError(t, err)
	require.NotEmpty(t, fake.LastRequestID())
	require.NotEqual(t, "req-123", fake.LastRequestID())
}

func TestClient_UpdateProfile(t *testing.T) {
	fake, srv := newFake(t)
	client := api.New(srv.URL)
	raw, err := fake.IssueToken("admin")
	require.NoError(t, err)

	resp, err := client.UpdateProfile(context.Background(), staticSource(raw), users.ProfileUpdate{
		FullName: utils.Ptr("Sara Ali"),
		Phone:    utils.Ptr("0500000000"),
	})
	require.NoError(t, err)
	require.Equal(t, "Sara Ali", resp.User.FullName)
	require.Equal(t, "0500000000", resp.User.Phone)
	require.Equal(t, []string{"manager"}, resp.User.Roles)
	require.Equal(t, fakeapi.MsgProfileUpdated, resp.Message)
}

func TestClient_ChangePassword(t *testing.T) {
	fake, srv := newFake(t)
	client := api.New(srv.URL)
	raw, err := fake.IssueToken("admin")
	require.NoError(t, err)
	src := staticSource(raw)

	t.Run("wrong current", func(t *testing.T) {
		_, err := client.ChangePassword(context.Background(), src, "nope", "N3w!Password")
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
		require.Equal(t, fakeapi.MsgWrongPassword, api.MessageOf(err))
	})

	t.Run("weak new", func(t *testing.T) {
		_, err := client.ChangePassword(context.Background(), src, "correct", "weak")
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
		require.Contains(t, api.MessageOf(err), "at least 8")
	})

	t.Run("changed", func(t *testing.T) {
		resp, err := client.ChangePassword(context.Background(), src, "correct", "N3w!Password")
		require.NoError(t, err)
		require.Equal(t, fakeapi.MsgPasswordChanged, resp.Message)

		_, err = client.Login(context.Background(), "admin", "N3w!Password")
		require.NoError(t, err)
	})
}
