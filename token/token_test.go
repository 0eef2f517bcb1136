package token_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/dept-console/token"
	"github.com/stretchr/testify/require"
)

func TestHMACIssuer(t *testing.T) {
	issuer, err := token.NewHMACIssuer([]byte("secret"), time.Hour)
	require.NoError(t, err)

	t.Run("issue and verify", func(t *testing.T) {
		raw, err := issuer.Issue(7, "sara")
		require.NoError(t, err)

		claims, err := issuer.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, 7, claims.UserID)
		require.Equal(t, "sara", claims.Username)
		require.NotEmpty(t, claims.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := token.NewHMACIssuer([]byte("other"), time.Hour)
		require.NoError(t, err)
		raw, err := other.Issue(7, "sara")
		require.NoError(t, err)

		_, err = issuer.Verify(raw)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := issuer.Issue(7, "sara")
		require.NoError(t, err)

		token.NowTimeFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { token.NowTimeFunc = time.Now }()

		_, err = issuer.Verify(raw)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		require.Error(t, err)
	})

	t.Run("secret required", func(t *testing.T) {
		_, err := token.NewHMACIssuer(nil, time.Hour)
		require.Error(t, err)
	})
}

func TestExpiryOf(t *testing.T) {
	issuer, err := token.NewHMACIssuer([]byte("secret"), 30*time.Minute)
	require.NoError(t, err)

	before := time.Now()
	raw, err := issuer.Issue(1, "admin")
	require.NoError(t, err)

	exp, err := token.ExpiryOf(raw)
	require.NoError(t, err)
	require.WithinDuration(t, before.Add(30*time.Minute), exp, 2*time.Second)

	_, err = token.ExpiryOf("abc")
	require.Error(t, err)
}
