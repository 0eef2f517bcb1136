package reports_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/dept-console/api"
	"github.com/jrsteele09/dept-console/api/fakeapi"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/jrsteele09/dept-console/reports"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newReportsClient(t *testing.T, username string) (*reports.Client, *fakeapi.Server) {
	t.Helper()
	fake, err := fakeapi.New([]byte("reports-test"), time.Hour)
	require.NoError(t, err)
	require.NoError(t, fake.SeedDemo())

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	raw, err := fake.IssueToken(username)
	require.NoError(t, err)
	return reports.New(api.New(srv.URL), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: raw})), fake
}

func TestClient_Dashboard(t *testing.T) {
	c, _ := newReportsClient(t, fakeapi.DemoUsername)
	ctx := context.Background()

	kpis, err := c.KPIs(ctx)
	require.NoError(t, err)
	require.Equal(t, "85%", kpis.GraduationRate)
	require.Equal(t, 15, kpis.BehaviorIncidentsPerMonth)

	stats, err := c.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 1425, stats.TotalTrainees)
	require.Equal(t, 443, stats.TraineesBySpecialization["Programming"])
}

func TestClient_Lists(t *testing.T) {
	c, _ := newReportsClient(t, fakeapi.DemoUsername)
	ctx := context.Background()
	want := fakeapi.DemoFixtures()

	qr, err := c.QualityReports(ctx)
	require.NoError(t, err)
	require.Len(t, qr, len(want.QualityReports))
	require.Equal(t, "completed", qr[0].Status)
	require.Nil(t, qr[1].CompletedAt)

	initiatives, err := c.Initiatives(ctx)
	require.NoError(t, err)
	require.Len(t, initiatives, len(want.Initiatives))

	records, err := c.BehaviorRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(want.BehaviorRecords))
	require.Equal(t, 4411, records[0].TraineeID)

	surveys, err := c.Surveys(ctx)
	require.NoError(t, err)
	require.Len(t, surveys, len(want.Surveys))
	require.True(t, surveys[0].IsActive)
}

func TestClient_Rejections(t *testing.T) {
	t.Run("missing permission", func(t *testing.T) {
		c, _ := newReportsClient(t, "trainer")

		_, err := c.QualityReports(context.Background())
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
		require.Equal(t, fakeapi.MsgForbidden, api.MessageOf(err))
	})

	t.Run("revoked token", func(t *testing.T) {
		fake, err := fakeapi.New([]byte("reports-test"), time.Hour)
		require.NoError(t, err)
		require.NoError(t, fake.SeedDemo())
		srv := httptest.NewServer(fake)
		t.Cleanup(srv.Close)

		raw, err := fake.IssueToken(fakeapi.DemoUsername)
		require.NoError(t, err)
		fake.Revoke(raw)

		c := reports.New(api.New(srv.URL), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: raw}))
		_, err = c.Surveys(context.Background())
		require.ErrorIs(t, err, apperrors.ErrAuthRejected)
	})

	t.Run("no token", func(t *testing.T) {
		fake, err := fakeapi.New([]byte("reports-test"), time.Hour)
		require.NoError(t, err)
		srv := httptest.NewServer(fake)
		t.Cleanup(srv.Close)

		c := reports.New(api.New(srv.URL), noToken{})
		_, err = c.KPIs(context.Background())
		require.ErrorIs(t, err, apperrors.ErrNoToken)
		require.Zero(t, fake.Requests())
	})
}

type noToken struct{}

func (noToken) Token() (*oauth2.Token, error) { return nil, apperrors.ErrNoToken }
