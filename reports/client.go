package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/dept-console/api"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Client reads the report endpoints with the session's token.
type Client struct {
	api *api.Client
	src oauth2.TokenSource
}

func New(apiClient *api.Client, src oauth2.TokenSource) *Client {
	return &Client{api: apiClient, src: src}
}

func (c *Client) KPIs(ctx context.Context) (*KPIs, error) {
	var kpis KPIs
	if err := c.api.GetJSON(ctx, c.src, KPIsPath, &kpis); err != nil {
		return nil, errors.Wrap(err, "fetch kpis")
	}
	return &kpis, nil
}

func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := c.api.GetJSON(ctx, c.src, StatisticsPath, &stats); err != nil {
		return nil, errors.Wrap(err, "fetch statistics")
	}
	return &stats, nil
}

func (c *Client) QualityReports(ctx context.Context) ([]QualityReport, error) {
	return fetchList[QualityReport](ctx, c, QualityReportsPath, "reports")
}

func (c *Client) Initiatives(ctx context.Context) ([]Initiative, error) {
	return fetchList[Initiative](ctx, c, InitiativesPath, "initiatives")
}

func (c *Client) BehaviorRecords(ctx context.Context) ([]BehaviorRecord, error) {
	return fetchList[BehaviorRecord](ctx, c, BehaviorRecordsPath, "records")
}

func (c *Client) Surveys(ctx context.Context) ([]Survey, error) {
	return fetchList[Survey](ctx, c, SurveysPath, "surveys")
}

func fetchList[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	var raw json.RawMessage
	if err := c.api.GetJSON(ctx, c.src, path, &raw); err != nil {
		return nil, errors.Wrapf(err, "fetch %s", path)
	}
	rows, err := decodeList[T](raw, key)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return rows, nil
}

// decodeList accepts either a bare JSON array or an object carrying the array
// under key. An object without key decodes to no rows. Any other body is a
// transport failure.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	rows, err := decodeRows[T](raw, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrTransport, err)
	}
	return rows, nil
}

func decodeRows[T any](raw json.RawMessage, key string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	rows := []T{}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return rows, nil
	}

	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, err
		}
		list, ok := envelope[key]
		if !ok {
			return rows, nil
		}
		return decodeRows[T](list, key)
	default:
		return nil, errors.Errorf("expected a list, got %q", string(raw[:1]))
	}
}
