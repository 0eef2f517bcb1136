package reports

import (
	"encoding/json"
	"testing"

	apperrors "github.com/jrsteele09/dept-console/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []Survey
	}{
		{"bare array", `[{"id": 1, "title": "a"}]`, []Survey{{ID: 1, Title: "a"}}},
		{"envelope", `{"surveys": [{"id": 2, "title": "b"}], "total": 1}`, []Survey{{ID: 2, Title: "b"}}},
		{"envelope without key", `{"message": "coming soon"}`, []Survey{}},
		{"null", `null`, []Survey{}},
		{"empty array", ` [] `, []Survey{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := decodeList[Survey](json.RawMessage(tc.raw), "surveys")
			require.NoError(t, err)
			require.Equal(t, tc.want, rows)
		})
	}

	t.Run("not a list", func(t *testing.T) {
		_, err := decodeList[Survey](json.RawMessage(`"text"`), "surveys")
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("wrong row shape", func(t *testing.T) {
		_, err := decodeList[Survey](json.RawMessage(`[1, 2]`), "surveys")
		require.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("naive timestamps", func(t *testing.T) {
		rows, err := decodeList[Survey](json.RawMessage(`[{"id": 1, "created_at": "2024-12-01T09:30:00.123456"}]`), "surveys")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, 2024, rows[0].CreatedAt.Year())
	})
}
