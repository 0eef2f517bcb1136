package utils_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jrsteele09/dept-console/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2024-03-01T10:20:30Z"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"naive isoformat", `"2024-03-01T10:20:30.123456"`, time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{"date only", `"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts utils.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			require.True(t, tc.want.Equal(ts.Time))
		})
	}

	t.Run("null", func(t *testing.T) {
		var holder struct {
			At *utils.Timestamp `json:"at"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"at":null}`), &holder))
		require.Nil(t, holder.At)
	})

	t.Run("garbage", func(t *testing.T) {
		var ts utils.Timestamp
		require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	})
}

func TestTimestamp_Marshal(t *testing.T) {
	b, err := json.Marshal(utils.Timestamp{Time: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)})
	require.NoError(t, err)
	require.Equal(t, `"2024-03-01T10:20:30Z"`, string(b))

	b, err = json.Marshal(utils.Timestamp{})
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}

func TestFormField(t *testing.T) {
	values := map[string][]string{"full_name": {"  Sara  "}, "phone": {""}}
	require.Equal(t, "Sara", utils.Value(utils.FormField(values, "full_name")))
	require.Equal(t, "", utils.Value(utils.FormField(values, "phone")))
	require.NotNil(t, utils.FormField(values, "phone"))
	require.Nil(t, utils.FormField(values, "email"))
}
