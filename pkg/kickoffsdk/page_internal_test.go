package kickoffsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynthesizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		list      []int
		params    ListParams
		wantPage  int
		wantLimit int
	}{
		{"defaults", []int{1, 2}, ListParams{}, 1, 20},
		{"explicit", []int{1}, ListParams{Page: 4, Limit: 50}, 4, 50},
		{"negative falls back", nil, ListParams{Page: -1, Limit: -5}, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := synthesizePage(tt.list, tt.params)
			require.NotNil(t, p.Data)
			require.Equal(t, len(tt.list), p.Total)
			require.Equal(t, tt.wantPage, p.Page)
			require.Equal(t, tt.wantLimit, p.Limit)
			require.Equal(t, 1, p.TotalPages)
		})
	}
}

func TestPathf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/teams/7/members/9", pathf("/teams", int64(7), "members", int64(9)))
	require.Equal(t, "/search/a%2Fb", pathf("/search", "a/b"))
	require.Equal(t, "/x/3", pathf("/x", 3))
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("string message", func(t *testing.T) {
		err := parseErrorResponse(404, []byte(`{"message":"Team not found","code":"TEAM_NOT_FOUND"}`))
		apiErr := err.(*APIError)
		require.Equal(t, "Team not found", apiErr.Message)
		require.Equal(t, "TEAM_NOT_FOUND", apiErr.Code)
		require.Contains(t, apiErr.Error(), "404")
	})

	t.Run("non json body", func(t *testing.T) {
		err := parseErrorResponse(502, []byte("<html>bad gateway</html>"))
		apiErr := err.(*APIError)
		require.Empty(t, apiErr.Message)
		require.Equal(t, "kickoff api: 502 Bad Gateway", apiErr.Error())
	})
}
