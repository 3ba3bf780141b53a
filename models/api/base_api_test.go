package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, DefaultPageSize, limit)
	})
	t.Run(`limit is capped`, func(t *testing.T) {
		page, limit := Pagination{Page: 3, Limit: 500}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, MaxPageSize, limit)
	})
	t.Run(`negative values are rejected`, func(t *testing.T) {
		require.NotNil(t, Pagination{Page: -1}.Validate())
		require.NotNil(t, Pagination{Limit: -5}.Validate())
		require.Nil(t, Pagination{Page: 2, Limit: 20}.Validate())
	})
}

func TestNewScrollerResponse(t *testing.T) {
	resp := NewScrollerResponse([]string{"a"}, 7)
	require.Equal(t, StatusSuccess, resp.Status)
	require.Equal(t, int64(7), resp.RowCount)
	require.Equal(t, StatusFail, NewError("x").Status)
}
