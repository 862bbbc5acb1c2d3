package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPaginationWindows(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		page    int
		total   int
		fromIdx int
		toIdx   int
		hasPrev bool
		hasNext bool
	}{
		{name: "first page", size: 10, page: 1, total: 25, fromIdx: 0, toIdx: 10, hasPrev: false, hasNext: true},
		{name: "middle page", size: 10, page: 2, total: 25, fromIdx: 10, toIdx: 20, hasPrev: true, hasNext: true},
		{name: "clamped last page", size: 10, page: 3, total: 25, fromIdx: 20, toIdx: 25, hasPrev: true, hasNext: false},
		{name: "past the end", size: 10, page: 5, total: 25, fromIdx: 25, toIdx: 25, hasPrev: true, hasNext: false},
		{name: "empty collection", size: 10, page: 1, total: 0, fromIdx: 0, toIdx: 0, hasPrev: false, hasNext: false},
		{name: "exact boundary", size: 5, page: 2, total: 10, fromIdx: 5, toIdx: 10, hasPrev: true, hasNext: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			window, err := NewPagination(tc.size, tc.page, tc.total)
			require.NoError(t, err)
			require.Equal(t, tc.fromIdx, window.FromIdx())
			require.Equal(t, tc.toIdx, window.ToIdx())
			require.Equal(t, tc.hasPrev, window.HasPrev())
			require.Equal(t, tc.hasNext, window.HasNext())
		})
	}
}

func TestNewPaginationInvalidArguments(t *testing.T) {
	_, err := NewPagination(0, 1, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPagination(10, 0, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPagination(10, 1, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPaginationAdjacentPages(t *testing.T) {
	window, err := NewPagination(10, 2, 25)
	require.NoError(t, err)
	require.Equal(t, 1, window.PrevPage().Page)
	require.Equal(t, 3, window.NextPage().Page)
}
