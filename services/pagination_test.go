package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 1},
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			page, err := ParsePage(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("FirstPage", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Paginate(items, 1, 10))
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		assert.Equal(t, []int{21, 22, 23}, Paginate(items, 3, 10))
	})

	t.Run("PastTheEnd", func(t *testing.T) {
		page := Paginate(items, 4, 10)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("HugePage", func(t *testing.T) {
		assert.Empty(t, Paginate(items, math.MaxInt, 10))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, Paginate([]int{}, 1, 10))
	})

	t.Run("ExactBoundary", func(t *testing.T) {
		assert.Len(t, Paginate(items[:20], 2, 10), 10)
		assert.Empty(t, Paginate(items[:20], 3, 10))
	})
}
