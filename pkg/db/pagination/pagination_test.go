package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_PageCount(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		wantPages int
		lastPage  int
	}{
		{"empty", 0, 0, 0},
		{"partial page", 3, 1, 3},
		{"exact page", 5, 1, 5},
		{"exact multiple", 10, 2, 5},
		{"remainder", 12, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, info := Paginate(makeItems(tt.length), Pagination{Page: 1, PageSize: 5})
			assert.Equal(t, tt.wantPages, info.PageCount)
			assert.Equal(t, tt.length, info.TotalItems)

			if tt.wantPages > 0 {
				last, _ := Paginate(makeItems(tt.length), Pagination{Page: tt.wantPages, PageSize: 5})
				assert.Len(t, last, tt.lastPage)
			}
		})
	}
}

func TestPaginate_ClampsOutOfRangePage(t *testing.T) {
	items := makeItems(7)

	// Page 5 of a 2-page set clamps to the last page.
	page, info := Paginate(items, Pagination{Page: 5, PageSize: 5})
	assert.Equal(t, 2, info.Page)
	require.Len(t, page, 2)
	assert.Equal(t, []int{6, 7}, page)

	// Page 0 and negative pages clamp to the first page.
	page, info = Paginate(items, Pagination{Page: 0, PageSize: 5})
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page)

	page, info = Paginate(items, Pagination{Page: -3, PageSize: 5})
	assert.Equal(t, 1, info.Page)
	assert.Len(t, page, 5)
}

func TestPaginate_EmptyList(t *testing.T) {
	page, info := Paginate([]int{}, Pagination{Page: 3, PageSize: 5})
	assert.Empty(t, page)
	assert.Equal(t, 0, info.PageCount)
	assert.Equal(t, 0, info.TotalItems)
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	_, info := Paginate(makeItems(11), Pagination{Page: 1})
	assert.Equal(t, DefaultPageSize, info.PageSize)
	assert.Equal(t, 3, info.PageCount)
}

func TestPaginate_PreservesOrder(t *testing.T) {
	page, _ := Paginate(makeItems(12), Pagination{Page: 2, PageSize: 5})
	assert.Equal(t, []int{6, 7, 8, 9, 10}, page)
}
