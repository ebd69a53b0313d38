package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p, pp := Normalize(0, 0, 100)
	assert.Equal(t, 1, p)
	assert.Equal(t, DefaultPageSize, pp)

	p, pp = Normalize(3, 500, 100)
	assert.Equal(t, 3, p)
	assert.Equal(t, 100, pp)
}

func TestLimits_Normalize(t *testing.T) {
	limits := Limits{Default: 25, Max: 50}

	_, pp := limits.Normalize(1, 0)
	assert.Equal(t, 25, pp)

	_, pp = limits.Normalize(1, 80)
	assert.Equal(t, 50, pp)

	_, pp = limits.Normalize(1, 5)
	assert.Equal(t, 5, pp)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		wantItems []int
		wantPages int
	}{
		{name: "first page", page: 1, wantItems: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, wantPages: 3},
		{name: "last partial page", page: 3, wantItems: []int{20, 21, 22}, wantPages: 3},
		{name: "past the end", page: 9, wantItems: []int{}, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Paginate(items, tt.page, 10)
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, 23, meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.page, meta.Page)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got, meta := Paginate([]string{}, 1, 10)
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.TotalPages)
}
