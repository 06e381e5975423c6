package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1.5", 1},
		{"1", 1},
		{"7", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePageParam(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPaginateTenItemsPageSizeNine(t *testing.T) {
	in := items(10)

	first := Paginate(in, 9, 1)
	assert.Len(t, first.Items, 9)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 10, first.TotalItems)

	second := Paginate(in, 9, 2)
	assert.Len(t, second.Items, 1)
	assert.Equal(t, 9, second.Items[0])
	assert.Equal(t, 2, second.Number)

	// past the end clamps to the last page, same content as page 2
	third := Paginate(in, 9, 3)
	assert.Equal(t, second.Number, third.Number)
	assert.Equal(t, second.Items, third.Items)

	// non-numeric page value falls back to page 1
	fallback := Paginate(in, 9, ParsePageParam("not-a-number"))
	assert.Equal(t, first.Items, fallback.Items)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 9, 5)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}

func TestPaginateBoundaries(t *testing.T) {
	// item at zero-based index i belongs to page floor(i/size)+1
	in := items(27)

	for i := 0; i < len(in); i++ {
		wantPage := i/9 + 1
		page := Paginate(in, 9, wantPage)
		assert.Contains(t, page.Items, i, "index %d should be on page %d", i, wantPage)
	}
}
