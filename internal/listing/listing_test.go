package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rms-web/internal/domain"
)

func TestQuery_Values(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{
			name:     "zero_value_is_first_page",
			query:    Query{},
			expected: "page=1",
		},
		{
			name:     "all_filters",
			query:    Query{Category: 3, Search: "pasta", PriceMin: "5", PriceMax: "20", Ordering: "-price", Page: 2},
			expected: "category=3&ordering=-price&page=2&price_max=20&price_min=5&search=pasta",
		},
		{
			name:     "category_by_title",
			query:    Query{CategoryTitle: "Desserts", Page: 1},
			expected: "category__title=Desserts&page=1",
		},
		{
			name:     "page_floored_at_one",
			query:    Query{Page: -4},
			expected: "page=1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.query.Values().Encode())
		})
	}
}

func TestQuery_filterEditsResetPage(t *testing.T) {
	q := Query{Page: 5}

	q.SetCategory(2)
	assert.Equal(t, 1, q.Page)

	q.SetPage(7)
	q.SetSearch("salad")
	assert.Equal(t, 1, q.Page)

	q.SetPage(3)
	q.SetOrdering("price")
	assert.Equal(t, 1, q.Page)

	q.SetPage(4)
	q.SetCategoryTitle("Mains")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 0, q.Category)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
		{100, 13},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, TotalPages(testCase.count), "count=%d", testCase.count)
	}
}

func TestPageNumbers(t *testing.T) {
	numbers := func(refs []PageRef) []int {
		var out []int
		for _, ref := range refs {
			if ref.Ellipsis {
				out = append(out, -1)
			} else {
				out = append(out, ref.Number)
			}
		}
		return out
	}

	tests := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{
			name:     "short_strip_no_ellipsis",
			current:  2,
			total:    5,
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "middle_page_two_ellipses",
			current:  10,
			total:    20,
			expected: []int{1, -1, 8, 9, 10, 11, 12, -1, 20},
		},
		{
			name:     "near_start_single_trailing_ellipsis",
			current:  2,
			total:    20,
			expected: []int{1, 2, 3, 4, -1, 20},
		},
		{
			name:     "near_end_single_leading_ellipsis",
			current:  19,
			total:    20,
			expected: []int{1, -1, 17, 18, 19, 20},
		},
		{
			name:     "adjacent_run_not_collapsed",
			current:  4,
			total:    20,
			expected: []int{1, 2, 3, 4, 5, 6, -1, 20},
		},
		{
			name:     "single_page",
			current:  1,
			total:    1,
			expected: []int{1},
		},
		{
			name:     "current_clamped_to_total",
			current:  99,
			total:    3,
			expected: []int{1, 2, 3},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, numbers(PageNumbers(testCase.current, testCase.total)))
		})
	}
}

func TestPageNumbers_marksCurrent(t *testing.T) {
	refs := PageNumbers(3, 5)
	for _, ref := range refs {
		assert.Equal(t, ref.Number == 3, ref.Current)
	}
}

func TestPaginate(t *testing.T) {
	next := "http://localhost:8000/api/menu-items?page=3"
	prev := "http://localhost:8000/api/menu-items?page=1"

	pagination := Paginate(2, domain.Page{Count: 17, Next: &next, Previous: &prev})

	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 17, pagination.Count)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
	assert.Len(t, pagination.Pages, 3)
}

func TestPaginate_lastPage(t *testing.T) {
	pagination := Paginate(3, domain.Page{Count: 17})

	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
	assert.Equal(t, 3, pagination.TotalPages)
}
