package table

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "should round up", total: 95, pageSize: 20, want: 5},
		{name: "should be exact on multiples", total: 100, pageSize: 20, want: 5},
		{name: "should be 1 for a partial page", total: 3, pageSize: 20, want: 1},
		{name: "should be 0 without rows", total: 0, pageSize: 20, want: 0},
		{name: "should be 0 for invalid page size", total: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func Test_ClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 1, ClampPage(2, 0))
}

func Test_Range__last_page_should_show_remaining_rows(t *testing.T) {
	from, to := Range(5, 20, 95)

	assert.Equal(t, 81, from)
	assert.Equal(t, 95, to)
}

func Test_Summary(t *testing.T) {
	assert.Equal(t, "Showing 81 to 95 of 95", Summary(5, 20, 95))
	assert.Equal(t, "Showing 1 to 20 of 95", Summary(1, 20, 95))
	assert.Equal(t, "Showing 81 to 95 of 95", Summary(7, 20, 95))
	assert.Equal(t, "Showing 0 to 0 of 0", Summary(1, 20, 0))
}

func Test_Pagination_View(t *testing.T) {
	pagination := Pagination{
		Total:           95,
		PageSize:        20,
		Page:            2,
		PageSizeOptions: []int{10, 20},
		Path:            "/organizations",
		Query:           url.Values{"search": {"acme"}, "page": {"2"}},
	}

	view := pagination.View()

	assert.Equal(t, "Showing 21 to 40 of 95", view.Summary)
	assert.Equal(t, 5, view.TotalPages)
	assert.Equal(t, "/organizations?limit=20&page=1&search=acme", view.PrevHref)
	assert.Equal(t, "/organizations?limit=20&page=3&search=acme", view.NextHref)
	assert.Len(t, view.Pages, 5)
	assert.True(t, view.Pages[1].Current)
	assert.Equal(t, []PageSizeLink{
		{Size: 10, Href: "/organizations?limit=10&page=1&search=acme"},
		{Size: 20, Href: "/organizations?limit=20&page=1&search=acme", Selected: true},
	}, view.PageSizes)
	assert.Equal(t, []string{"2"}, pagination.Query["page"], "query of the caller must not change")
}

func Test_Pagination_View__should_clamp_page_and_hide_links_at_the_edges(t *testing.T) {
	view := Pagination{Total: 95, PageSize: 20, Page: 12, Path: "/events"}.View()

	assert.Equal(t, 5, view.Page)
	assert.Equal(t, "", view.NextHref)
	assert.NotEqual(t, "", view.PrevHref)

	view = Pagination{Total: 5, PageSize: 20, Page: 1, Path: "/events"}.View()

	assert.Equal(t, "", view.PrevHref)
	assert.Equal(t, "", view.NextHref)
}

func Test_Pagination_View__should_show_a_window_of_pages_around_the_current_one(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantPages []int
	}{
		{name: "first page", page: 1, wantPages: []int{1, 2, 3, 0, 100}},
		{name: "middle page", page: 50, wantPages: []int{1, 0, 48, 49, 50, 51, 52, 0, 100}},
		{name: "near the start", page: 4, wantPages: []int{1, 2, 3, 4, 5, 6, 0, 100}},
		{name: "last page", page: 100, wantPages: []int{1, 0, 98, 99, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Pagination{Total: 1000, PageSize: 10, Page: tt.page, Path: "/events"}.View()

			var pages []int
			for _, link := range view.Pages {
				assert.Equal(t, link.Gap, link.Page == 0)
				assert.Equal(t, link.Page == tt.page, link.Current)
				pages = append(pages, link.Page)
			}
			assert.Equal(t, tt.wantPages, pages)
		})
	}
}
