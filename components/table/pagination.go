package table

import (
	"fmt"
	"net/url"
	"strconv"
)

// Pagination describes the page of rows currently loaded.
// Page change and page size change links are built from Path and Query.
type Pagination struct {
	Total           int
	PageSize        int
	Page            int
	PageSizeOptions []int
	Path            string
	Query           url.Values
}

// TotalPages returns ceil(total/pageSize)
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps page within [1, max(totalPages, 1)]
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Range returns the 1-based positions of the first and last row shown on page.
// Both are 0 when there are no rows.
func Range(page, pageSize, total int) (from, to int) {
	if total <= 0 || pageSize <= 0 {
		return 0, 0
	}
	page = ClampPage(page, TotalPages(total, pageSize))
	from = (page-1)*pageSize + 1
	to = page * pageSize
	if to > total {
		to = total
	}
	return from, to
}

// Summary renders the "Showing X to Y of N" pagination text
func Summary(page, pageSize, total int) string {
	from, to := Range(page, pageSize, total)
	return fmt.Sprintf("Showing %d to %d of %d", from, to, total)
}

// pageWindow is how many page links are shown on each side of the current page
const pageWindow = 2

// PageLink is a link to one page. A Gap link stands for the skipped pages between two links.
type PageLink struct {
	Page    int
	Href    string
	Current bool
	Gap     bool
}

// PageSizeLink is a link changing the page size
type PageSizeLink struct {
	Size     int
	Href     string
	Selected bool
}

// PagerView is the pagination footer of a table
type PagerView struct {
	Summary    string
	Page       int
	TotalPages int
	PrevHref   string
	NextHref   string
	Pages      []PageLink
	PageSizes  []PageSizeLink
}

// View renders the pagination footer
func (p Pagination) View() PagerView {
	totalPages := TotalPages(p.Total, p.PageSize)
	page := ClampPage(p.Page, totalPages)

	view := PagerView{
		Summary:    Summary(page, p.PageSize, p.Total),
		Page:       page,
		TotalPages: totalPages,
	}
	if page > 1 {
		view.PrevHref = p.PageHref(page - 1)
	}
	if page < totalPages {
		view.NextHref = p.PageHref(page + 1)
	}
	view.Pages = p.pageLinks(page, totalPages)
	for _, size := range p.PageSizeOptions {
		view.PageSizes = append(view.PageSizes, PageSizeLink{Size: size, Href: p.PageSizeHref(size), Selected: size == p.PageSize})
	}
	return view
}

// pageLinks links the first and last pages plus the pages within pageWindow of page
func (p Pagination) pageLinks(page, totalPages int) []PageLink {
	var links []PageLink
	for i := 1; i <= totalPages; i++ {
		if i != 1 && i != totalPages && (i < page-pageWindow || i > page+pageWindow) {
			if len(links) > 0 && !links[len(links)-1].Gap {
				links = append(links, PageLink{Gap: true})
			}
			continue
		}
		links = append(links, PageLink{Page: i, Href: p.PageHref(i), Current: i == page})
	}
	return links
}

// PageHref links to the given page keeping every other query parameter
func (p Pagination) PageHref(page int) string {
	query := p.copyQuery()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(p.PageSize))
	return p.Path + "?" + query.Encode()
}

// PageSizeHref links to the first page with the given page size
func (p Pagination) PageSizeHref(size int) string {
	query := p.copyQuery()
	query.Set("page", "1")
	query.Set("limit", strconv.Itoa(size))
	return p.Path + "?" + query.Encode()
}

func (p Pagination) copyQuery() url.Values {
	query := url.Values{}
	for key, values := range p.Query {
		query[key] = append([]string(nil), values...)
	}
	return query
}
