package frontend

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/entities"
	"github.com/gin-gonic/gin"
)

const (
	selectedParam  = "selected"
	toggleParam    = "toggle"
	toggleAllParam = "toggle_all"
)

// listParams is the paging, filtering and selection state of a list page, read from its query
type listParams struct {
	Query     entities.ListQuery
	Warnings  []string
	Selection table.Selection
	Values    url.Values
	toggle    string
	toggleAll bool
}

func (r *frontendRouter) parseListParams(ctx *gin.Context) listParams {
	values := ctx.Request.URL.Query()
	if ctx.Request.Method != "GET" {
		if err := ctx.Request.ParseForm(); err == nil {
			values = ctx.Request.Form
		}
	}

	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	dateRange := filter.ParseDateRange(values, "from", "to")
	params := listParams{
		Query: entities.ListQuery{
			Page:   page,
			Limit:  r.pageSize(values.Get("limit")),
			Search: strings.TrimSpace(values.Get("search")),
			Status: strings.TrimSpace(values.Get("status")),
			From:   dateRange.Start,
			To:     dateRange.End,
		},
		Selection: table.Selection(values[selectedParam]),
		Values:    values,
		toggle:    values.Get(toggleParam),
		toggleAll: values.Get(toggleAllParam) != "",
	}
	// an inverted range is still sent to the backend
	if dateRange.Invalid() {
		params.Warnings = append(params.Warnings, filter.InvalidDateRangeWarning)
	}
	return params
}

// pageSize accepts one of the configured page sizes and falls back to the default
func (r *frontendRouter) pageSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err == nil {
		for _, option := range r.cfg.Pagination.PageSizeOptions {
			if option == size {
				return size
			}
		}
	}
	if r.cfg.Pagination.DefaultPageSize > 0 {
		return r.cfg.Pagination.DefaultPageSize
	}
	return 20
}

// selection applies the requested toggles to the submitted selection for the loaded rows
func (p listParams) selection(loaded []string) table.Selection {
	selection := p.Selection
	if p.toggle != "" {
		selection = selection.Toggle(p.toggle)
	}
	if p.toggleAll {
		selection = selection.ToggleAll(loaded)
	}
	return selection
}

// pagination describes the loaded page, with links keeping the current filters
func (p listParams) pagination(path string, total int, options []int) *table.Pagination {
	return &table.Pagination{
		Total:           total,
		PageSize:        p.Query.Limit,
		Page:            p.Query.Page,
		PageSizeOptions: options,
		Path:            path,
		Query:           p.linkQuery(),
	}
}

// redirectPastLastPage sends the admin to the last page when the requested page lies beyond it.
// It reports whether a redirect was written.
func (r *frontendRouter) redirectPastLastPage(ctx *gin.Context, params listParams, path string, total int) bool {
	totalPages := table.TotalPages(total, params.Query.Limit)
	if totalPages == 0 || params.Query.Page <= totalPages {
		return false
	}
	ctx.Redirect(http.StatusSeeOther, params.pagination(path, total, nil).PageHref(totalPages))
	return true
}

// linkQuery is the query carried by links of the page: filters, no selection toggles
func (p listParams) linkQuery() url.Values {
	query := url.Values{}
	for _, key := range []string{"search", "status", "role", "from", "to", "limit", "page"} {
		if value := p.Values.Get(key); value != "" {
			query.Set(key, value)
		}
	}
	return query
}

// hiddenFields are the filters resubmitted by the selection form
func (p listParams) hiddenFields() map[string]string {
	hidden := map[string]string{}
	for key, values := range p.linkQuery() {
		hidden[key] = values[0]
	}
	return hidden
}

// exportHref links to the CSV export of the current filters
func (p listParams) exportHref(path string) string {
	query := p.linkQuery()
	query.Del("page")
	query.Del("limit")
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// allRowsQuery asks for every row matching the filters, up to limit
func (p listParams) allRowsQuery(limit int) entities.ListQuery {
	query := p.Query
	query.Page = 1
	query.Limit = limit
	return query
}
