package entities

import (
	"net/url"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ListQuery holds the paging and filtering parameters shared by all list endpoints
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
	From   *time.Time
	To     *time.Time
}

// Values encodes the query the way the backend's list endpoints expect it
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.From != nil {
		values.Set("from", q.From.Format(dateLayout))
	}
	if q.To != nil {
		values.Set("to", q.To.Format(dateLayout))
	}
	return values
}
