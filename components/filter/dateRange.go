package filter

import (
	"net/url"
	"strings"
	"time"
)

// DateLayout is the format of date filter values
const DateLayout = "2006-01-02"

// InvalidDateRangeWarning is shown when the end date is before the start date
const InvalidDateRangeWarning = "End date is earlier than start date"

// DateRange is an optional from/to filter
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsDateRangeInvalid reports whether both dates are set and end is before start.
// Equal dates are valid.
func IsDateRangeInvalid(start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return end.Before(*start)
}

// Invalid reports whether the range ends before it starts
func (r DateRange) Invalid() bool {
	return IsDateRangeInvalid(r.Start, r.End)
}

// ParseDateRange reads the range from the fromKey and toKey query parameters.
// Values that are not dates are ignored.
func ParseDateRange(query url.Values, fromKey, toKey string) DateRange {
	return DateRange{
		Start: parseDate(query.Get(fromKey)),
		End:   parseDate(query.Get(toKey)),
	}
}

func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil
	}
	return &date
}
