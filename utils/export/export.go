// Package export writes table data as CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/exiby/exiby_admin/components/table"
	"github.com/pkg/errors"
)

// ErrTooManyRows is returned when an export exceeds the configured row limit
var ErrTooManyRows = errors.New("too many rows to export")

// WriteCSV writes a header row of column labels followed by one record per row.
// Cells are formatted the same way the table displays them. Custom cell renderers
// are ignored since they may produce markup.
func WriteCSV(w io.Writer, columns []table.Column, rows []table.Row, maxRows int) error {
	if maxRows > 0 && len(rows) > maxRows {
		return errors.Wrapf(ErrTooManyRows, "%d rows requested, limit is %d", len(rows), maxRows)
	}

	writer := csv.NewWriter(w)

	header := make([]string, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Label)
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}

	for _, row := range rows {
		record := make([]string, 0, len(columns))
		for _, column := range columns {
			record = append(record, cellValue(column, row.Values[column.Key]))
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "could not write csv record for row %s", row.ID)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "could not flush csv writer")
}

// cellValue formats value for a csv cell. Empty values stay empty and text that a
// spreadsheet would evaluate as a formula is prefixed with a quote.
func cellValue(column table.Column, value interface{}) string {
	if table.IsEmptyValue(value) {
		return ""
	}
	formatted := table.FormatValue(column.Type, value)
	if _, isText := value.(string); isText && strings.ContainsAny(formatted[:1], "=+-@\t\r") {
		return "'" + formatted
	}
	return formatted
}

// Filename builds a download name like "organizations-2025-08-20.csv"
func Filename(resource string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", resource, now.Format("2006-01-02"))
}

// FilterSelected keeps the rows whose id is in ids, preserving row order.
// An empty ids set keeps every row.
func FilterSelected(rows []table.Row, ids []string) []table.Row {
	if len(ids) == 0 {
		return rows
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var filtered []table.Row
	for _, row := range rows {
		if wanted[row.ID] {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
