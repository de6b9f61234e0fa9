// Package table builds the view model of the generic data table used by every list page.
package table

import (
	"fmt"
	"strings"
	"time"
)

// ColumnType selects how a cell value is formatted
type ColumnType string

const (
	TextColumn     ColumnType = "text"
	NumberColumn   ColumnType = "number"
	CurrencyColumn ColumnType = "currency"
	DateColumn     ColumnType = "date"
	DateTimeColumn ColumnType = "datetime"
	StatusColumn   ColumnType = "status"
	BadgeColumn    ColumnType = "badge"
)

const (
	dateFormat     = "Jan 2, 2006"
	dateTimeFormat = "Jan 2, 2006 15:04"
	emptyCell      = "-"
)

// Column declares one column of the table.
// Sortable is carried through to the header but no sorting is performed.
type Column struct {
	Key      string
	Label    string
	Type     ColumnType
	Sortable bool
	// Render overrides the type based formatting of the cell
	Render func(Row) string
}

// Row is one record of the table
type Row struct {
	ID     string
	Values map[string]interface{}
}

// MenuOption is an entry of the per-row "more actions" menu.
// Every {id} in Href is replaced with the row id.
type MenuOption struct {
	Label   string
	Href    string
	Method  string
	Confirm string
	Danger  bool
}

// Props is everything the table needs to render
type Props struct {
	Rows         []Row
	Columns      []Column
	MenuOptions  []MenuOption
	Pagination   *Pagination
	Selected     Selection
	Checkbox     bool
	Loading      bool
	EmptyMessage string
	// SelectionForm is the id of the form the row checkboxes belong to
	SelectionForm string
}

// HeaderView is a header cell
type HeaderView struct {
	Key      string
	Label    string
	Sortable bool
}

// Cell is a formatted data cell
type Cell struct {
	Key   string
	Text  string
	Type  ColumnType
	Class string
}

// MenuItem is a menu option resolved for one row
type MenuItem struct {
	Label   string
	Href    string
	Method  string
	Confirm string
	Danger  bool
}

// RowView is a rendered data row
type RowView struct {
	ID       string
	Cells    []Cell
	Selected bool
	Menu     []MenuItem
	// Extra carries decorations added by table wrappers
	Extra interface{}
}

// View is the view model consumed by the table template
type View struct {
	Headers       []HeaderView
	Rows          []RowView
	Checkbox      bool
	AllSelected   bool
	Loading       bool
	Empty         bool
	EmptyMessage  string
	HasMenu       bool
	ColumnCount   int
	Pager         *PagerView
	SelectionForm string
	LoadedIDs     []string
}

// Render builds the table view model from props
func Render(p Props) View {
	loaded := LoadedIDs(p.Rows)
	selected := p.Selected.Retain(loaded)

	view := View{
		Checkbox:      p.Checkbox,
		AllSelected:   selected.AllSelected(loaded),
		Loading:       p.Loading,
		Empty:         !p.Loading && len(p.Rows) == 0,
		EmptyMessage:  p.EmptyMessage,
		HasMenu:       len(p.MenuOptions) > 0,
		SelectionForm: p.SelectionForm,
		LoadedIDs:     loaded,
	}
	if view.EmptyMessage == "" {
		view.EmptyMessage = "No records found"
	}

	for _, column := range p.Columns {
		view.Headers = append(view.Headers, HeaderView{Key: column.Key, Label: column.Label, Sortable: column.Sortable})
	}
	view.ColumnCount = len(p.Columns)
	if view.Checkbox {
		view.ColumnCount++
	}
	if view.HasMenu {
		view.ColumnCount++
	}

	if !p.Loading {
		for _, row := range p.Rows {
			rowView := RowView{
				ID:       row.ID,
				Selected: selected.Contains(row.ID),
			}
			for _, column := range p.Columns {
				rowView.Cells = append(rowView.Cells, renderCell(column, row))
			}
			for _, option := range p.MenuOptions {
				rowView.Menu = append(rowView.Menu, resolveMenuOption(option, row.ID))
			}
			view.Rows = append(view.Rows, rowView)
		}
	}

	if p.Pagination != nil {
		pager := p.Pagination.View()
		view.Pager = &pager
	}

	return view
}

// LoadedIDs returns the ids of rows in order
func LoadedIDs(rows []Row) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

// Rows converts items to table rows
func Rows[T any](items []T, toRow func(T) Row) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}
	return rows
}

// IsEmptyValue reports whether value has nothing to show: nil, a nil or zero time, or an empty string
func IsEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *time.Time:
		return v == nil || v.IsZero()
	case time.Time:
		return v.IsZero()
	case string:
		return v == ""
	}
	return false
}

// FormatValue formats a cell value the way the given column type displays it
func FormatValue(columnType ColumnType, value interface{}) string {
	if IsEmptyValue(value) {
		return emptyCell
	}

	switch v := value.(type) {
	case *time.Time:
		return FormatValue(columnType, *v)
	case time.Time:
		if columnType == DateTimeColumn {
			return v.Format(dateTimeFormat)
		}
		return v.Format(dateFormat)
	case bool:
		if columnType == StatusColumn {
			if v {
				return "Active"
			}
			return "Inactive"
		}
		if v {
			return "Yes"
		}
		return "No"
	case float64:
		if columnType == CurrencyColumn {
			return fmt.Sprintf("%.2f", v)
		}
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	case string:
		return v
	}
	return fmt.Sprint(value)
}

func renderCell(column Column, row Row) Cell {
	cell := Cell{Key: column.Key, Type: column.Type}
	value := row.Values[column.Key]

	if column.Render != nil {
		cell.Text = column.Render(row)
	} else {
		cell.Text = FormatValue(column.Type, value)
	}

	switch column.Type {
	case StatusColumn:
		if active, ok := value.(bool); ok && active {
			cell.Class = "status-active"
		} else {
			cell.Class = "status-inactive"
		}
	case BadgeColumn:
		cell.Class = "badge"
	}
	return cell
}

func resolveMenuOption(option MenuOption, id string) MenuItem {
	method := option.Method
	if method == "" {
		method = "GET"
	}
	return MenuItem{
		Label:   option.Label,
		Href:    strings.ReplaceAll(option.Href, "{id}", id),
		Method:  method,
		Confirm: option.Confirm,
		Danger:  option.Danger,
	}
}
