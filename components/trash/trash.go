// Package trash wraps the generic table for views of soft-deleted records.
package trash

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/exiby/exiby_admin/components/table"
)

// BadgeColor is the color of the days-left badge
type BadgeColor string

const (
	RedBadge    BadgeColor = "red"
	YellowBadge BadgeColor = "yellow"
	GrayBadge   BadgeColor = "gray"
)

// Badge shows how long a record stays restorable
type Badge struct {
	DaysLeft int
	Color    BadgeColor
	Text     string
}

// NewBadge color-codes daysLeft: red up to 3 days, yellow up to 7, gray otherwise
func NewBadge(daysLeft int) Badge {
	color := GrayBadge
	switch {
	case daysLeft <= 3:
		color = RedBadge
	case daysLeft <= 7:
		color = YellowBadge
	}

	text := fmt.Sprintf("%d days left", daysLeft)
	if daysLeft == 1 {
		text = "1 day left"
	}
	return Badge{DaysLeft: daysLeft, Color: color, Text: text}
}

// DaysUntilPermanentDelete returns the whole days, rounded up, until a record deleted at deletedAt
// is purged after retentionDays. It is never negative.
func DaysUntilPermanentDelete(deletedAt, now time.Time, retentionDays int) int {
	purgeAt := deletedAt.AddDate(0, 0, retentionDays)
	remaining := purgeAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// Action is one of the two fixed actions of a trash row
type Action struct {
	Label        string
	Href         string
	ConfirmTitle string
	Confirm      string
	Danger       bool
}

// RowDecoration is attached to each table row of a trash view
type RowDecoration struct {
	Badge   Badge
	Restore Action
	Delete  Action
}

// Props configures the trash table. Menu options of the wrapped table are ignored.
type Props struct {
	Table table.Props
	// GetDaysUntilPermanentDelete computes the days left for a row
	GetDaysUntilPermanentDelete func(table.Row) int
	// RestoreHref and DeleteHref are action URLs with an {id} placeholder
	RestoreHref string
	DeleteHref  string
	// Noun names a record in the confirmation dialogs, e.g. "organization"
	Noun string
}

// View is the view model consumed by the trash table template
type View struct {
	table.View
}

// Render builds the trash table view model
func Render(p Props) View {
	tableProps := p.Table
	tableProps.MenuOptions = nil
	if tableProps.EmptyMessage == "" {
		tableProps.EmptyMessage = "Trash is empty"
	}

	view := table.Render(tableProps)
	rowsByID := make(map[string]table.Row, len(p.Table.Rows))
	for _, row := range p.Table.Rows {
		rowsByID[row.ID] = row
	}

	noun := p.Noun
	if noun == "" {
		noun = "record"
	}
	for i := range view.Rows {
		id := view.Rows[i].ID
		decoration := RowDecoration{
			Restore: Action{
				Label:        "Restore",
				Href:         strings.ReplaceAll(p.RestoreHref, "{id}", id),
				ConfirmTitle: "Restore " + noun,
				Confirm:      fmt.Sprintf("Are you sure you want to restore this %s?", noun),
			},
			Delete: Action{
				Label:        "Permanently Delete",
				Href:         strings.ReplaceAll(p.DeleteHref, "{id}", id),
				ConfirmTitle: "Permanently delete " + noun,
				Confirm:      fmt.Sprintf("This %s will be deleted forever. This cannot be undone.", noun),
				Danger:       true,
			},
		}
		if p.GetDaysUntilPermanentDelete != nil {
			decoration.Badge = NewBadge(p.GetDaysUntilPermanentDelete(rowsByID[id]))
		}
		view.Rows[i].Extra = decoration
	}
	view.HasMenu = true

	return View{View: view}
}
