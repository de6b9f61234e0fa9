package trash

import (
	"testing"
	"time"

	"github.com/exiby/exiby_admin/components/table"
	"github.com/stretchr/testify/assert"
)

func Test_NewBadge(t *testing.T) {
	tests := []struct {
		name     string
		daysLeft int
		want     Badge
	}{
		{name: "2 days should be red", daysLeft: 2, want: Badge{DaysLeft: 2, Color: RedBadge, Text: "2 days left"}},
		{name: "3 days should be red", daysLeft: 3, want: Badge{DaysLeft: 3, Color: RedBadge, Text: "3 days left"}},
		{name: "5 days should be yellow", daysLeft: 5, want: Badge{DaysLeft: 5, Color: YellowBadge, Text: "5 days left"}},
		{name: "7 days should be yellow", daysLeft: 7, want: Badge{DaysLeft: 7, Color: YellowBadge, Text: "7 days left"}},
		{name: "10 days should be gray", daysLeft: 10, want: Badge{DaysLeft: 10, Color: GrayBadge, Text: "10 days left"}},
		{name: "1 day should be singular", daysLeft: 1, want: Badge{DaysLeft: 1, Color: RedBadge, Text: "1 day left"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBadge(tt.daysLeft))
		})
	}
}

func Test_DaysUntilPermanentDelete(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysUntilPermanentDelete(now, now, 30))
	assert.Equal(t, 20, DaysUntilPermanentDelete(now.AddDate(0, 0, -10), now, 30))
	assert.Equal(t, 1, DaysUntilPermanentDelete(now.AddDate(0, 0, -30).Add(time.Hour), now, 30))
	assert.Equal(t, 0, DaysUntilPermanentDelete(now.AddDate(0, 0, -31), now, 30))
}

func Test_Render__should_replace_menu_with_restore_and_delete_actions(t *testing.T) {
	view := Render(Props{
		Table: table.Props{
			Rows:        []table.Row{{ID: "7", Values: map[string]interface{}{"days": 2}}},
			Columns:     []table.Column{{Key: "name", Label: "Name"}},
			MenuOptions: []table.MenuOption{{Label: "Edit", Href: "/x/{id}"}},
		},
		GetDaysUntilPermanentDelete: func(row table.Row) int {
			return row.Values["days"].(int)
		},
		RestoreHref: "/organizations/trash/{id}/restore",
		DeleteHref:  "/organizations/trash/{id}/delete",
		Noun:        "organization",
	})

	assert.True(t, view.HasMenu)
	assert.Empty(t, view.Rows[0].Menu)

	decoration := view.Rows[0].Extra.(RowDecoration)
	assert.Equal(t, Badge{DaysLeft: 2, Color: RedBadge, Text: "2 days left"}, decoration.Badge)
	assert.Equal(t, "Restore", decoration.Restore.Label)
	assert.Equal(t, "/organizations/trash/7/restore", decoration.Restore.Href)
	assert.Equal(t, "Permanently Delete", decoration.Delete.Label)
	assert.Equal(t, "/organizations/trash/7/delete", decoration.Delete.Href)
	assert.True(t, decoration.Delete.Danger)
	assert.Contains(t, decoration.Restore.Confirm, "organization")
}

func Test_Render__should_use_trash_empty_message(t *testing.T) {
	view := Render(Props{Table: table.Props{Columns: []table.Column{{Key: "name"}}}})

	assert.True(t, view.Empty)
	assert.Equal(t, "Trash is empty", view.EmptyMessage)
}
