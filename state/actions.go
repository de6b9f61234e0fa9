package state

import "github.com/exiby/exiby_admin/entities"

// Action is a typed state transition applied by Store.Dispatch
type Action interface {
	apply(state *AppState)
}

// ToggleDarkMode flips between the dark and light theme
type ToggleDarkMode struct{}

func (ToggleDarkMode) apply(state *AppState) {
	state.DarkMode = !state.DarkMode
}

// SetDarkMode sets the theme explicitly
type SetDarkMode struct {
	Enabled bool
}

func (a SetDarkMode) apply(state *AppState) {
	state.DarkMode = a.Enabled
}

// MarkNotificationRead marks one notification as read
type MarkNotificationRead struct {
	ID string
}

func (a MarkNotificationRead) apply(state *AppState) {
	setRead(state.Notifications, a.ID, true)
}

// MarkNotificationUnread marks one notification as unread
type MarkNotificationUnread struct {
	ID string
}

func (a MarkNotificationUnread) apply(state *AppState) {
	setRead(state.Notifications, a.ID, false)
}

// MarkAllNotificationsRead marks every notification as read
type MarkAllNotificationsRead struct{}

func (MarkAllNotificationsRead) apply(state *AppState) {
	for i := range state.Notifications {
		state.Notifications[i].Read = true
	}
}

func setRead(notifications entities.Notifications, id string, read bool) {
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = read
			return
		}
	}
}
