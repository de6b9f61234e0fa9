package entities

import "time"

// NotificationType is the category of a notification
type NotificationType string

const (
	NewOrganizationNotification      NotificationType = "new_organization"
	NewCompanyNotification           NotificationType = "new_company"
	EventCreatedNotification         NotificationType = "event_created"
	PaymentReceivedNotification      NotificationType = "payment_received"
	SubscriptionExpiringNotification NotificationType = "subscription_expiring"
	SystemAlertNotification          NotificationType = "system_alert"
)

// Notification is an entry in the admin's notification dropdown
type Notification struct {
	ID               string           `json:"id"`
	NotificationType NotificationType `json:"notification_type"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Read             bool             `json:"read"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Notifications is a list of notifications, newest first
type Notifications []Notification

// UnreadCount returns the number of notifications not yet read
func (n Notifications) UnreadCount() int {
	count := 0
	for _, notification := range n {
		if !notification.Read {
			count++
		}
	}
	return count
}
