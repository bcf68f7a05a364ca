package notifications

import "time"

// Notification is one feed entry shown in the user's notification tray.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"order_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed is a user's full notification state. Items are newest first.
type Feed struct {
	Items       []Notification `json:"items"`
	UnreadCount int            `json:"unread_count"`
}
