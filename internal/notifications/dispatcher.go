package notifications

import (
	"fmt"

	"dastawez_backend/internal/events"
	"dastawez_backend/internal/logger"
	"dastawez_backend/internal/models"
)

// AdminLister resolves the user IDs that should receive staff-facing
// notifications.
type AdminLister interface {
	FindUserIDsWithRole(role models.AppRole) ([]string, error)
}

// Dispatcher turns domain events into notification feed entries. The
// placing user gets the customer-facing message; admins get a
// staff-facing one for events that need action. The user the event
// belongs to and the user who triggered it never receive the staff
// copy of their own action.
type Dispatcher struct {
	center *Center
	admins AdminLister
}

func NewDispatcher(center *Center, admins AdminLister) *Dispatcher {
	return &Dispatcher{center: center, admins: admins}
}

// Start subscribes to the bus and returns an unsubscribe function.
func (d *Dispatcher) Start(bus *events.Bus) func() {
	return bus.SubscribeAll(d.handle)
}

func (d *Dispatcher) handle(e events.Event) {
	switch e.Type {
	case events.OrderCreated:
		d.notifyUser(e, "Order Placed",
			fmt.Sprintf("Your order for %s has been placed.", payloadString(e, "service_name")))
		d.notifyAdmins(e, "New Order",
			fmt.Sprintf("New order for %s received.", payloadString(e, "service_name")))

	case events.OrderStatusChanged:
		d.notifyUser(e, "Order Update",
			fmt.Sprintf("Your order for %s is now %s.",
				payloadString(e, "service_name"), payloadString(e, "status_label")))
		d.notifyAdmins(e, "Order Status Changed",
			fmt.Sprintf("Order for %s moved to %s.",
				payloadString(e, "service_name"), payloadString(e, "status_label")))

	case events.OrderDeleted:
		d.notifyAdmins(e, "Order Removed",
			fmt.Sprintf("An order for %s was removed.", payloadString(e, "service_name")))

	case events.DocumentUploaded:
		d.notifyAdmins(e, "Document Uploaded",
			fmt.Sprintf("A document was uploaded for the %s order.", payloadString(e, "service_name")))
	}
}

func (d *Dispatcher) notifyUser(e events.Event, title, message string) {
	if e.UserID == "" {
		return
	}
	_, err := d.center.Notify(e.UserID, Notification{
		Type:    string(e.Type),
		Title:   title,
		Message: message,
		OrderID: payloadString(e, "order_id"),
	})
	if err != nil {
		logger.Error("failed to notify user", "user_id", e.UserID, "event", string(e.Type), "error", err)
	}
}

func (d *Dispatcher) notifyAdmins(e events.Event, title, message string) {
	ids, err := d.admins.FindUserIDsWithRole(models.AppRoleAdmin)
	if err != nil {
		logger.Error("failed to list admins for notification", "event", string(e.Type), "error", err)
		return
	}
	actorID := payloadString(e, "actor_id")
	for _, id := range ids {
		if id == e.UserID || (actorID != "" && id == actorID) {
			continue
		}
		_, err := d.center.Notify(id, Notification{
			Type:    string(e.Type),
			Title:   title,
			Message: message,
			OrderID: payloadString(e, "order_id"),
		})
		if err != nil {
			logger.Error("failed to notify admin", "user_id", id, "event", string(e.Type), "error", err)
		}
	}
}

func payloadString(e events.Event, key string) string {
	if e.Payload == nil {
		return ""
	}
	if v, ok := e.Payload[key].(string); ok {
		return v
	}
	return ""
}
