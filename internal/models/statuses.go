package models

type UserStatus string
type AppRole string
type OrderStatus string
type ServiceCategory string
type DocumentType string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	AppRoleAdmin AppRole = "admin"
	AppRoleUser  AppRole = "user"

	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	CategoryPrinting     ServiceCategory = "printing"
	CategoryCertificates ServiceCategory = "certificates"
	CategoryBills        ServiceCategory = "bills"
	CategoryMPOnline     ServiceCategory = "mp_online"

	// DocumentTypeUploaded marks customer attachments,
	// DocumentTypeCompleted marks admin-delivered results.
	DocumentTypeUploaded  DocumentType = "uploaded"
	DocumentTypeCompleted DocumentType = "completed"
)

// ValidOrderStatus reports whether s is a known order status.
// Admins may set any of them; transitions are not restricted to a
// linear pipeline.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidServiceCategory reports whether c is a known catalog category.
func ValidServiceCategory(c ServiceCategory) bool {
	switch c {
	case CategoryPrinting, CategoryCertificates, CategoryBills, CategoryMPOnline:
		return true
	}
	return false
}

// OrderStatusLabel returns the customer-facing label for a status.
func OrderStatusLabel(s OrderStatus) string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusInProgress:
		return "In Progress"
	case OrderStatusReady:
		return "Ready for Pickup"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}
