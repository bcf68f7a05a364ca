package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	BaseModel
	UserID    string      `gorm:"not null;index" json:"user_id"`
	ServiceID string      `gorm:"index" json:"service_id"`
	Status    OrderStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Details is the form snapshot taken at submission time. Later
	// edits to the service definition never touch it.
	Details datatypes.JSON `gorm:"type:jsonb" json:"details"`

	Notes                string          `json:"notes"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_amount"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date"`

	// Relations
	Service   *Service        `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Documents []OrderDocument `gorm:"foreignKey:OrderID" json:"documents,omitempty"`
}

// OrderDocument belongs to exactly one order and is removed with it.
type OrderDocument struct {
	ID           string       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	OrderID      string       `gorm:"not null;index" json:"order_id"`
	FileName     string       `gorm:"not null" json:"file_name"`
	FileURL      string       `gorm:"not null" json:"file_url"`
	StoragePath  string       `gorm:"not null" json:"-"`
	DocumentType DocumentType `gorm:"type:varchar(20);not null" json:"document_type"`
	CreatedAt    time.Time    `gorm:"default:now()" json:"created_at"`
}

// UserDocument is a standalone per-user file, unrelated to any order.
type UserDocument struct {
	ID           string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	FileName     string    `gorm:"not null" json:"file_name"`
	FileURL      string    `gorm:"not null" json:"file_url"`
	StoragePath  string    `gorm:"not null" json:"-"`
	DocumentType string    `json:"document_type"`
	CreatedAt    time.Time `gorm:"default:now()" json:"created_at"`
}
