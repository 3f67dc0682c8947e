package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPaid    = "paid"
	StatusUnpaid  = "unpaid"
	StatusOverdue = "overdue"
)

type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_owner_invoice_number,priority:1" json:"userId"`

	InvoiceNumber string    `gorm:"not null;uniqueIndex:idx_owner_invoice_number,priority:2" json:"invoiceNumber"`
	ClientID      uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	Client        *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	Subtotal  float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxRate   float64 `gorm:"type:decimal(5,2);default:0.0" json:"taxRate"`
	TaxAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"taxAmount"`
	Total     float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	Status      string     `gorm:"default:'unpaid'" json:"status"`
	DueDate     time.Time  `gorm:"not null" json:"dueDate"`
	Notes       string     `json:"notes"`
	PaymentDate *time.Time `json:"paymentDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoiceId"`

	// Optional reference to the service the item was composed from
	ServiceID *uuid.UUID `gorm:"type:uuid;index" json:"service,omitempty"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Rate        float64 `gorm:"type:decimal(10,2);not null" json:"rate"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
}

func (inv *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}

func ValidStatus(s string) bool {
	return s == StatusPaid || s == StatusUnpaid || s == StatusOverdue
}

// SetStatus applies a status transition and its payment-date side effect:
// entering paid stamps the payment date unless one is already set, leaving
// paid clears it.
func (inv *Invoice) SetStatus(status string, now time.Time) {
	if status == StatusPaid {
		if inv.PaymentDate == nil {
			inv.PaymentDate = &now
		}
	} else {
		inv.PaymentDate = nil
	}
	inv.Status = status
}
