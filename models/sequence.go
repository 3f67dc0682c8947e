package models

import (
	"paymint-backend/billing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceSequence is a per-(owner, year) counter backing invoice numbers.
// Reserving a number is a single atomic upsert, so concurrent invoice
// creations for the same owner cannot produce duplicates.
type InvoiceSequence struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year   int       `gorm:"primaryKey"`
	Value  int64     `gorm:"not null"`
}

func NextInvoiceNumber(db *gorm.DB, userID uuid.UUID, year int) (string, error) {
	var seq int64
	err := db.Raw(`
        INSERT INTO invoice_sequences (user_id, year, value) VALUES (?, ?, 1)
        ON CONFLICT (user_id, year) DO UPDATE SET value = invoice_sequences.value + 1
        RETURNING value
    `, userID, year).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return billing.FormatInvoiceNumber(year, seq), nil
}
