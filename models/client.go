package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a billable contact owned by exactly one user. Email is unique
// within the owning user, not globally.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_client_owner_email,priority:1" json:"userId"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null;uniqueIndex:idx_client_owner_email,priority:2" json:"email"`
	Company string `json:"company"`
	Address string `json:"address"`
	Phone   string `json:"phone"`

	// Invoices keep their client reference after the client is deleted
	Invoices []Invoice `gorm:"foreignKey:ClientID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
