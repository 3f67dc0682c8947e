package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a reusable billable offering. Invoice items copy its title,
// description and rate at composition time, so later edits never touch
// existing invoices.
type Service struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Rate        float64 `gorm:"type:decimal(10,2);not null" json:"rate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
