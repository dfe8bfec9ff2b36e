package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a client record owned by exactly one user.
// Rows are cascade-deleted with their owning user.
type Client struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"size:255;not null;index"`
	Email    string    `json:"email" gorm:"size:255;not null"`
	Phone    string    `json:"phone,omitempty" gorm:"size:50"`
	Company  string    `json:"company,omitempty" gorm:"size:255"`
	Address  string    `json:"address,omitempty" gorm:"size:255"`
	City     string    `json:"city,omitempty" gorm:"size:100"`
	Country  string    `json:"country,omitempty" gorm:"size:100"`
	TaxID    string    `json:"taxId,omitempty" gorm:"size:50"` // CIF/NIF for invoicing
	Notes    string    `json:"notes,omitempty" gorm:"type:text"`
	IsActive bool      `json:"isActive" gorm:"default:true;index"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
