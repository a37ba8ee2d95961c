package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Professional struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`
	Profile   *Profile  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string                      `gorm:"size:100;not null" json:"name"`
	Specialties datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"specialties"`
	PhotoURL    string                      `gorm:"size:500" json:"photo_url"`
	IsActive    bool                        `gorm:"not null" json:"is_active"`

	// Stored and echoed back; nothing enforces it.
	AvailableHours datatypes.JSON `gorm:"type:jsonb" json:"available_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
