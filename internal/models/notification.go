package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationNewAppointment       = "new_appointment"
	NotificationAppointmentCancelled = "appointment_cancelled"
	NotificationEmail                = "email"
	NotificationWhatsapp             = "whatsapp"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`

	Type    string `gorm:"size:30;not null" json:"type"`
	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null" json:"is_read"`

	ScheduledFor *time.Time `json:"scheduled_for"`
	SentAt       *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
