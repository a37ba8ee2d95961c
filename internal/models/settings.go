package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultCancellationPolicy = "Cancelamentos devem ser feitos com pelo menos 2 horas de antecedência."

type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type OpeningHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Day returns the schedule for a weekday.
func (o OpeningHours) Day(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return o.Monday
	case time.Tuesday:
		return o.Tuesday
	case time.Wednesday:
		return o.Wednesday
	case time.Thursday:
		return o.Thursday
	case time.Friday:
		return o.Friday
	case time.Saturday:
		return o.Saturday
	default:
		return o.Sunday
	}
}

// DefaultOpeningHours is the week every new barbershop starts with:
// Monday to Saturday 09:00-18:00, closed on Sunday.
func DefaultOpeningHours() OpeningHours {
	open := DaySchedule{Open: "09:00", Close: "18:00"}
	return OpeningHours{
		Monday:    open,
		Tuesday:   open,
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		Saturday:  open,
		Sunday:    DaySchedule{Open: "09:00", Close: "18:00", Closed: true},
	}
}

type BarbershopSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Profile   *Profile  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OpeningHours          datatypes.JSONType[OpeningHours] `gorm:"type:jsonb" json:"opening_hours"`
	WhatsappNumber        string                           `gorm:"size:20" json:"whatsapp_number"`
	WhatsappNotifications bool                             `gorm:"not null" json:"whatsapp_notifications"`
	EmailNotifications    bool                             `gorm:"not null" json:"email_notifications"`
	CancellationPolicy    string                           `gorm:"type:text" json:"cancellation_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BarbershopSettings) TableName() string {
	return "barbershop_settings"
}

func (s *BarbershopSettings) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// NewDefaultSettings returns the settings row created alongside a profile.
func NewDefaultSettings(profileID uuid.UUID, whatsapp string) *BarbershopSettings {
	return &BarbershopSettings{
		ProfileID:             profileID,
		OpeningHours:          datatypes.NewJSONType(DefaultOpeningHours()),
		WhatsappNumber:        whatsapp,
		WhatsappNotifications: true,
		EmailNotifications:    true,
		CancellationPolicy:    DefaultCancellationPolicy,
	}
}
