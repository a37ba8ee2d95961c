package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubscriptionTrial     = "trial"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"

	PlanFree = "free"
	PlanPro  = "pro"
)

// Profile is the tenant: one barbershop account and its owner login.
type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BarbershopName string `gorm:"size:100;not null" json:"barbershop_name"`
	OwnerName      string `gorm:"size:100;not null" json:"owner_name"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"size:255;not null" json:"-"`
	Phone          string `gorm:"size:20" json:"phone"`
	Address        string `gorm:"size:255" json:"address"`
	Slug           string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	PrimaryColor   string `gorm:"size:7;default:'#007BFF'" json:"primary_color"`
	SecondaryColor string `gorm:"size:7;default:'#FFFFFF'" json:"secondary_color"`
	LogoURL        string `gorm:"size:500" json:"logo_url"`
	Timezone       string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	SubscriptionPlan   string     `gorm:"size:20;default:'free'" json:"subscription_plan"`
	SubscriptionStatus string     `gorm:"size:20;default:'trial';index" json:"subscription_status"`
	TrialEndsAt        *time.Time `json:"trial_ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
