package subscription

import (
	"math"
	"time"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

type BadgeState string

const (
	BadgeExpired BadgeState = "expired"
	BadgeTrial   BadgeState = "trial"
	BadgeActive  BadgeState = "active"
)

// DaysRemaining is the number of started days left until trialEndsAt,
// never negative.
func DaysRemaining(trialEndsAt *time.Time, now time.Time) int {
	if trialEndsAt == nil {
		return 0
	}

	left := trialEndsAt.Sub(now)
	if left <= 0 {
		return 0
	}

	return int(math.Ceil(left.Hours() / 24))
}

// Badge picks what the dashboard shows. It is display only and never gates access.
func Badge(status string, daysRemaining int) BadgeState {
	switch status {
	case models.SubscriptionActive:
		return BadgeActive
	case models.SubscriptionTrial:
		if daysRemaining > 0 {
			return BadgeTrial
		}
		return BadgeExpired
	default:
		return BadgeExpired
	}
}

type Summary struct {
	Status        string     `json:"status"`
	Plan          string     `json:"plan"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	DaysRemaining int        `json:"days_remaining"`
	Badge         BadgeState `json:"badge"`
}

func Summarize(p *models.Profile, now time.Time) Summary {
	days := DaysRemaining(p.TrialEndsAt, now)
	return Summary{
		Status:        p.SubscriptionStatus,
		Plan:          p.SubscriptionPlan,
		TrialEndsAt:   p.TrialEndsAt,
		DaysRemaining: days,
		Badge:         Badge(p.SubscriptionStatus, days),
	}
}
